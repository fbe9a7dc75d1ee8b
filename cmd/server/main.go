package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	api "github.com/Akhand0ps/SIH-tests/internal/api/http"
	"github.com/Akhand0ps/SIH-tests/internal/analytics"
	"github.com/Akhand0ps/SIH-tests/internal/auth"
	"github.com/Akhand0ps/SIH-tests/internal/catalog"
	"github.com/Akhand0ps/SIH-tests/internal/config"
	"github.com/Akhand0ps/SIH-tests/internal/db"
	"github.com/Akhand0ps/SIH-tests/internal/scoring"
	"github.com/Akhand0ps/SIH-tests/internal/store"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg := config.FromEnv()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load test catalog")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("db open failed")
	}
	defer dbh.Close()

	st := store.NewSQLStore(dbh, cfg.DBDriver)
	recorder := analytics.NewRecorder(st, log, cfg.AnalyticsWorkers)
	engine := scoring.NewEngine(cat)
	authSvc := auth.NewAuthService(cfg.AuthSecret)

	router := api.NewRouter(api.Deps{
		Catalog:  cat,
		Engine:   engine,
		Store:    st,
		Recorder: recorder,
		Auth:     authSvc,
		Config:   cfg,
		Log:      log,
	})

	stopRetention := make(chan struct{})
	if cfg.RetentionDays > 0 {
		go retentionLoop(st, cfg.RetentionDays, log, stopRetention)
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("db", cfg.DBDriver).Int("tests", len(cat.IDs())).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down")
	close(stopRetention)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	recorder.Close()
}

// retentionLoop purges stored results older than the retention window, once
// a day.
func retentionLoop(st store.Store, days int, log zerolog.Logger, stop <-chan struct{}) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			cutoff := time.Now().AddDate(0, 0, -days)
			n, err := st.DeleteResultsBefore(ctx, cutoff)
			cancel()
			if err != nil {
				log.Error().Err(err).Msg("retention cleanup failed")
				continue
			}
			if n > 0 {
				log.Info().Int64("removed", n).Msg("retention cleanup")
			}
		}
	}
}
