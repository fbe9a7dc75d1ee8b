package http

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Akhand0ps/SIH-tests/internal/store"
)

// AdminAnalyticsHandler serves the anonymized daily aggregates. Mounted
// behind the admin JWT middleware.
// GET /api/v1/admin/analytics?days=7
func AdminAnalyticsHandler(st store.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, _ := strconv.Atoi(r.URL.Query().Get("days"))
		stats, err := st.DailyStats(r.Context(), days)
		if err != nil {
			log.Error().Err(err).Msg("fetch daily stats")
			writeError(w, http.StatusInternalServerError, "Internal server error while fetching analytics")
			return
		}
		writeData(w, http.StatusOK, map[string]interface{}{
			"days":  len(stats),
			"stats": stats,
		})
	}
}
