package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Akhand0ps/SIH-tests/internal/analytics"
	"github.com/Akhand0ps/SIH-tests/internal/anonid"
	"github.com/Akhand0ps/SIH-tests/internal/catalog"
	"github.com/Akhand0ps/SIH-tests/internal/scoring"
	"github.com/Akhand0ps/SIH-tests/internal/store"
)

type submitRequest struct {
	Answers  scoring.Answers `json:"answers"`
	Language string          `json:"language"`
	UserID   string          `json:"userId"`
}

// SubmitAnswersHandler scores a submission, persists it, and returns the
// result. A persistence failure never withholds the computed result: the
// response then carries a warning instead of a result id.
// POST /api/v1/answers/{testName}
func SubmitAnswersHandler(eng *scoring.Engine, cat *catalog.Catalog, st store.Store, rec *analytics.Recorder, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testName := chi.URLParam(r, "testName")

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answers == nil {
			writeError(w, http.StatusBadRequest, "Missing or invalid answers object")
			return
		}
		if req.Language == "" {
			req.Language = "en"
		}
		anonUser := req.UserID
		if anonUser == "" {
			anonUser = anonid.New()
		}

		result, err := eng.Score(testName, req.Answers, req.Language)
		if err != nil {
			writeScoringError(w, err)
			return
		}

		record, err := assembleRecord(cat, testName, anonUser, req, result, r)
		if err != nil {
			log.Error().Err(err).Str("test", testName).Msg("assemble result record")
			writeError(w, http.StatusInternalServerError, "Internal server error while processing test results")
			return
		}

		data := map[string]interface{}{
			"userId":      anonUser,
			"testResults": result,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		}
		if err := st.SaveResult(r.Context(), record); err != nil {
			// Still return results even if the database save fails.
			log.Error().Err(err).Str("test", testName).Msg("database save failed")
			data["warning"] = "Results calculated but not saved to database"
			writeData(w, http.StatusOK, data)
			return
		}
		rec.Record(analytics.Submission{
			ResultID:        record.ID,
			AnonymousUserID: anonUser,
			TestName:        record.TestName,
			Language:        req.Language,
			SeverityLevel:   severityLevelOf(result),
		})
		data["resultId"] = record.ID
		writeData(w, http.StatusOK, data)
	}
}

// assembleRecord merges the engine's output with submission metadata into
// the storage shape. No scoring logic lives here.
func assembleRecord(cat *catalog.Catalog, testName, anonUser string, req submitRequest, result scoring.Result, r *http.Request) (store.ResultRecord, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return store.ResultRecord{}, err
	}
	def, _ := cat.Get(testName)
	rec := store.ResultRecord{
		ID:              uuid.NewString(),
		AnonymousUserID: anonUser,
		TestName:        def.ID,
		TestType:        def.TestType,
		Answers:         req.Answers,
		Result:          raw,
		Language:        req.Language,
		CompletedAt:     time.Now().UTC(),
	}
	if ip := r.RemoteAddr; ip != "" {
		rec.IPHash = anonid.Hash(ip)
	}
	if ua := r.UserAgent(); ua != "" {
		rec.DeviceHash = anonid.Hash(ua)
	}
	return rec, nil
}

func severityLevelOf(result scoring.Result) string {
	switch res := result.(type) {
	case *scoring.StandardResult:
		return res.Interpretation.Level
	case *scoring.DimensionalResult:
		return res.OverallRisk.Level
	default:
		return ""
	}
}

func writeScoringError(w http.ResponseWriter, err error) {
	var ve *scoring.ValidationError
	switch {
	case errors.Is(err, scoring.ErrTestNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error while processing test results")
	}
}

// ValidateAnswersHandler dry-runs validation without scoring or persisting.
// POST /api/v1/answers/{testName}/validate
func ValidateAnswersHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testName := chi.URLParam(r, "testName")
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answers == nil {
			writeError(w, http.StatusBadRequest, "Missing or invalid answers object")
			return
		}
		def, ok := cat.Get(testName)
		if !ok {
			writeError(w, http.StatusNotFound, "Test not found")
			return
		}
		if err := scoring.Validate(def, req.Answers); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeData(w, http.StatusOK, map[string]interface{}{
			"testName":      def.ID,
			"answersCount":  len(req.Answers),
			"expectedCount": def.TotalQuestions(),
			"message":       "Answers are valid",
		})
	}
}

// UserHistoryHandler returns an anonymous user's stored results and
// analytics.
// GET /api/v1/answers/user/{userId}
func UserHistoryHandler(st store.Store, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")
		if !anonid.Valid(userID) {
			writeError(w, http.StatusBadRequest, "Invalid user ID format")
			return
		}

		history, err := st.ResultsByUser(r.Context(), userID)
		if err != nil {
			log.Error().Err(err).Msg("fetch user history")
			writeError(w, http.StatusInternalServerError, "Internal server error while fetching test history")
			return
		}

		data := map[string]interface{}{
			"userId":      userID,
			"testHistory": history,
			"totalTests":  len(history),
		}
		if len(history) > 0 {
			data["lastTestDate"] = history[0].CompletedAt
		}
		if ua, err := st.UserAnalytics(r.Context(), userID); err == nil {
			data["analytics"] = ua
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Msg("fetch user analytics")
		}
		writeData(w, http.StatusOK, data)
	}
}
