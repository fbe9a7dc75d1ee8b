package http

import (
	"net/http"
	"time"

	"github.com/Akhand0ps/SIH-tests/internal/anonid"
	"github.com/Akhand0ps/SIH-tests/internal/i18n"
	"github.com/Akhand0ps/SIH-tests/internal/store"
)

// HealthHandler reports service and database health.
// GET /api/health
func HealthHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		code := http.StatusOK
		dbStatus := "healthy"
		if err := st.Ping(r.Context()); err != nil {
			status, dbStatus = "unhealthy", "unhealthy"
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]interface{}{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  map[string]string{"status": dbStatus},
		})
	}
}

// DocsHandler is a self-describing index of the API surface.
// GET /api/docs
func DocsHandler(testIDs []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"name":        "Mental Health Tests API",
			"version":     "1.0.0",
			"description": "API for mental health assessments and recommendations",
			"endpoints": map[string]string{
				"GET /api/health":                          "Health check",
				"GET /api/v1/questions/{testName}":         "Get test questions",
				"GET /api/v1/answers/tests":                "Get available tests metadata",
				"POST /api/v1/answers/{testName}":          "Submit test answers",
				"POST /api/v1/answers/{testName}/validate": "Validate answers before submission",
				"GET /api/v1/answers/user/{userId}":        "Get user test history",
				"POST /api/v1/session":                     "Start an anonymous session",
				"GET /api/generate-test-id":                "Generate valid anonymous ID for testing",
			},
			"supportedLanguages": i18n.Supported,
			"supportedTests":     testIDs,
		})
	}
}

// GenerateTestIDHandler mints an anonymous id for manual testing.
// GET /api/generate-test-id
func GenerateTestIDHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, map[string]string{
			"anonymousId": anonid.New(),
			"format":      "10 digits (YYYYMMDDHH) + 12 hex characters",
			"usage":       "Use this ID as 'userId' in your POST requests",
		})
	}
}

// IndexHandler greets at the root.
// GET /
func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message":       "Mental Health Tests API Server",
			"version":       "1.0.0",
			"documentation": "/api/docs",
			"health":        "/api/health",
		})
	}
}
