package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
)

// GetQuestionsHandler serves one test's question bank.
// GET /api/v1/questions/{testName}
func GetQuestionsHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "testName")
		def, ok := cat.Get(name)
		if !ok {
			writeError(w, http.StatusNotFound, "Test not found")
			return
		}
		writeData(w, http.StatusOK, map[string]interface{}{
			"testName":       def.ID,
			"testType":       def.TestType,
			"title":          def.Title,
			"totalQuestions": def.TotalQuestions(),
			"questions":      def.Questions,
			"options":        def.Options,
		})
	}
}

// ListTestsHandler serves localized metadata for every known test.
// GET /api/v1/answers/tests?language=en
func ListTestsHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := langOr(r.URL.Query().Get("language"))
		ids := cat.IDs()
		metas := make([]catalog.Metadata, 0, len(ids))
		for _, id := range ids {
			if m, ok := cat.Metadata(id, lang); ok {
				metas = append(metas, m)
			}
		}
		writeData(w, http.StatusOK, map[string]interface{}{
			"totalTests": len(metas),
			"language":   lang,
			"tests":      metas,
		})
	}
}

func langOr(lang string) string {
	if lang == "" {
		return "en"
	}
	return lang
}
