package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recommendations/backend/internal/middleware"
	"github.com/pageza/recommendations/backend/internal/service"
	"github.com/pageza/recommendations/backend/internal/testhelpers"
)

const baseURL = "/recommendations"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(svc service.IRecommendationService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/", Index)
	NewRecommendationHandler(svc).RegisterRoutes(r)
	return r
}

// setupRecommendationRouter returns a router backed by a fresh in-memory store.
func setupRecommendationRouter(t *testing.T) (*gin.Engine, *service.RecommendationService) {
	t.Helper()
	svc := service.NewRecommendationService(testhelpers.SetupSQLiteDatabase(t))
	return newTestRouter(svc), svc
}

func performRequest(r http.Handler, method, path, body, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(t *testing.T, r http.Handler, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return performRequest(r, http.MethodPost, baseURL, string(body), "application/json")
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
