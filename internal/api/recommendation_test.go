package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recommendations/backend/internal/mocks"
	"github.com/pageza/recommendations/backend/internal/models"
	"github.com/pageza/recommendations/backend/internal/service"
	"github.com/pageza/recommendations/backend/internal/testhelpers"
)

func createRecommendations(t *testing.T, svc *service.RecommendationService, recs ...*models.Recommendation) {
	t.Helper()
	for _, rec := range recs {
		require.NoError(t, svc.Create(context.Background(), rec))
	}
}

func TestCreateRecommendation(t *testing.T) {
	r, _ := setupRecommendationRouter(t)
	rec := testhelpers.NewRecommendationFactory().Build()

	w := postJSON(t, r, rec.Serialize())

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	created := decodeObject(t, w)
	assert.NotNil(t, created["id"])
	assert.Equal(t, rec.Name, created["name"])
	assert.EqualValues(t, rec.RecommendationID, created["recommendationId"])
	assert.Equal(t, rec.RecommendationName, created["recommendationName"])
	assert.Equal(t, rec.Type.String(), created["type"])
	assert.EqualValues(t, rec.NumberOfLikes, created["number_of_likes"])
	assert.Equal(t, fmt.Sprintf("/recommendations/%v", created["id"]), location)

	got := performRequest(r, http.MethodGet, location, "", "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, created, decodeObject(t, got))
}

func TestCreateRecommendationIgnoresClientID(t *testing.T) {
	r, _ := setupRecommendationRouter(t)
	payload := testhelpers.NewRecommendationFactory().Build().Serialize()
	payload["id"] = 999

	w := postJSON(t, r, payload)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, decodeObject(t, w)["id"])
}

func TestCreateRecommendationContentType(t *testing.T) {
	r, _ := setupRecommendationRouter(t)
	body := `{"name":"prodA","recommendationId":2,"recommendationName":"prodB","type":"UPSELL","number_of_likes":0}`

	tests := []struct {
		name        string
		contentType string
		want        int
	}{
		{"no content type", "", http.StatusUnsupportedMediaType},
		{"wrong content type", "text/html", http.StatusUnsupportedMediaType},
		{"json with charset", "application/json; charset=utf-8", http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, baseURL, body, tt.contentType)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestCreateRecommendationBadData(t *testing.T) {
	r, _ := setupRecommendationRouter(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty object", `{}`, "missing name"},
		{"not a dictionary", `"this is not a dictionary"`, "bad or no data"},
		{"list", `[1, 2, 3]`, "bad or no data"},
		{"malformed json", `{"name":`, "bad or no data"},
		{"empty body", ``, "bad or no data"},
		{"bad type", `{"name":"prodA","recommendationId":2,"recommendationName":"prodB","type":"DOWNSELL","number_of_likes":0}`, "Invalid attribute: DOWNSELL"},
		{"likes as string", `{"name":"prodA","recommendationId":2,"recommendationName":"prodB","type":"UPSELL","number_of_likes":"many"}`, "number_of_likes"},
		{"empty name", `{"name":"","recommendationId":2,"recommendationName":"prodB","type":"UPSELL","number_of_likes":0}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, baseURL, tt.body, "application/json")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			data := decodeObject(t, w)
			assert.EqualValues(t, http.StatusBadRequest, data["status"])
			assert.Equal(t, "Bad Request", data["error"])
			assert.Contains(t, data["message"], tt.message)
		})
	}
}

func TestCreateRecommendationStoreFailure(t *testing.T) {
	svc := new(mocks.MockRecommendationService)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*models.Recommendation")).
		Return(errors.New("pq: duplicate key value violates unique constraint"))
	r := newTestRouter(svc)

	w := postJSON(t, r, testhelpers.NewRecommendationFactory().Build().Serialize())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	data := decodeObject(t, w)
	assert.NotContains(t, data["message"], "duplicate")
	svc.AssertExpectations(t)
}

func TestGetRecommendation(t *testing.T) {
	r, svc := setupRecommendationRouter(t)
	rec := testhelpers.NewRecommendationFactory().Build()
	createRecommendations(t, svc, rec)

	w := performRequest(r, http.MethodGet, fmt.Sprintf("%s/%d", baseURL, rec.ID), "", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeObject(t, w)
	assert.Equal(t, rec.Name, data["name"])
	assert.EqualValues(t, rec.ID, data["id"])
}

func TestGetRecommendationNotFound(t *testing.T) {
	r, _ := setupRecommendationRouter(t)

	w := performRequest(r, http.MethodGet, baseURL+"/0", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodGet, baseURL+"/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodGet, baseURL+"/42", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	data := decodeObject(t, w)
	assert.EqualValues(t, http.StatusNotFound, data["status"])
	assert.Equal(t, "Not Found", data["error"])
}

func TestListRecommendations(t *testing.T) {
	r, svc := setupRecommendationRouter(t)
	createRecommendations(t, svc,
		&models.Recommendation{Name: "prodA", RecommendationID: 1, RecommendationName: "prodB", Type: models.CrossSell},
		&models.Recommendation{Name: "prodA", RecommendationID: 2, RecommendationName: "prodC", Type: models.Upsell},
		&models.Recommendation{Name: "prodD", RecommendationID: 3, RecommendationName: "prodE", Type: models.Upsell},
		&models.Recommendation{Name: "prodF", RecommendationID: 4, RecommendationName: "prodG", Type: models.Accessory},
	)

	tests := []struct {
		name  string
		query string
		ids   []float64
	}{
		{"all", "", []float64{1, 2, 3, 4}},
		{"by name", "?name=prodA", []float64{1, 2}},
		{"by type", "?type=UPSELL", []float64{2, 3}},
		{"by name and type", "?name=prodA&type=UPSELL", []float64{2}},
		{"no match", "?name=nothing", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodGet, baseURL+tt.query, "", "")
			require.Equal(t, http.StatusOK, w.Code)

			ids := []float64{}
			for _, item := range decodeList(t, w) {
				ids = append(ids, item["recommendationId"].(float64))
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestListRecommendationsEmptyIsArray(t *testing.T) {
	r, _ := setupRecommendationRouter(t)

	w := performRequest(r, http.MethodGet, baseURL, "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListRecommendationsBadType(t *testing.T) {
	r, _ := setupRecommendationRouter(t)

	w := performRequest(r, http.MethodGet, baseURL+"?type=upsell", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeObject(t, w)["message"], "Invalid attribute: upsell")
}

func TestUpdateRecommendation(t *testing.T) {
	r, svc := setupRecommendationRouter(t)
	rec := testhelpers.NewRecommendationFactory().Build()
	createRecommendations(t, svc, rec)

	path := fmt.Sprintf("%s/%d", baseURL, rec.ID)
	body := fmt.Sprintf(`{"name":%q,"recommendationId":%d,"recommendationName":"renamed","type":"ACCESSORY","number_of_likes":%d,"id":12345}`,
		rec.Name, rec.RecommendationID, rec.NumberOfLikes)
	w := performRequest(r, http.MethodPut, path, body, "application/json")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeObject(t, w)
	assert.EqualValues(t, rec.ID, data["id"])
	assert.Equal(t, "renamed", data["recommendationName"])
	assert.Equal(t, "ACCESSORY", data["type"])

	stored, err := svc.FindOr404(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.RecommendationName)
	assert.Equal(t, models.Accessory, stored.Type)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateRecommendationErrors(t *testing.T) {
	r, svc := setupRecommendationRouter(t)
	rec := testhelpers.NewRecommendationFactory().Build()
	createRecommendations(t, svc, rec)
	path := fmt.Sprintf("%s/%d", baseURL, rec.ID)

	w := performRequest(r, http.MethodPut, baseURL+"/999", `{}`, "application/json")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(r, http.MethodPut, path, `{}`, "")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = performRequest(r, http.MethodPut, path, `{"name":"only"}`, "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := svc.FindOr404(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Serialize(), stored.Serialize())
}

func TestLikeRecommendation(t *testing.T) {
	r, svc := setupRecommendationRouter(t)
	rec := &models.Recommendation{Name: "prodA", RecommendationID: 2, RecommendationName: "prodB", Type: models.Upsell, NumberOfLikes: 4}
	createRecommendations(t, svc, rec)
	path := fmt.Sprintf("%s/%d/like", baseURL, rec.ID)

	w := performRequest(r, http.MethodPut, path, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5, decodeObject(t, w)["number_of_likes"])

	w = performRequest(r, http.MethodPut, path, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 6, decodeObject(t, w)["number_of_likes"])

	w = performRequest(r, http.MethodPut, baseURL+"/999/like", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecommendation(t *testing.T) {
	r, svc := setupRecommendationRouter(t)
	rec := testhelpers.NewRecommendationFactory().Build()
	createRecommendations(t, svc, rec)
	path := fmt.Sprintf("%s/%d", baseURL, rec.ID)

	w := performRequest(r, http.MethodDelete, path, "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = performRequest(r, http.MethodGet, path, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting again is not an error.
	w = performRequest(r, http.MethodDelete, path, "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListRecommendationsStoreFailure(t *testing.T) {
	svc := new(mocks.MockRecommendationService)
	svc.On("All", mock.Anything).Return(nil, errors.New("connection reset"))
	r := newTestRouter(svc)

	w := performRequest(r, http.MethodGet, baseURL, "", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertExpectations(t)
}

func TestDeleteRecommendationLookupFailure(t *testing.T) {
	svc := new(mocks.MockRecommendationService)
	svc.On("Find", mock.Anything, uint(7)).Return(nil, errors.New("connection reset"))
	r := newTestRouter(svc)

	w := performRequest(r, http.MethodDelete, baseURL+"/7", "", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdateRecommendationDoesNotTouchStoreOnBadBody(t *testing.T) {
	svc := new(mocks.MockRecommendationService)
	existing := &models.Recommendation{ID: 3, Name: "prodA", RecommendationName: "prodB", Type: models.Upsell}
	svc.On("FindOr404", mock.Anything, uint(3)).Return(existing, nil)
	r := newTestRouter(svc)

	w := performRequest(r, http.MethodPut, baseURL+"/3", `{"name":"prodA"}`, "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, "prodB", existing.RecommendationName)
}
