package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recommendations/backend/internal/logging"
	"github.com/pageza/recommendations/backend/internal/middleware"
	"github.com/pageza/recommendations/backend/internal/models"
	"github.com/pageza/recommendations/backend/internal/service"
)

const jsonMediaType = "application/json"

// RecommendationHandler serves the /recommendations resource.
type RecommendationHandler struct {
	service service.IRecommendationService
	limiter *middleware.RateLimiter
}

// NewRecommendationHandler creates a handler without rate limiting.
func NewRecommendationHandler(svc service.IRecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: svc}
}

// NewRecommendationHandlerWithRateLimit creates a handler whose write
// endpoints are limited by limiter. A nil limiter disables limiting.
func NewRecommendationHandlerWithRateLimit(svc service.IRecommendationService, limiter *middleware.RateLimiter) *RecommendationHandler {
	return &RecommendationHandler{service: svc, limiter: limiter}
}

func (h *RecommendationHandler) RegisterRoutes(router gin.IRouter) {
	limit := h.limiter.RateLimitMiddleware()
	requireJSON := middleware.RequireContentType(jsonMediaType)

	recs := router.Group("/recommendations")
	{
		recs.GET("", h.ListRecommendations)
		recs.GET("/:id", h.GetRecommendation)
		recs.POST("", limit, requireJSON, h.CreateRecommendation)
		recs.PUT("/:id", limit, requireJSON, h.UpdateRecommendation)
		recs.PUT("/:id/like", limit, h.LikeRecommendation)
		recs.DELETE("/:id", limit, h.DeleteRecommendation)
	}
}

// ListRecommendations returns every recommendation, optionally filtered by
// the name and type query parameters.
func (h *RecommendationHandler) ListRecommendations(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Query("name")
	typeName := c.Query("type")

	if name == "" && typeName == "" {
		recs, err := h.service.All(ctx)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, serializeAll(recs))
		return
	}

	var t models.RecommendationType
	if typeName != "" {
		var err error
		if t, err = models.ParseRecommendationType(typeName); err != nil {
			_ = c.Error(err)
			return
		}
	}

	var query *service.RecommendationQuery
	if name != "" {
		query = h.service.FindByName(ctx, name)
		if typeName != "" {
			query = query.Where("type = ?", t)
		}
	} else {
		query = h.service.FindByType(ctx, t)
	}

	recs, err := query.Items()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializeAll(recs))
}

// GetRecommendation returns a single recommendation by id.
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rec, err := h.service.FindOr404(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec.Serialize())
}

// CreateRecommendation deserializes the body into a new recommendation and
// stores it.
func (h *RecommendationHandler) CreateRecommendation(c *gin.Context) {
	ctx := c.Request.Context()
	logging.Ctx(ctx).Info().Msg("Request to create a recommendation")

	body, err := bindBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rec, err := (&models.Recommendation{}).Deserialize(body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Create(ctx, rec); err != nil {
		_ = c.Error(err)
		return
	}

	logging.Ctx(ctx).Info().Uint("id", rec.ID).Msg("Recommendation created")
	c.Header("Location", fmt.Sprintf("/recommendations/%d", rec.ID))
	c.JSON(http.StatusCreated, rec.Serialize())
}

// UpdateRecommendation replaces the data fields of an existing recommendation.
func (h *RecommendationHandler) UpdateRecommendation(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rec, err := h.service.FindOr404(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	body, err := bindBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := rec.Deserialize(body); err != nil {
		_ = c.Error(err)
		return
	}
	rec.ID = id

	if err := h.service.Update(ctx, rec); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec.Serialize())
}

// LikeRecommendation adds one like to a recommendation.
func (h *RecommendationHandler) LikeRecommendation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rec, err := h.service.Like(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec.Serialize())
}

// DeleteRecommendation removes a recommendation. Deleting one that does not
// exist still succeeds.
func (h *RecommendationHandler) DeleteRecommendation(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rec, err := h.service.Find(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if rec != nil {
		if err := h.service.Delete(ctx, rec); err != nil {
			_ = c.Error(err)
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &models.DataValidationError{Field: "id", Message: fmt.Sprintf("invalid recommendation id: %q", raw)}
	}
	return uint(id), nil
}

// bindBody decodes the JSON body without assuming its shape, so that
// Deserialize can report what was actually sent.
func bindBody(c *gin.Context) (interface{}, error) {
	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, &models.DataValidationError{
			Message: "Invalid Recommendation: body of request contained bad or no data " + err.Error(),
		}
	}
	return body, nil
}

func serializeAll(recs []*models.Recommendation) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Serialize())
	}
	return out
}
