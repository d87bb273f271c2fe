package controller

import (
	"strconv"

	"faculty_hub_backend/internal/service"
	"faculty_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// @Summary Personalized faculty recommendations
// @Tags recommendations
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "cap the number of entries"
// @Success 200 {object} util.Response
// @Router /api/recommendations [get]
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			util.BadRequest(ctx, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	entries, err := c.RecommendationService.Recommend(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
