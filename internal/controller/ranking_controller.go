package controller

import (
	"errors"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/service"
	"faculty_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	RankingService *service.RankingService
}

func NewRankingController(rankingService *service.RankingService) *RankingController {
	return &RankingController{RankingService: rankingService}
}

// @Summary Ranked faculty for a category
// @Tags rankings
// @Produce json
// @Param department query string false "restrict eligibility to one department"
// @Param category query string true "overall, teaching, attendance or doubt_clarification"
// @Param method query string false "average or weighted (default weighted)"
// @Success 200 {object} util.Response
// @Router /api/rankings [get]
func (c *RankingController) Rank(ctx *gin.Context) {
	category := ctx.DefaultQuery("category", string(model.CategoryOverall))

	entries, err := c.RankingService.Rank(ctx.Query("department"), category, ctx.Query("method"))
	if err != nil {
		if errors.Is(err, util.ErrInvalidCategory) || errors.Is(err, util.ErrInvalidMethod) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
