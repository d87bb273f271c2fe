package controller

import (
	"errors"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/service"
	"faculty_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	RatingService *service.RatingService
}

func NewRatingController(ratingService *service.RatingService) *RatingController {
	return &RatingController{RatingService: ratingService}
}

// @Summary Submit or replace own rating for a faculty member
// @Tags ratings
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "faculty id"
// @Param body body model.RatingSubmit true "category values, overall required"
// @Success 200 {object} util.Response
// @Router /api/faculty/{id}/ratings [post]
func (c *RatingController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var submit model.RatingSubmit
	if err := ctx.ShouldBindJSON(&submit); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rating, err := c.RatingService.Submit(ctx.Request.Context(), claims.UserID, ctx.Param("id"), &submit)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrOverallRequired), errors.Is(err, util.ErrRatingOutOfRange):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrFacultyNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, rating)
}

// @Summary Own live rating for a faculty member
// @Tags ratings
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "faculty id"
// @Success 200 {object} util.Response
// @Router /api/faculty/{id}/ratings/me [get]
func (c *RatingController) MyRating(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rating, err := c.RatingService.MyRating(claims.UserID, ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rating)
}
