package controller

import (
	"errors"

	"faculty_hub_backend/internal/service"
	"faculty_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Update own profile
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.ProfileUpdate true "fields to change"
// @Success 200 {object} util.Response
// @Router /api/users/me [patch]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var update service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, update)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary Own preference profile
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/users/me/preferences [get]
func (c *UserController) GetPreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"ratingPreferences": user.RatingPreferences,
		"interestTags":      user.InterestTags,
	})
}

// @Summary Update rating preferences and interest tags
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.PreferenceUpdate true "preference halves to replace"
// @Success 200 {object} util.Response
// @Router /api/users/me/preferences [put]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var update service.PreferenceUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdatePreferences(claims.UserID, update)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCategory) || errors.Is(err, util.ErrUnknownInterestTag) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary Controlled interest vocabulary
// @Tags users
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/interests [get]
func (c *UserController) ListInterestTags(ctx *gin.Context) {
	tags, err := c.UserService.ListInterestVocabulary()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tags)
}
