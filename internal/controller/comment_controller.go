package controller

import (
	"errors"

	"faculty_hub_backend/internal/service"
	"faculty_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	CommentService *service.CommentService
	AuthService    *service.AuthService
}

func NewCommentController(commentService *service.CommentService, authService *service.AuthService) *CommentController {
	return &CommentController{
		CommentService: commentService,
		AuthService:    authService,
	}
}

type commentCreateRequest struct {
	Content         string  `json:"content" binding:"required"`
	ParentCommentID *string `json:"parentCommentId"`
}

// @Summary Post a comment or reply on a faculty page
// @Tags comments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "faculty id"
// @Param body body commentCreateRequest true "comment payload"
// @Success 201 {object} util.Response
// @Router /api/faculty/{id}/comments [post]
func (c *CommentController) Create(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req commentCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommentService.Create(user, ctx.Param("id"), req.Content, req.ParentCommentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFacultyNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCommentNotFound):
			util.BadRequest(ctx, "parent comment not found on this faculty")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, comment)
}

// @Summary Comment thread for a faculty page
// @Tags comments
// @Produce json
// @Param id path string true "faculty id"
// @Success 200 {object} util.Response
// @Router /api/faculty/{id}/comments [get]
func (c *CommentController) ListForFaculty(ctx *gin.Context) {
	comments, err := c.CommentService.ListForFaculty(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}

// @Summary Delete own comment (admins may delete any)
// @Tags comments
// @Security ApiKeyAuth
// @Produce json
// @Param commentId path string true "comment id"
// @Success 200 {object} util.Response
// @Router /api/comments/{commentId} [delete]
func (c *CommentController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.CommentService.Delete(ctx.Param("commentId"), claims.UserID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCommentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "Comment deleted successfully"})
}
