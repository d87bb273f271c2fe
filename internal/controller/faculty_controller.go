package controller

import (
	"errors"
	"fmt"
	"path/filepath"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/service"
	"faculty_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FacultyController struct {
	FacultyService *service.FacultyService
	SyncService    *service.PublicationSyncService
	StorageService *service.StorageService
}

func NewFacultyController(facultyService *service.FacultyService, syncService *service.PublicationSyncService, storageService *service.StorageService) *FacultyController {
	return &FacultyController{
		FacultyService: facultyService,
		SyncService:    syncService,
		StorageService: storageService,
	}
}

// @Summary Faculty directory, optionally filtered by department
// @Tags faculty
// @Produce json
// @Param department query string false "department code"
// @Success 200 {object} util.Response
// @Router /api/faculty [get]
func (c *FacultyController) List(ctx *gin.Context) {
	views, err := c.FacultyService.List(ctx.Query("department"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// @Summary Single faculty record with recomputed aggregates
// @Tags faculty
// @Produce json
// @Param id path string true "faculty id"
// @Success 200 {object} util.Response
// @Router /api/faculty/{id} [get]
func (c *FacultyController) Get(ctx *gin.Context) {
	view, err := c.FacultyService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrFacultyNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type facultyCreateRequest struct {
	Name              string           `json:"name" binding:"required"`
	Department        model.Department `json:"department" binding:"required"`
	Designation       string           `json:"designation" binding:"required"`
	ImageURL          string           `json:"imageUrl"`
	ScholarProfile    string           `json:"scholarProfile"`
	ResearchInterests string           `json:"researchInterests"`
}

// @Summary Create a faculty record
// @Tags faculty
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body facultyCreateRequest true "faculty record"
// @Success 201 {object} util.Response
// @Router /api/admin/faculty [post]
func (c *FacultyController) Create(ctx *gin.Context) {
	var req facultyCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	faculty := model.Faculty{
		Name:              req.Name,
		Department:        req.Department,
		Designation:       req.Designation,
		ImageURL:          req.ImageURL,
		ScholarProfile:    req.ScholarProfile,
		ResearchInterests: req.ResearchInterests,
	}

	if err := c.FacultyService.Create(&faculty); err != nil {
		if errors.Is(err, util.ErrInvalidDepartment) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, faculty)
}

// @Summary Update a faculty record
// @Tags faculty
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "faculty id"
// @Param body body service.FacultyUpdate true "fields to change"
// @Success 200 {object} util.Response
// @Router /api/admin/faculty/{id} [patch]
func (c *FacultyController) Update(ctx *gin.Context) {
	var update service.FacultyUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	faculty, err := c.FacultyService.Update(ctx.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFacultyNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidDepartment):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, faculty)
}

// @Summary Delete a faculty record
// @Tags faculty
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "faculty id"
// @Success 200 {object} util.Response
// @Router /api/admin/faculty/{id} [delete]
func (c *FacultyController) Delete(ctx *gin.Context) {
	if err := c.FacultyService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrFacultyNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Faculty deleted successfully"})
}

// @Summary Upload a faculty profile image
// @Tags faculty
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "faculty id"
// @Param file formData file true "image file"
// @Success 200 {object} util.Response
// @Router /api/admin/faculty/{id}/image [post]
func (c *FacultyController) UploadImage(ctx *gin.Context) {
	id := ctx.Param("id")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("faculty/%s/%s%s", id, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	imageURL, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	faculty, err := c.FacultyService.Update(id, service.FacultyUpdate{ImageURL: &imageURL})
	if err != nil {
		if errors.Is(err, util.ErrFacultyNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, faculty)
}

// @Summary Re-sync one faculty member's publications from the scholar feed
// @Tags faculty
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "faculty id"
// @Success 200 {object} util.Response
// @Router /api/admin/faculty/{id}/sync [post]
func (c *FacultyController) SyncPublications(ctx *gin.Context) {
	if !c.SyncService.Enabled() {
		util.BadRequest(ctx, "scholar feed is not configured")
		return
	}

	if err := c.SyncService.SyncFaculty(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrFacultyNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Publications synced"})
}
