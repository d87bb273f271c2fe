package repository

import (
	"faculty_hub_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListForFaculty(facultyID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.Where("faculty_id = ?", facultyID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Comment{}).Error
}
