package service

import (
	"errors"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"

	"gorm.io/gorm"
)

type CommentService struct {
	CommentRepo *repository.CommentRepository
	FacultyRepo *repository.FacultyRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, facultyRepo *repository.FacultyRepository) *CommentService {
	return &CommentService{
		CommentRepo: commentRepo,
		FacultyRepo: facultyRepo,
	}
}

func (s *CommentService) Create(user *model.User, facultyID, content string, parentID *string) (*model.Comment, error) {
	if _, err := s.FacultyRepo.FindByID(facultyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrFacultyNotFound
		}
		return nil, err
	}

	if parentID != nil {
		parent, err := s.CommentRepo.FindByID(*parentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCommentNotFound
		}
		if err != nil {
			return nil, err
		}
		if parent.FacultyID != facultyID {
			return nil, util.ErrCommentNotFound
		}
	}

	comment := &model.Comment{
		FacultyID:       facultyID,
		UserID:          user.ID,
		UserName:        user.Name,
		UserPicture:     user.Picture,
		Content:         content,
		ParentCommentID: parentID,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListForFaculty(facultyID string) ([]model.Comment, error) {
	return s.CommentRepo.ListForFaculty(facultyID)
}

// Delete removes a comment; only the author or an admin may delete.
func (s *CommentService) Delete(commentID string, userID uint, role model.UserRole) error {
	comment, err := s.CommentRepo.FindByID(commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCommentNotFound
	}
	if err != nil {
		return err
	}

	if comment.UserID != userID && role != model.Admin {
		return util.ErrPermissionDenied
	}

	return s.CommentRepo.Delete(commentID)
}
