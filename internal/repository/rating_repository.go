package repository

import (
	"errors"

	"faculty_hub_backend/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Upsert stores the single live rating for a (student, faculty) pair.
// Find-then-save runs inside one transaction so two racing submissions from
// the same student serialize to one of the two submitted values; the unique
// index on (student_id, faculty_id) backstops the invariant.
func (r *RatingRepository) Upsert(rating *model.Rating) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Rating
		err := tx.Where("student_id = ? AND faculty_id = ?", rating.StudentID, rating.FacultyID).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(rating).Error
		}
		if err != nil {
			return err
		}

		existing.Overall = rating.Overall
		existing.Teaching = rating.Teaching
		existing.Attendance = rating.Attendance
		existing.DoubtClarification = rating.DoubtClarification
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*rating = existing
		return nil
	})
}

func (r *RatingRepository) FindForStudent(studentID uint, facultyID string) (*model.Rating, error) {
	var rating model.Rating
	err := r.DB.Where("student_id = ? AND faculty_id = ?", studentID, facultyID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) ListForFaculty(facultyID string) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.DB.Where("faculty_id = ?", facultyID).Find(&ratings).Error
	return ratings, err
}

// ListAll returns every live rating keyed by faculty id, the snapshot the
// aggregator recomputes from on each ranking or recommendation query.
func (r *RatingRepository) ListAll() (map[string][]model.Rating, error) {
	var ratings []model.Rating
	if err := r.DB.Find(&ratings).Error; err != nil {
		return nil, err
	}

	byFaculty := make(map[string][]model.Rating)
	for _, rating := range ratings {
		byFaculty[rating.FacultyID] = append(byFaculty[rating.FacultyID], rating)
	}
	return byFaculty, nil
}
