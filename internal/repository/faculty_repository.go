package repository

import (
	"faculty_hub_backend/internal/model"

	"gorm.io/gorm"
)

type FacultyRepository struct {
	DB *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{DB: db}
}

// List returns the directory with project lists preloaded in sync order.
// An empty department means the whole corpus.
func (r *FacultyRepository) List(department model.Department) ([]model.Faculty, error) {
	query := r.DB.Preload("Projects", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var faculty []model.Faculty
	err := query.Order("name ASC").Find(&faculty).Error
	return faculty, err
}

func (r *FacultyRepository) FindByID(id string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.DB.Preload("Projects", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("id = ?", id).First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *FacultyRepository) Create(faculty *model.Faculty) error {
	return r.DB.Create(faculty).Error
}

func (r *FacultyRepository) Update(faculty *model.Faculty) error {
	return r.DB.Save(faculty).Error
}

func (r *FacultyRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("faculty_id = ?", id).Delete(&model.Project{}).Error; err != nil {
			return err
		}
		if err := tx.Where("faculty_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Faculty{}).Error
	})
}

// ReplaceProjects swaps a faculty member's project list wholesale, as the
// publication sync requires.
func (r *FacultyRepository) ReplaceProjects(facultyID string, projects []model.Project) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("faculty_id = ?", facultyID).Delete(&model.Project{}).Error; err != nil {
			return err
		}
		for i := range projects {
			projects[i].ID = 0
			projects[i].FacultyID = facultyID
			projects[i].Position = i
			if err := tx.Create(&projects[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
