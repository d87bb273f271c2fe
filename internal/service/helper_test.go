package service

import (
	"fmt"
	"strings"
	"testing"

	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createFaculty(t *testing.T, db *gorm.DB, name string, dept model.Department) model.Faculty {
	t.Helper()
	f := model.Faculty{
		Name:        name,
		Department:  dept,
		Designation: "Assistant Professor",
	}
	require.NoError(t, db.Create(&f).Error)
	return f
}

func createStudent(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := model.User{
		Name:     "Test Student",
		Email:    email,
		Password: "irrelevant",
		Role:     model.Student,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func createInterestTag(t *testing.T, db *gorm.DB, name string) {
	t.Helper()
	require.NoError(t, db.Create(&model.InterestTag{Name: name, Enabled: true}).Error)
}

func addProject(t *testing.T, db *gorm.DB, facultyID, title string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Project{FacultyID: facultyID, Title: title}).Error)
}

func newRatingService(db *gorm.DB) *RatingService {
	return NewRatingService(
		repository.NewRatingRepository(db),
		repository.NewFacultyRepository(db),
		NewAggregateCache(nil),
	)
}

func newRankingService(db *gorm.DB) *RankingService {
	return NewRankingService(
		repository.NewFacultyRepository(db),
		repository.NewRatingRepository(db),
	)
}
