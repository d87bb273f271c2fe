package database

import (
	"testing"

	"faculty_hub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var facultyCount int64
	db.Model(&model.Faculty{}).Count(&facultyCount)
	assert.EqualValues(t, 70, facultyCount)

	var projectCount int64
	db.Model(&model.Project{}).Count(&projectCount)
	assert.EqualValues(t, 140, projectCount)

	// Stable IDs so ratings survive a reseed on a fresh deployment.
	var fac model.Faculty
	require.NoError(t, db.Where("id = ?", "demo_SCOPE_0").First(&fac).Error)
	assert.Equal(t, model.DeptSCOPE, fac.Department)

	var tags []model.InterestTag
	require.NoError(t, db.Find(&tags).Error)
	assert.NotEmpty(t, tags)
	names := make(map[string]bool, len(tags))
	for _, tag := range tags {
		assert.False(t, names[tag.Name], "duplicate vocabulary entry %q", tag.Name)
		names[tag.Name] = true
	}
	assert.True(t, names["Robotics"])
}

func TestSeededProjectsMatchVocabulary(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	// Every seeded faculty carries projects whose titles embed a vocabulary
	// topic verbatim, so interest matching has data out of the box.
	var projects []model.Project
	require.NoError(t, db.Where("faculty_id = ?", "demo_SCOPE_1").Order("position ASC").Find(&projects).Error)
	require.Len(t, projects, 2)
	assert.Equal(t, 0, projects[0].Position)
	assert.Equal(t, 1, projects[1].Position)
	assert.NotEqual(t, projects[0].Title, projects[1].Title)
}
