package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'student'" json:"role"`
	Picture  string   `gorm:"size:255" json:"picture"`
	Disabled bool     `gorm:"default:false" json:"disabled"`

	// Preference profile used by the recommendation surface. Both sets are
	// independently optional; see RecommendationService for mode selection.
	RatingPreferences []string `gorm:"serializer:json" json:"ratingPreferences"`
	InterestTags      []string `gorm:"serializer:json" json:"interestTags"`

	LastLogin time.Time `json:"lastLogin"`
	LastSeen  time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// InterestTag is a row of the controlled vocabulary students pick from.
// swagger:model InterestTag
type InterestTag struct {
	BaseModel
	Name    string `gorm:"size:100;unique;not null" json:"name"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
}

func (InterestTag) TableName() string {
	return "interest_tags"
}
