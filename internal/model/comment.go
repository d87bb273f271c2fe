package model

// swagger:model Comment
type Comment struct {
	UUIDBase
	FacultyID       string  `gorm:"type:varchar(36);not null;index" json:"facultyId"`
	UserID          uint    `gorm:"not null;index" json:"userId"`
	UserName        string  `gorm:"size:100;not null" json:"userName"`
	UserPicture     string  `gorm:"size:255" json:"userPicture"`
	Content         string  `gorm:"type:text;not null" json:"content"`
	ParentCommentID *string `gorm:"type:varchar(36);index" json:"parentCommentId"`
}

func (Comment) TableName() string {
	return "comments"
}
