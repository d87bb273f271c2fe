package model

// Rating is the single live record for a (student, faculty) pair. Resubmission
// overwrites in place; the unique index is what makes the upsert race-safe.
// Optional axes are nullable so "not rated" stays distinct from any value.
// swagger:model Rating
type Rating struct {
	BaseModel
	StudentID          uint   `gorm:"not null;uniqueIndex:idx_rating_student_faculty" json:"studentId"`
	FacultyID          string `gorm:"type:varchar(36);not null;uniqueIndex:idx_rating_student_faculty;index" json:"facultyId"`
	Overall            int    `gorm:"not null" json:"overall"`
	Teaching           *int   `json:"teaching"`
	Attendance         *int   `json:"attendance"`
	DoubtClarification *int   `json:"doubtClarification"`
}

func (Rating) TableName() string {
	return "ratings"
}

// Value returns the stored value for a category and whether one is present.
func (r *Rating) Value(c Category) (int, bool) {
	switch c {
	case CategoryOverall:
		return r.Overall, true
	case CategoryTeaching:
		if r.Teaching != nil {
			return *r.Teaching, true
		}
	case CategoryAttendance:
		if r.Attendance != nil {
			return *r.Attendance, true
		}
	case CategoryDoubtClarification:
		if r.DoubtClarification != nil {
			return *r.DoubtClarification, true
		}
	}
	return 0, false
}

// RatingSubmit is the submission payload. Overall is mandatory, the rest are
// optional; every present value must be in [1,5].
// swagger:model RatingSubmit
type RatingSubmit struct {
	Overall            int  `json:"overall" binding:"required"`
	Teaching           *int `json:"teaching"`
	Attendance         *int `json:"attendance"`
	DoubtClarification *int `json:"doubtClarification"`
}
