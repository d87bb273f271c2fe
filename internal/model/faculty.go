package model

// Department is a school of the institute. Closed set, mirrored by the seed data.
type Department string

const (
	DeptSCOPE Department = "SCOPE" // Computer Science
	DeptSENSE Department = "SENSE" // Electronics
	DeptSMEC  Department = "SMEC"  // Mechanical
	DeptSAS   Department = "SAS"   // Advanced Sciences
	DeptVSB   Department = "VSB"   // Business
	DeptVSL   Department = "VSL"   // Law
	DeptVISH  Department = "VISH"  // Social Sciences
)

func AllDepartments() []Department {
	return []Department{DeptSCOPE, DeptSENSE, DeptSMEC, DeptSAS, DeptVSB, DeptVSL, DeptVISH}
}

func (d Department) Valid() bool {
	for _, dept := range AllDepartments() {
		if d == dept {
			return true
		}
	}
	return false
}

// swagger:model Faculty
type Faculty struct {
	UUIDBase
	Name              string     `gorm:"size:100;not null;index" json:"name"`
	Department        Department `gorm:"size:10;not null;index" json:"department"`
	Designation       string     `gorm:"size:100;not null" json:"designation"`
	ImageURL          string     `gorm:"size:255" json:"imageUrl"`
	ScholarProfile    string     `gorm:"size:255" json:"scholarProfile"`
	ResearchInterests string     `gorm:"size:500" json:"researchInterests"`
	Projects          []Project  `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"projects"`
}

func (Faculty) TableName() string {
	return "faculty"
}

// Project is one entry of a faculty member's research output. The list is
// replaced wholesale on every publication sync, ordered by Position.
// swagger:model Project
type Project struct {
	BaseModel
	FacultyID   string `gorm:"type:varchar(36);not null;index" json:"facultyId"`
	Title       string `gorm:"size:300;not null" json:"title"`
	Year        int    `json:"year"`
	ExternalRef string `gorm:"size:100" json:"externalRef"` // id in the upstream scholar feed
	Position    int    `gorm:"not null;default:0" json:"position"`
}

func (Project) TableName() string {
	return "faculty_projects"
}
