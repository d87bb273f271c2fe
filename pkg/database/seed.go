package database

import (
	"fmt"
	"log"

	"faculty_hub_backend/internal/model"

	"gorm.io/gorm"
)

// Demo directory: 10 faculty per school, seeded once into an empty database.
// IDs are stable so ratings survive reseeding on a fresh deployment.
var seedNames = map[model.Department][]string{
	model.DeptSCOPE: {
		"Dr. Ada Lovelace", "Prof. Alan Turing", "Dr. Grace Hopper", "Prof. Donald Knuth",
		"Dr. Linus Torvalds", "Prof. Tim Berners-Lee", "Dr. Margaret Hamilton", "Prof. Dennis Ritchie",
		"Dr. Sophie Wilson", "Prof. Guido van Rossum",
	},
	model.DeptSENSE: {
		"Dr. Nikola Tesla", "Prof. Michael Faraday", "Dr. Guglielmo Marconi", "Prof. Samuel Morse",
		"Dr. Claude Shannon", "Prof. Jack Kilby", "Dr. Robert Noyce", "Prof. Gordon Moore",
		"Dr. Andrew Grove", "Prof. Robert Hall",
	},
	model.DeptSMEC: {
		"Dr. Henry Ford", "Prof. Karl Benz", "Prof. Rudolf Diesel", "Dr. James Watt",
		"Prof. George Stephenson", "Dr. Isambard Brunel", "Prof. Nikolaus Otto", "Dr. Elijah McCoy",
		"Prof. Gottlieb Daimler", "Dr. Charles Kettering",
	},
	model.DeptSAS: {
		"Dr. Marie Curie", "Prof. Albert Einstein", "Dr. Isaac Newton", "Prof. Galileo Galilei",
		"Dr. Richard Feynman", "Prof. Stephen Hawking", "Dr. Neil deGrasse Tyson", "Prof. Rosalind Franklin",
		"Dr. Dmitri Mendeleev", "Prof. Louis Pasteur",
	},
	model.DeptVSB: {
		"Dr. Peter Drucker", "Prof. Adam Smith", "Dr. Warren Buffett", "Prof. John Keynes",
		"Dr. Michael Porter", "Prof. Philip Kotler", "Dr. Jack Welch", "Prof. Henry Mintzberg",
		"Dr. Jim Collins", "Prof. Clayton Christensen",
	},
	model.DeptVSL: {
		"Dr. Ruth Bader Ginsburg", "Prof. Oliver Wendell Holmes", "Dr. Thurgood Marshall", "Prof. Sandra Day O'Connor",
		"Dr. William Blackstone", "Prof. Hugo Black", "Dr. Learned Hand", "Prof. Benjamin Cardozo",
		"Dr. John Marshall", "Prof. Antonin Scalia",
	},
	model.DeptVISH: {
		"Dr. Sigmund Freud", "Prof. Carl Jung", "Dr. B.F. Skinner", "Prof. Jean Piaget",
		"Dr. Noam Chomsky", "Prof. Jane Goodall", "Dr. Margaret Mead", "Prof. Erik Erikson",
		"Dr. Abraham Maslow", "Prof. Lev Vygotsky",
	},
}

var seedDesignations = map[model.Department][]string{
	model.DeptSCOPE: {"Professor", "Associate Professor", "Assistant Professor", "HOD"},
	model.DeptSENSE: {"Dean", "Professor", "Associate Professor", "Assistant Professor"},
	model.DeptSMEC:  {"Professor", "HOD", "Associate Professor", "Assistant Professor"},
	model.DeptSAS:   {"Senior Professor", "Professor", "Associate Professor", "Assistant Professor"},
	model.DeptVSB:   {"Professor", "Dean", "Associate Professor", "Assistant Professor"},
	model.DeptVSL:   {"Senior Advocate", "Professor", "Associate Professor", "HOD"},
	model.DeptVISH:  {"Professor", "Assistant Professor", "Associate Professor", "Dean"},
}

// Research topics per school. Project titles embed these verbatim so the
// interest matcher has something to bite on; the union of all topics forms
// the controlled interest vocabulary.
var seedTopics = map[model.Department][]string{
	model.DeptSCOPE: {"Deep Learning", "Robotics", "Blockchain", "Cloud Computing", "Cybersecurity"},
	model.DeptSENSE: {"VLSI Design", "Signal Processing", "Embedded Systems", "Wireless Networks", "IoT"},
	model.DeptSMEC:  {"Thermodynamics", "Robotics", "Additive Manufacturing", "Fluid Mechanics", "Automotive Design"},
	model.DeptSAS:   {"Quantum Computing", "Astrophysics", "Nanomaterials", "Computational Chemistry", "Biophysics"},
	model.DeptVSB:   {"Financial Analytics", "Supply Chain", "Digital Marketing", "Entrepreneurship", "Behavioral Economics"},
	model.DeptVSL:   {"Constitutional Law", "Intellectual Property", "Cyber Law", "Human Rights", "Corporate Law"},
	model.DeptVISH:  {"Cognitive Psychology", "Linguistics", "Social Behavior", "Developmental Psychology", "Anthropology"},
}

var projectTitleForms = []string{
	"%s for Smart Campuses",
	"Advances in %s",
	"%s in Practice: A Field Study",
	"Applications of %s in Industry",
}

// Seed populates the faculty directory and the interest vocabulary when the
// corresponding tables are empty. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var facultyCount int64
	if err := db.Model(&model.Faculty{}).Count(&facultyCount).Error; err != nil {
		return err
	}
	if facultyCount == 0 {
		if err := seedFaculty(db); err != nil {
			return err
		}
		log.Println("Seeded demo faculty directory")
	}

	var tagCount int64
	if err := db.Model(&model.InterestTag{}).Count(&tagCount).Error; err != nil {
		return err
	}
	if tagCount == 0 {
		if err := seedInterestVocabulary(db); err != nil {
			return err
		}
		log.Println("Seeded interest vocabulary")
	}

	return nil
}

func seedFaculty(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, dept := range model.AllDepartments() {
			names := seedNames[dept]
			designations := seedDesignations[dept]
			topics := seedTopics[dept]

			for i, name := range names {
				gender := "men"
				if i%2 == 1 {
					gender = "women"
				}

				fac := model.Faculty{
					UUIDBase:          model.UUIDBase{ID: fmt.Sprintf("demo_%s_%d", dept, i)},
					Name:              name,
					Department:        dept,
					Designation:       designations[i%len(designations)],
					ImageURL:          fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", gender, i+10),
					ResearchInterests: fmt.Sprintf("%s, %s", topics[i%len(topics)], topics[(i+2)%len(topics)]),
				}
				if err := tx.Create(&fac).Error; err != nil {
					return err
				}

				// Two starter projects per faculty; the publication sync
				// replaces these wholesale once a scholar feed is configured.
				for p := 0; p < 2; p++ {
					topic := topics[(i+2*p)%len(topics)]
					form := projectTitleForms[(i+p)%len(projectTitleForms)]
					project := model.Project{
						FacultyID:   fac.ID,
						Title:       fmt.Sprintf(form, topic),
						Year:        2020 + (i+p)%5,
						ExternalRef: fmt.Sprintf("seed_%s_%d_%d", dept, i, p),
						Position:    p,
					}
					if err := tx.Create(&project).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

func seedInterestVocabulary(db *gorm.DB) error {
	seen := make(map[string]bool)
	for _, dept := range model.AllDepartments() {
		for _, topic := range seedTopics[dept] {
			if seen[topic] {
				continue
			}
			seen[topic] = true
			tag := model.InterestTag{Name: topic, Enabled: true}
			if err := db.Create(&tag).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
