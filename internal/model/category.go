package model

// Category is one rateable dimension of a faculty member. The set is closed:
// every rating carries an overall value, the other three axes are optional.
type Category string

const (
	CategoryOverall            Category = "overall"
	CategoryTeaching           Category = "teaching"
	CategoryAttendance         Category = "attendance"
	CategoryDoubtClarification Category = "doubt_clarification"
)

// AllCategories is the canonical iteration order, overall first.
func AllCategories() []Category {
	return []Category{
		CategoryOverall,
		CategoryTeaching,
		CategoryAttendance,
		CategoryDoubtClarification,
	}
}

// PreferenceCategories are the axes a student may select in their profile.
// Overall is implicit and never a preference.
func PreferenceCategories() []Category {
	return []Category{
		CategoryTeaching,
		CategoryAttendance,
		CategoryDoubtClarification,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryOverall, CategoryTeaching, CategoryAttendance, CategoryDoubtClarification:
		return true
	}
	return false
}

// RankMethod selects how a ranking query scores each faculty member.
type RankMethod string

const (
	MethodAverage  RankMethod = "average"
	MethodWeighted RankMethod = "weighted"
)

func (m RankMethod) Valid() bool {
	return m == MethodAverage || m == MethodWeighted
}
