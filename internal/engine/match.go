package engine

import (
	"fmt"
	"strings"

	"faculty_hub_backend/internal/model"
)

// InterestMatch is the result of comparing a student's interest tags against
// one faculty member's project list.
type InterestMatch struct {
	// Count is the number of interest tags that match at least one project,
	// not the number of tag/project pairs, so faculty with many near-duplicate
	// publications are not over-weighted.
	Count       int
	MatchedTags []string
	// Reason is a display-only sentence naming the matched tags and an
	// example project title. It never influences ordering.
	Reason string
}

// MatchInterests does case-insensitive substring matching of each tag against
// the project titles. Tags that match no project contribute nothing.
func MatchInterests(tags []string, projects []model.Project) InterestMatch {
	var match InterestMatch
	example := ""

	for _, tag := range tags {
		needle := strings.ToLower(strings.TrimSpace(tag))
		if needle == "" {
			continue
		}
		for _, p := range projects {
			if strings.Contains(strings.ToLower(p.Title), needle) {
				match.MatchedTags = append(match.MatchedTags, tag)
				if example == "" {
					example = p.Title
				}
				break
			}
		}
	}

	match.Count = len(match.MatchedTags)
	match.Reason = matchReason(match.MatchedTags, example)
	return match
}

func matchReason(tags []string, example string) string {
	if len(tags) == 0 {
		return ""
	}

	noun := "interest"
	if len(tags) > 1 {
		noun = "interests"
	}
	list := joinTags(tags)

	if example != "" {
		return fmt.Sprintf("Matches your %s in %s, e.g. %q", noun, list, example)
	}
	return fmt.Sprintf("Matches your %s in %s", noun, list)
}

func joinTags(tags []string) string {
	switch len(tags) {
	case 1:
		return tags[0]
	case 2:
		return tags[0] + " and " + tags[1]
	default:
		return strings.Join(tags[:len(tags)-1], ", ") + " and " + tags[len(tags)-1]
	}
}
