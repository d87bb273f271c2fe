package engine

import (
	"testing"

	"faculty_hub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchInterestsSubstringCaseInsensitive(t *testing.T) {
	projects := []model.Project{
		{Title: "Robotics in Manufacturing"},
		{Title: "Deep Learning for Vision"},
	}

	match := MatchInterests([]string{"Robotics", "Blockchain"}, projects)

	assert.Equal(t, 1, match.Count)
	assert.Equal(t, []string{"Robotics"}, match.MatchedTags)
	assert.Contains(t, match.Reason, "Robotics")
	assert.Contains(t, match.Reason, `"Robotics in Manufacturing"`)
	assert.NotContains(t, match.Reason, "Blockchain")
}

func TestMatchInterestsCountsTagsNotPairs(t *testing.T) {
	// One tag hitting three projects still counts once.
	projects := []model.Project{
		{Title: "Robotics I"},
		{Title: "Robotics II"},
		{Title: "Advanced robotics"},
	}

	match := MatchInterests([]string{"robotics"}, projects)
	assert.Equal(t, 1, match.Count)
}

func TestMatchInterestsIgnoresBlankTags(t *testing.T) {
	projects := []model.Project{{Title: "Anything"}}

	match := MatchInterests([]string{"", "   "}, projects)
	assert.Equal(t, 0, match.Count)
	assert.Empty(t, match.Reason)
}

func TestMatchInterestsNoProjects(t *testing.T) {
	match := MatchInterests([]string{"Robotics"}, nil)
	assert.Equal(t, 0, match.Count)
	assert.Empty(t, match.MatchedTags)
}

func TestMatchReasonListFormats(t *testing.T) {
	projects := []model.Project{
		{Title: "Robotics and IoT"},
		{Title: "Cryptography Basics"},
		{Title: "Compilers in Practice"},
	}

	two := MatchInterests([]string{"Robotics", "Cryptography"}, projects)
	require.Equal(t, 2, two.Count)
	assert.Contains(t, two.Reason, "Robotics and Cryptography")

	three := MatchInterests([]string{"Robotics", "Cryptography", "Compilers"}, projects)
	require.Equal(t, 3, three.Count)
	assert.Contains(t, three.Reason, "Robotics, Cryptography and Compilers")
}
