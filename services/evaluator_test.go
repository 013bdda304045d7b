package services

import (
	"encoding/json"
	"testing"

	"state-tracker-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeWithCriteria(id uint, name, criteria string) models.Badge {
	return models.Badge{
		ID:       id,
		Name:     name,
		Criteria: json.RawMessage(criteria),
	}
}

func earnedNames(earned []EarnedBadge) []string {
	names := make([]string, 0, len(earned))
	for _, e := range earned {
		names = append(names, e.Badge.Name)
	}
	return names
}

func TestEvaluateBadges_StateCountThreshold(t *testing.T) {
	badge := badgeWithCriteria(1, "Explorer", `{"type": "states_count", "value": 10}`)

	nine := []string{"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL"}
	assert.Empty(t, EvaluateBadges(nine, []models.Badge{badge}))

	ten := append(nine, "GA")
	earned := EvaluateBadges(ten, []models.Badge{badge})
	require.Len(t, earned, 1)
	assert.Equal(t, "Explorer", earned[0].Badge.Name)
	assert.Equal(t, 10, earned[0].Metadata["statesCount"])
}

func TestEvaluateBadges_CountsDistinctStatesOnly(t *testing.T) {
	badge := badgeWithCriteria(1, "Pair", `{"type": "states_count", "count": 3}`)

	// duplicates and case variants collapse to two states
	visited := []string{"CA", "ca", " CA ", "NV", "nv"}
	assert.Empty(t, EvaluateBadges(visited, []models.Badge{badge}))
}

func TestEvaluateBadges_RegionComplete(t *testing.T) {
	badge := badgeWithCriteria(5, "West Coast Explorer",
		`{"type": "region_complete", "value": ["CA", "OR", "WA"]}`)

	// subset — not earned
	assert.Empty(t, EvaluateBadges([]string{"CA", "OR"}, []models.Badge{badge}))

	// exact set
	earned := EvaluateBadges([]string{"CA", "OR", "WA"}, []models.Badge{badge})
	require.Len(t, earned, 1)
	assert.Equal(t, []string{"CA", "OR", "WA"}, earned[0].Metadata["regionStates"])

	// superset still earns — extra states never hurt
	earned = EvaluateBadges([]string{"CA", "OR", "WA", "NV", "TX"}, []models.Badge{badge})
	assert.Len(t, earned, 1)
}

func TestEvaluateBadges_SpecificStatesRequireAll(t *testing.T) {
	badge := badgeWithCriteria(9, "Four Corners",
		`{"type": "specific_states", "value": ["AZ", "CO", "NM", "UT"]}`)

	assert.Empty(t, EvaluateBadges([]string{"AZ", "CO", "NM"}, []models.Badge{badge}))
	assert.Len(t, EvaluateBadges([]string{"AZ", "CO", "NM", "UT"}, []models.Badge{badge}), 1)
}

func TestEvaluateBadges_SpecificStatesOneFromEach(t *testing.T) {
	badge := badgeWithCriteria(10, "Coast to Coast", `{
		"type": "specific_states",
		"states": ["CA", "OR", "WA"],
		"requireAtLeastOne": true,
		"requireAtLeastOneFrom": true,
		"andStates": ["ME", "NY", "FL"]
	}`)

	// only one side covered
	assert.Empty(t, EvaluateBadges([]string{"CA"}, []models.Badge{badge}))
	assert.Empty(t, EvaluateBadges([]string{"NY", "FL"}, []models.Badge{badge}))

	// one from each group
	earned := EvaluateBadges([]string{"CA", "NY"}, []models.Badge{badge})
	require.Len(t, earned, 1)
	assert.Equal(t, []string{"CA", "OR", "WA"}, earned[0].Metadata["specificStates"])
}

func TestEvaluateBadges_MalformedCriteriaDoesNotBlockOthers(t *testing.T) {
	badges := []models.Badge{
		badgeWithCriteria(1, "Broken", `{"type": "mystery", "value": 1}`),
		badgeWithCriteria(2, "First Steps", `{"type": "states_count", "count": 1}`),
		badgeWithCriteria(3, "Also Broken", `not even json`),
	}

	earned := EvaluateBadges([]string{"TX"}, badges)
	assert.Equal(t, []string{"First Steps"}, earnedNames(earned))
}

func TestEvaluateBadges_EmptyRegionNeverSatisfied(t *testing.T) {
	badge := badgeWithCriteria(7, "Nowhere", `{"type": "region_complete", "states": []}`)
	assert.Empty(t, EvaluateBadges([]string{"CA", "OR", "WA"}, []models.Badge{badge}))
}

func TestEvaluateBadges_ReturnsAllSatisfiedInCatalogOrder(t *testing.T) {
	badges := []models.Badge{
		badgeWithCriteria(1, "First Steps", `{"type": "states_count", "count": 1}`),
		badgeWithCriteria(2, "Getting Around", `{"type": "states_count", "count": 3}`),
		badgeWithCriteria(3, "Out Of Reach", `{"type": "states_count", "count": 40}`),
	}

	earned := EvaluateBadges([]string{"CA", "OR", "WA"}, badges)
	assert.Equal(t, []string{"First Steps", "Getting Around"}, earnedNames(earned))
}

func TestEvaluateBadges_SeededCatalogSanity(t *testing.T) {
	// The shipped catalog itself must parse — a malformed seed would silently
	// turn badges unreachable.
	for _, badge := range models.DefaultBadges {
		_, err := models.ParseCriteria(badge.Criteria)
		assert.NoError(t, err, badge.Name)
	}
}

func TestNormalizeUserID(t *testing.T) {
	cases := map[string]string{
		"123":      "user_123",
		" 42 ":     "user_42",
		"user_123": "user_123",
		"alice":    "alice",
		"":         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeUserID(in), in)
	}
}
