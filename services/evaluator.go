package services

import (
	"log"
	"strings"

	"state-tracker-system/models"
)

// EarnedBadge pairs a satisfied badge with the facts captured at award time.
// The metadata is informational only — nothing ever reads it back to decide
// eligibility.
type EarnedBadge struct {
	Badge    models.Badge
	Metadata map[string]interface{}
}

// EvaluateBadges decides which of the unearned badges the visited set now
// satisfies. Pure function: no DB, no clock — callers own fetching the inputs
// and recording the awards. Badges are checked in catalog order and every
// satisfied one is returned, not just the first.
func EvaluateBadges(visitedCodes []string, unearnedBadges []models.Badge) []EarnedBadge {
	visited := make(map[string]bool, len(visitedCodes))
	for _, code := range visitedCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			visited[code] = true
		}
	}
	visitedCount := len(visited)

	var earned []EarnedBadge
	for _, badge := range unearnedBadges {
		criteria, err := models.ParseCriteria(badge.Criteria)
		if err != nil {
			// One bad catalog row must not block the rest of the pass.
			log.Printf("⚠️ [BADGES] skipping badge %d (%s): %v", badge.ID, badge.Name, err)
			continue
		}

		switch criteria.Type {
		case models.CriteriaStateCount:
			if visitedCount >= criteria.Count {
				earned = append(earned, EarnedBadge{
					Badge:    badge,
					Metadata: map[string]interface{}{"statesCount": visitedCount},
				})
			}

		case models.CriteriaRegionComplete:
			if len(criteria.States) == 0 {
				log.Printf("⚠️ [BADGES] badge %d (%s) has an empty region — never satisfiable", badge.ID, badge.Name)
				continue
			}
			if containsAll(visited, criteria.States) {
				earned = append(earned, EarnedBadge{
					Badge:    badge,
					Metadata: map[string]interface{}{"regionStates": criteria.States},
				})
			}

		case models.CriteriaSpecificStates:
			satisfied := false
			if criteria.RequireAtLeastOneFrom {
				satisfied = containsAny(visited, criteria.States) && containsAny(visited, criteria.AndStates)
			} else {
				satisfied = containsAll(visited, criteria.States)
			}
			if satisfied {
				earned = append(earned, EarnedBadge{
					Badge:    badge,
					Metadata: map[string]interface{}{"specificStates": criteria.States},
				})
			}
		}
	}
	return earned
}

func containsAll(visited map[string]bool, states []string) bool {
	for _, code := range states {
		if !visited[code] {
			return false
		}
	}
	return true
}

func containsAny(visited map[string]bool, states []string) bool {
	for _, code := range states {
		if visited[code] {
			return true
		}
	}
	return false
}
