package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCriteria marks a badge whose stored rule payload cannot be
// understood. Callers skip that badge and keep evaluating the rest.
var ErrInvalidCriteria = errors.New("invalid badge criteria")

// CriteriaType is the discriminant of the closed rule set.
type CriteriaType string

const (
	CriteriaStateCount     CriteriaType = "stateCount"
	CriteriaRegionComplete CriteriaType = "regionComplete"
	CriteriaSpecificStates CriteriaType = "specificStates"
)

// Criteria is the typed form of a badge's jsonb rule payload.
// Exactly one variant is populated, selected by Type:
//
//   - stateCount: Count distinct visited states required
//   - regionComplete: every code in States must be visited
//   - specificStates: all of States (RequireAll), or at least one of States
//     AND at least one of AndStates (RequireAtLeastOneFrom)
type Criteria struct {
	Type CriteriaType

	Count int

	States []string

	RequireAll            bool
	RequireAtLeastOneFrom bool
	AndStates             []string
}

// typeReplacer strips the separators that drifted between catalog producers
// ("states_count", "stateCount", "STATE-COUNT"). Compatibility shim for the
// evolving schema — do not add new spellings on top of it.
var typeReplacer = strings.NewReplacer("_", "", "-", "", " ", "")

func normalizeCriteriaType(raw string) string {
	return typeReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
}

// ParseCriteria decodes and validates a raw criteria payload into its typed
// variant. It never panics on malformed input; anything unrecognized comes
// back wrapped in ErrInvalidCriteria.
func ParseCriteria(raw []byte) (*Criteria, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidCriteria)
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}

	// Some catalog rows were stored JSON-encoded one level too many (a string
	// holding JSON, occasionally a string holding a string holding JSON).
	// Peel and decode again while the result is still a string.
	for i := 0; i < 2; i++ {
		text, ok := value.(string)
		if !ok {
			break
		}
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			return nil, fmt.Errorf("%w: nested payload: %v", ErrInvalidCriteria, err)
		}
	}

	payload, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: payload is not an object", ErrInvalidCriteria)
	}

	rawType, ok := payload["type"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing type discriminant", ErrInvalidCriteria)
	}

	switch normalizeCriteriaType(rawType) {
	case "statecount", "statescount":
		return parseStateCount(payload)
	case "regioncomplete":
		return parseRegionComplete(payload)
	case "specificstates":
		return parseSpecificStates(payload)
	default:
		return nil, fmt.Errorf("%w: unrecognized type %q", ErrInvalidCriteria, rawType)
	}
}

func parseStateCount(payload map[string]interface{}) (*Criteria, error) {
	count, ok := intField(payload, "count", "value")
	if !ok {
		return nil, fmt.Errorf("%w: stateCount requires a numeric count", ErrInvalidCriteria)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: stateCount requires count > 0, got %d", ErrInvalidCriteria, count)
	}
	return &Criteria{Type: CriteriaStateCount, Count: count}, nil
}

func parseRegionComplete(payload map[string]interface{}) (*Criteria, error) {
	states, ok := stateListField(payload, "states", "value")
	if !ok {
		return nil, fmt.Errorf("%w: regionComplete requires a state list", ErrInvalidCriteria)
	}
	// An empty region parses but is never satisfiable; the evaluator logs it
	// as a config error instead of failing the whole pass.
	return &Criteria{Type: CriteriaRegionComplete, States: states}, nil
}

func parseSpecificStates(payload map[string]interface{}) (*Criteria, error) {
	states, ok := stateListField(payload, "states", "value")
	if !ok || len(states) == 0 {
		return nil, fmt.Errorf("%w: specificStates requires a non-empty state list", ErrInvalidCriteria)
	}

	c := &Criteria{Type: CriteriaSpecificStates, States: states}

	atLeastOne := boolField(payload, "requireAtLeastOne")
	fromEach := boolField(payload, "requireAtLeastOneFrom")
	if atLeastOne && fromEach {
		andStates, ok := stateListField(payload, "andStates")
		if !ok || len(andStates) == 0 {
			return nil, fmt.Errorf("%w: one-from-each mode requires andStates", ErrInvalidCriteria)
		}
		c.RequireAtLeastOneFrom = true
		c.AndStates = andStates
		return c, nil
	}

	// A bare state list means "visit them all" — the seeded catalog never
	// sets requireAll explicitly.
	c.RequireAll = true
	return c, nil
}

// intField returns the first key that is present and numeric.
func intField(payload map[string]interface{}, keys ...string) (int, bool) {
	for _, key := range keys {
		value, ok := payload[key]
		if !ok {
			continue
		}
		if n, ok := value.(float64); ok {
			return int(n), true
		}
	}
	return 0, false
}

// stateListField returns the first key that is present and a list of strings.
// Codes come back trimmed and uppercased.
func stateListField(payload map[string]interface{}, keys ...string) ([]string, bool) {
	for _, key := range keys {
		value, ok := payload[key]
		if !ok {
			continue
		}
		items, ok := value.([]interface{})
		if !ok {
			continue
		}
		states := make([]string, 0, len(items))
		valid := true
		for _, item := range items {
			code, ok := item.(string)
			if !ok {
				valid = false
				break
			}
			states = append(states, strings.ToUpper(strings.TrimSpace(code)))
		}
		if valid {
			return states, true
		}
	}
	return nil, false
}

func boolField(payload map[string]interface{}, key string) bool {
	b, _ := payload[key].(bool)
	return b
}
