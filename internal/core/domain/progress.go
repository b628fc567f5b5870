package domain

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidDayID  = errors.New("invalid day id")
)

// UserProgress is the set of day IDs a user has marked complete. Values are
// treated as immutable: Toggle returns a copy.
type UserProgress struct {
	completed map[string]struct{}
}

func NewUserProgress(dayIDs ...string) UserProgress {
	p := UserProgress{completed: make(map[string]struct{}, len(dayIDs))}
	for _, id := range dayIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		p.completed[id] = struct{}{}
	}
	return p
}

// Toggle adds dayID when absent and removes it when present. The day is not
// checked against any plan; an unknown ID simply never matches a ReadingDay.
func Toggle(p UserProgress, dayID string) UserProgress {
	next := UserProgress{completed: make(map[string]struct{}, len(p.completed)+1)}
	for id := range p.completed {
		next.completed[id] = struct{}{}
	}

	if _, ok := next.completed[dayID]; ok {
		delete(next.completed, dayID)
	} else {
		next.completed[dayID] = struct{}{}
	}
	return next
}

func (p UserProgress) Has(dayID string) bool {
	_, ok := p.completed[dayID]
	return ok
}

func (p UserProgress) Len() int {
	return len(p.completed)
}

// IDs returns the completed day IDs in ascending order.
func (p UserProgress) IDs() []string {
	ids := make([]string, 0, len(p.completed))
	for id := range p.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (p UserProgress) Equal(other UserProgress) bool {
	if len(p.completed) != len(other.completed) {
		return false
	}
	for id := range p.completed {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

type progressJSON struct {
	CompletedDays []string `json:"completed_days"`
}

func (p UserProgress) MarshalJSON() ([]byte, error) {
	return json.Marshal(progressJSON{CompletedDays: p.IDs()})
}

func (p *UserProgress) UnmarshalJSON(data []byte) error {
	var raw progressJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = NewUserProgress(raw.CompletedDays...)
	return nil
}
