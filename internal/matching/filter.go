package matching

import (
	"strings"

	"github.com/alexanderramin/tender/internal/domain"
)

// Searchable is implemented by catalog entries the selection screens
// filter: a primary field (name or title), a secondary field (role or
// client) and free-form tags (expertise or technologies).
type Searchable interface {
	SearchFields() (primary, secondary string, tags []string)
}

// Matches reports whether query is a case-insensitive substring of any
// search field of c. An empty query matches everything. The query is
// not trimmed, so "  " only matches fields containing two spaces.
func Matches[T Searchable](query string, c T) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	primary, secondary, tags := c.SearchFields()
	if strings.Contains(strings.ToLower(primary), q) ||
		strings.Contains(strings.ToLower(secondary), q) {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Filter returns the elements of list that match query, in input order.
// The input slice is never modified.
func Filter[T Searchable](query string, list []T) []T {
	out := make([]T, 0, len(list))
	for _, c := range list {
		if Matches(query, c) {
			out = append(out, c)
		}
	}
	return out
}

// ProfileFilter narrows profiles beyond the text query. Empty fields
// impose no constraint. Roles match exactly; a profile must carry every
// listed skill.
type ProfileFilter struct {
	Roles         []string
	Skills        []string
	MinExperience int
}

func (f ProfileFilter) IsZero() bool {
	return len(f.Roles) == 0 && len(f.Skills) == 0 && f.MinExperience == 0
}

// Accepts reports whether p passes every constraint of f.
func (f ProfileFilter) Accepts(p domain.Profile) bool {
	if p.Experience < f.MinExperience {
		return false
	}
	if len(f.Roles) > 0 {
		ok := false
		for _, r := range f.Roles {
			if strings.EqualFold(r, p.Role) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for _, s := range f.Skills {
		if !p.HasSkill(s) {
			return false
		}
	}
	return true
}

// FilterProfiles applies the text query and f together.
func FilterProfiles(query string, f ProfileFilter, list []domain.Profile) []domain.Profile {
	out := make([]domain.Profile, 0, len(list))
	for _, p := range list {
		if Matches(query, p) && f.Accepts(p) {
			out = append(out, p)
		}
	}
	return out
}
