package domain

// SelectionSet is the set of entity IDs chosen on one screen.
// Members keep their insertion order so listings are deterministic.
// The zero value is an empty set ready to use.
type SelectionSet struct {
	ids   []string
	index map[string]int
}

// NewSelectionSet returns a set pre-seeded with ids. Duplicates are ignored.
func NewSelectionSet(ids ...string) *SelectionSet {
	s := &SelectionSet{}
	for _, id := range ids {
		if !s.Contains(id) {
			s.add(id)
		}
	}
	return s
}

// Toggle removes id if present and adds it otherwise.
// It returns true when id is a member after the call.
func (s *SelectionSet) Toggle(id string) bool {
	if s.Contains(id) {
		s.remove(id)
		return false
	}
	s.add(id)
	return true
}

func (s *SelectionSet) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *SelectionSet) Count() int {
	return len(s.ids)
}

// IDs returns a copy of the members in insertion order.
func (s *SelectionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clone returns an independent copy of the set.
func (s *SelectionSet) Clone() *SelectionSet {
	return NewSelectionSet(s.ids...)
}

func (s *SelectionSet) add(id string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
}

func (s *SelectionSet) remove(id string) {
	i := s.index[id]
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
}

// DefaultSelection is the pre-seeded selection shown before a project has
// saved its own choices.
var DefaultSelection = []string{"1", "2"}
