package matching

import "sort"

// Scored is implemented by anything ranked by match score.
type Scored interface {
	Score() float64
}

// Rank returns a copy of list ordered by score, highest first. Equal
// scores keep their input order.
func Rank[T Scored](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score() > out[j].Score()
	})
	return out
}

// FilterRank filters by query then ranks, the order every selection
// screen lists its catalog in.
func FilterRank[T interface {
	Searchable
	Scored
}](query string, list []T) []T {
	return Rank(Filter(query, list))
}
