package domain

// Insight is one requirement theme extracted from an RFP, scored in [0,1].
type Insight struct {
	Key   string  `yaml:"key" json:"key"`
	Score float64 `yaml:"score" json:"score"`
}

// Analysis is the processed view of a project's RFP document.
type Analysis struct {
	ProjectID         string
	Summary           string
	Insights          []Insight
	SuggestedProfiles int
	SuggestedMissions int
}

// CountSuggested returns how many scores reach threshold.
func CountSuggested(scores []float64, threshold float64) int {
	n := 0
	for _, s := range scores {
		if s >= threshold {
			n++
		}
	}
	return n
}
