package domain

// Mission is a past engagement offered as a reference case study.
type Mission struct {
	ID           string
	Title        string
	Client       string
	Year         string
	Duration     string
	Description  string
	Technologies []string
	Outcomes     []string
	Team         []string
	MatchScore   float64
}

func (m Mission) SearchFields() (primary, secondary string, tags []string) {
	return m.Title, m.Client, m.Technologies
}

func (m Mission) Score() float64 { return m.MatchScore }
