package domain

// Election represents one scheduled election event within a term.
type Election struct {
	ID         int    `json:"ID"`
	TermID     int    `json:"TermID"`
	Date       string `json:"Date"`
	NominateBy string `json:"NominateBy"`
}

// ElectionSummary is one row of the elections listing: the election joined
// with its term name and a concatenation of contested position titles.
type ElectionSummary struct {
	ID         int    `json:"ID"`
	TermName   string `json:"TermName"`
	Date       string `json:"Date"`
	NominateBy string `json:"NominateBy"`
	Positions  string `json:"Positions"`
}

// ElectionDetail is one election with its contested positions expanded.
type ElectionDetail struct {
	ID         int        `json:"ID"`
	TermID     int        `json:"TermID"`
	TermName   string     `json:"TermName"`
	Date       string     `json:"Date"`
	NominateBy string     `json:"NominateBy"`
	Positions  []Position `json:"Positions"`
}

// CreateElectionRequest is the payload for creating an election.
type CreateElectionRequest struct {
	TermID     int    `json:"term_id"`
	Positions  []int  `json:"positions"`
	Date       string `json:"date"`
	NominateBy string `json:"nominate_by"`
}
