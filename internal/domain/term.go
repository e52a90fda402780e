package domain

// Term represents an academic period used to scope elections.
// Dates travel as YYYY-MM-DD strings, matching the client contract.
type Term struct {
	ID        int    `json:"ID"`
	Name      string `json:"Name"`
	StartDate string `json:"StartDate"`
	EndDate   string `json:"EndDate"`
}

// CreateTermRequest is the payload for creating a term.
type CreateTermRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Position represents an electable club office.
type Position struct {
	ID          int    `json:"ID"`
	Title       string `json:"Title"`
	BallotOrder int    `json:"BallotOrder"`
}

// CreatePositionRequest is the payload for creating a position.
type CreatePositionRequest struct {
	Title       string `json:"title"`
	BallotOrder int    `json:"ballot_order"`
}
