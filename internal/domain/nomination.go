package domain

// Nomination represents a candidacy proposal. Accepted is tri-state:
// nil is pending, true accepted, false declined.
type Nomination struct {
	ID          int   `json:"ID"`
	NominatorID int   `json:"NominatorID"`
	NomineeID   int   `json:"NomineeID"`
	PositionID  int   `json:"PositionID"`
	Accepted    *bool `json:"Accepted"`
}

// ElectionNomination is one row of the per-election nomination listing,
// joined with position title and member display names.
type ElectionNomination struct {
	ID            int    `json:"ID"`
	PositionID    int    `json:"PositionID"`
	PositionTitle string `json:"PositionTitle"`
	NomineeName   string `json:"NomineeName"`
	NominatorName string `json:"NominatorName"`
	Accepted      *bool  `json:"Accepted"`
}

// PendingNomination is a nomination awaiting the nominee's response, joined
// with the owning election's deadline.
type PendingNomination struct {
	ID            int    `json:"ID"`
	PositionTitle string `json:"PositionTitle"`
	NominatorName string `json:"NominatorName"`
	TermName      string `json:"TermName"`
	NominateBy    string `json:"NominateBy"`
}

// SubmitNominationRequest is the payload for submitting a nomination.
type SubmitNominationRequest struct {
	Nominator int `json:"nominator"`
	Nominee   int `json:"nominee"`
	Position  int `json:"position"`
}

// RespondNominationRequest is the payload for accepting or declining.
// Accepted is a pointer so a missing field is distinguishable from false.
type RespondNominationRequest struct {
	Accepted *bool `json:"accepted"`
}
