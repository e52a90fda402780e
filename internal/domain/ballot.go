package domain

import "time"

// Ballot is the votable contest for one position within one election.
type Ballot struct {
	ID         int       `json:"ID"`
	ElectionID int       `json:"ElectionID"`
	PositionID int       `json:"PositionID"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

// BallotSummary is one entry of the ballot-generation response.
type BallotSummary struct {
	BallotID     int    `json:"ballot_id"`
	Position     string `json:"position"`
	OptionsCount int    `json:"options_count"`
}

// GenerateBallotsResponse wraps the summaries of ballots created in one run.
type GenerateBallotsResponse struct {
	Ballots []BallotSummary `json:"ballots"`
}

// MemberBallot is one ballot in a member's listing, annotated with whether
// that member has already voted on it.
type MemberBallot struct {
	BallotID      int    `json:"BallotID"`
	PositionTitle string `json:"PositionTitle"`
	ElectionDate  string `json:"ElectionDate"`
	TermName      string `json:"TermName"`
	HasVoted      bool   `json:"HasVoted"`
}

// BallotOption is one selectable candidate on a ballot.
type BallotOption struct {
	OptionID      int    `json:"OptionID"`
	CandidateID   int    `json:"CandidateID"`
	CandidateName string `json:"CandidateName"`
}

// BallotDetail is a ballot with its candidate options expanded.
type BallotDetail struct {
	BallotID      int            `json:"BallotID"`
	PositionTitle string         `json:"PositionTitle"`
	ElectionDate  string         `json:"ElectionDate"`
	TermName      string         `json:"TermName"`
	Options       []BallotOption `json:"options"`
}
