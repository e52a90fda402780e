package domain

import "time"

// Vote is one member's single, final choice on one ballot.
type Vote struct {
	ID             int       `json:"ID"`
	BallotID       int       `json:"BallotID"`
	MemberID       int       `json:"MemberID"`
	BallotOptionID int       `json:"BallotOptionID"`
	CreatedAt      time.Time `json:"CreatedAt"`
}

// CastVoteRequest is the payload for casting a vote.
type CastVoteRequest struct {
	MemberID       int `json:"member_id"`
	BallotID       int `json:"ballot_id"`
	BallotOptionID int `json:"ballot_option_id"`
}

// CandidateResult is one candidate's tally on a ballot.
type CandidateResult struct {
	CandidateID   int    `json:"CandidateID"`
	CandidateName string `json:"CandidateName"`
	VoteCount     int    `json:"VoteCount"`
}

// BallotResults is the full tally for one ballot. TotalVotes is counted
// independently of the per-candidate rows as a guard against stray votes.
type BallotResults struct {
	Results    []CandidateResult `json:"results"`
	TotalVotes int               `json:"total_votes"`
}

// Winner is the administratively declared victor for a position.
type Winner struct {
	ID         int `json:"ID"`
	MemberID   int `json:"MemberID"`
	PositionID int `json:"PositionID"`
}

// DeclareWinnerRequest is the payload for declaring a ballot's winner.
type DeclareWinnerRequest struct {
	MemberID int `json:"member_id"`
}

// ElectionWinner is one row of the per-election winners listing.
type ElectionWinner struct {
	PositionTitle string `json:"PositionTitle"`
	WinnerName    string `json:"WinnerName"`
}
