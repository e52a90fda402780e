package handler

import (
	"net/http"

	"club-elections/internal/service"
	"club-elections/pkg/logger"
)

// BallotHandler exposes ballot generation and member ballot listings.
type BallotHandler struct {
	ballots *service.BallotService
	log     *logger.Logger
}

func NewBallotHandler(ballots *service.BallotService, log *logger.Logger) *BallotHandler {
	return &BallotHandler{
		ballots: ballots,
		log:     log,
	}
}

// Generate handles POST /elections/elections/{electionID}/generate-ballots
func (h *BallotHandler) Generate(w http.ResponseWriter, r *http.Request) {
	electionID, err := urlParamInt(r, "electionID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	response, err := h.ballots.Generate(r.Context(), electionID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, response)
}

// ListForMember handles GET /elections/ballots/member/{memberID}
func (h *BallotHandler) ListForMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := urlParamInt(r, "memberID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	ballots, err := h.ballots.ListForMember(r.Context(), memberID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, ballots)
}

// GetDetail handles GET /elections/ballots/{ballotID}
func (h *BallotHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	ballotID, err := urlParamInt(r, "ballotID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	detail, err := h.ballots.GetDetail(r.Context(), ballotID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}
