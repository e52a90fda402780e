package handler

import (
	"net/http"

	"club-elections/internal/domain"
	"club-elections/internal/service"
	"club-elections/pkg/logger"
)

// VotingHandler exposes vote casting and ballot results.
type VotingHandler struct {
	voting *service.VotingService
	log    *logger.Logger
}

func NewVotingHandler(voting *service.VotingService, log *logger.Logger) *VotingHandler {
	return &VotingHandler{
		voting: voting,
		log:    log,
	}
}

// CastVote handles POST /elections/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req domain.CastVoteRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	id, err := h.voting.CastVote(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// GetResults handles GET /elections/ballots/{ballotID}/results
func (h *VotingHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	ballotID, err := urlParamInt(r, "ballotID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	results, err := h.voting.GetResults(r.Context(), ballotID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}
