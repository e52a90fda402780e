package handler

import (
	"net/http"

	"club-elections/internal/domain"
	"club-elections/internal/service"
	"club-elections/pkg/logger"
)

// WinnerHandler exposes winner declaration and listings.
type WinnerHandler struct {
	winners *service.WinnerService
	log     *logger.Logger
}

func NewWinnerHandler(winners *service.WinnerService, log *logger.Logger) *WinnerHandler {
	return &WinnerHandler{
		winners: winners,
		log:     log,
	}
}

// Declare handles POST /elections/ballots/{ballotID}/declare-winner
func (h *WinnerHandler) Declare(w http.ResponseWriter, r *http.Request) {
	ballotID, err := urlParamInt(r, "ballotID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	var req domain.DeclareWinnerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	id, err := h.winners.Declare(r.Context(), ballotID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// ListForElection handles GET /elections/elections/{electionID}/winners
func (h *WinnerHandler) ListForElection(w http.ResponseWriter, r *http.Request) {
	electionID, err := urlParamInt(r, "electionID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	winners, err := h.winners.ListForElection(r.Context(), electionID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, winners)
}
