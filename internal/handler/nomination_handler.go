package handler

import (
	"net/http"

	"club-elections/internal/domain"
	"club-elections/internal/service"
	"club-elections/pkg/logger"
)

// NominationHandler exposes nomination submission and tracking.
type NominationHandler struct {
	nominations *service.NominationService
	log         *logger.Logger
}

func NewNominationHandler(nominations *service.NominationService, log *logger.Logger) *NominationHandler {
	return &NominationHandler{
		nominations: nominations,
		log:         log,
	}
}

// Submit handles POST /elections/nominations
func (h *NominationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitNominationRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	id, err := h.nominations.Submit(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// Respond handles PUT /elections/nominations/{nominationID}/accept
func (h *NominationHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "nominationID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	var req domain.RespondNominationRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	if err := h.nominations.Respond(r.Context(), id, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "nomination updated"})
}

// ListPendingForMember handles GET /elections/nominations/member/{memberID}
func (h *NominationHandler) ListPendingForMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := urlParamInt(r, "memberID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	nominations, err := h.nominations.ListPendingForMember(r.Context(), memberID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, nominations)
}

// ListForElection handles GET /elections/nominations/election/{electionID}
func (h *NominationHandler) ListForElection(w http.ResponseWriter, r *http.Request) {
	electionID, err := urlParamInt(r, "electionID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	nominations, err := h.nominations.ListForElection(r.Context(), electionID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, nominations)
}
