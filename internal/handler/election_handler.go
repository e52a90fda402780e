package handler

import (
	"net/http"

	"club-elections/internal/domain"
	"club-elections/internal/service"
	"club-elections/pkg/logger"
)

// ElectionHandler exposes term, position and election administration.
type ElectionHandler struct {
	elections *service.ElectionService
	log       *logger.Logger
}

func NewElectionHandler(elections *service.ElectionService, log *logger.Logger) *ElectionHandler {
	return &ElectionHandler{
		elections: elections,
		log:       log,
	}
}

// CreateTerm handles POST /elections/terms
func (h *ElectionHandler) CreateTerm(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTermRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	id, err := h.elections.CreateTerm(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// ListTerms handles GET /elections/terms
func (h *ElectionHandler) ListTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.elections.ListTerms(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, terms)
}

// DeleteTerm handles DELETE /elections/terms/{termID}
func (h *ElectionHandler) DeleteTerm(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "termID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	if err := h.elections.DeleteTerm(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "term deleted"})
}

// CreatePosition handles POST /elections/positions
func (h *ElectionHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePositionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	id, err := h.elections.CreatePosition(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// ListPositions handles GET /elections/positions
func (h *ElectionHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.elections.ListPositions(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, positions)
}

// DeletePosition handles DELETE /elections/positions/{positionID}
func (h *ElectionHandler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "positionID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	if err := h.elections.DeletePosition(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "position deleted"})
}

// CreateElection handles POST /elections/
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateElectionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	id, err := h.elections.CreateElection(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// ListElections handles GET /elections/
func (h *ElectionHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	elections, err := h.elections.ListElections(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, elections)
}

// GetElection handles GET /elections/{electionID}
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "electionID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	detail, err := h.elections.GetElection(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// DeleteElection handles DELETE /elections/{electionID}
func (h *ElectionHandler) DeleteElection(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamInt(r, "electionID")
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	if err := h.elections.DeleteElection(r.Context(), id); err != nil {
		respondError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "election deleted"})
}
