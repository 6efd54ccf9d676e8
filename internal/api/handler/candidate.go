package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mcoot/recruitment-api/internal/api/request"
	"github.com/mcoot/recruitment-api/internal/api/response"
	"github.com/mcoot/recruitment-api/internal/model"
	"github.com/mcoot/recruitment-api/internal/services/registry"
)

// CandidateHandler handles candidate endpoints
type CandidateHandler struct {
	registry *registry.Service
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(registry *registry.Service) *CandidateHandler {
	return &CandidateHandler{
		registry: registry,
	}
}

// List handles GET /api/v1/candidates
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.registry.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CandidatesFromModel(candidates))
}

// Get handles GET /api/v1/candidates/{id}
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	candidate, err := h.registry.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CandidateFromModel(candidate))
}

// Create handles POST /api/v1/candidates
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// The client id is discarded, so a malformed one is not an error here
	bodyID, _ := uuid.Parse(req.ID)

	created, err := h.registry.Create(r.Context(), &model.Candidate{
		ID:              bodyID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ShouldSendOffer: req.ShouldSendOffer,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Location", CandidateLocation(created.ID))
	response.JSON(w, http.StatusCreated, response.CandidateFromModel(created))
}

// Replace handles PUT /api/v1/candidates/{id}
func (h *CandidateHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.CandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// A missing body id is left as uuid.Nil and reported as a mismatch
	var bodyID uuid.UUID
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			WriteError(w, NewInvalidRequestError("id must be a UUID"))
			return
		}
		bodyID = parsed
	}

	err := h.registry.Replace(r.Context(), id, &model.Candidate{
		ID:              bodyID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ShouldSendOffer: req.ShouldSendOffer,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /api/v1/candidates/{id}
func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	removed, err := h.registry.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CandidateFromModel(removed))
}

// CandidateLocation returns the resource path of the candidate with the given id
func CandidateLocation(id model.CandidateID) string {
	return "/api/v1/candidates/" + id.String()
}

// pathID parses the {id} route variable, writing a 400 when it is not a UUID
func pathID(w http.ResponseWriter, r *http.Request) (model.CandidateID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
