package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gochifigter/password-generator/internal/generator"
	"github.com/gochifigter/password-generator/internal/middleware"
	"github.com/gochifigter/password-generator/internal/model"
	"github.com/gochifigter/password-generator/internal/service"
)

// ProfileHandler handles HTTP requests for saved generation profiles.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleList handles GET /api/v1/profiles/custom requests.
func (h *ProfileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	profiles, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// HandleSave handles POST /api/v1/profiles/custom requests.
func (h *ProfileHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "")
}

// HandleUpdate handles PUT /api/v1/profiles/custom/{name} requests. The
// URL name wins over any name carried in the body.
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, chi.URLParam(r, "name"))
}

func (h *ProfileHandler) save(w http.ResponseWriter, r *http.Request, name string) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SavedProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}
	if name != "" {
		req.Name = name
	}

	resp, err := h.service.Save(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNameRequired),
			errors.Is(err, service.ErrProfileNameTaken),
			errors.Is(err, service.ErrLengthBelowPolicy),
			errors.Is(err, generator.ErrLengthTooLong),
			errors.Is(err, generator.ErrLengthInsufficient),
			errors.Is(err, generator.ErrEmptyPool),
			errors.Is(err, generator.ErrCustomTooSmall):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleDelete handles DELETE /api/v1/profiles/custom/{name} requests.
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.service.Delete(r.Context(), userID, name); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
