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

// GeneratorHandler handles HTTP requests for password generation and
// strength estimation.
type GeneratorHandler struct {
	service  *service.GeneratorService
	profiles *service.ProfileService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, profiles *service.ProfileService) *GeneratorHandler {
	return &GeneratorHandler{service: svc, profiles: profiles}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePattern handles POST /api/v1/generate/pattern requests.
func (h *GeneratorHandler) HandlePattern(w http.ResponseWriter, r *http.Request) {
	var req model.PatternRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Pattern(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePassphrase handles POST /api/v1/generate/passphrase requests.
func (h *GeneratorHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Passphrase(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMemorable handles POST /api/v1/generate/memorable requests.
func (h *GeneratorHandler) HandleMemorable(w http.ResponseWriter, r *http.Request) {
	var req model.MemorableRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Memorable(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateFromProfile handles POST /api/v1/generate/profile/{name}
// requests. Built-in profiles work unauthenticated; saved profiles are
// looked up for the authenticated user when a token is present.
func (h *GeneratorHandler) HandleGenerateFromProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	userID, _ := middleware.UserIDFromContext(r.Context())

	cfg, err := h.profiles.Resolve(r.Context(), userID, name)
	if err != nil {
		if errors.Is(err, generator.ErrUnknownProfile) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	resp, err := h.service.FromConfig(cfg)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

// HandleProfiles handles GET /api/v1/profiles requests.
func (h *GeneratorHandler) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Profiles())
}

// HandleCharsets handles GET /api/v1/charsets requests.
func (h *GeneratorHandler) HandleCharsets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Charsets())
}

// writeServiceError maps generation failures onto HTTP statuses:
// validation problems are the caller's fault, everything else is ours.
func writeServiceError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	return errors.Is(err, generator.ErrEmptyPool) ||
		errors.Is(err, generator.ErrCustomTooSmall) ||
		errors.Is(err, generator.ErrLengthTooShort) ||
		errors.Is(err, generator.ErrLengthTooLong) ||
		errors.Is(err, generator.ErrLengthInsufficient) ||
		errors.Is(err, generator.ErrInsufficientWords) ||
		errors.Is(err, service.ErrLengthBelowPolicy) ||
		errors.Is(err, service.ErrBatchTooLarge) ||
		errors.Is(err, service.ErrUnknownCharset)
}

// decodeBody decodes a JSON request body into dst, writing the error
// response itself when decoding fails. An absent body leaves dst zeroed
// so every endpoint works with defaults.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
