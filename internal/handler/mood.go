package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moodlog/moodlog-go/internal/middleware"
	"github.com/moodlog/moodlog-go/internal/model"
	"github.com/moodlog/moodlog-go/internal/service"
)

// MoodHandler handles HTTP requests for mood entry operations.
type MoodHandler struct {
	service *service.MoodService
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(svc *service.MoodService) *MoodHandler {
	return &MoodHandler{service: svc}
}

// HandleCreateEntry handles POST /api/v1/moods requests.
func (h *MoodHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.CreateEntry(r.Context(), identity.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMoodRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrStorageUnavailable):
			writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListEntries handles GET /api/v1/moods requests. The service degrades
// storage failures to an empty list, so this path always answers 200.
func (h *MoodHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	entries := h.service.ListRecent(r.Context(), identity.UserID)
	writeJSON(w, http.StatusOK, entries)
}

// HandleDeleteEntry handles DELETE /api/v1/moods?id=... requests.
func (h *MoodHandler) HandleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	entryID := r.URL.Query().Get("id")
	if entryID == "" || len(entryID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("missing or invalid entry id"))
		return
	}

	if err := h.service.DeleteEntry(r.Context(), identity.UserID, entryID); err != nil {
		switch {
		case errors.Is(err, service.ErrEntryNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrStorageUnavailable):
			writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": entryID})
}

// HandleSummary handles GET /api/v1/moods/summary requests.
func (h *MoodHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Summary(r.Context(), identity.UserID))
}
