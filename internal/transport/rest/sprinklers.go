package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
)

type sprinklerService interface {
	Create(ctx context.Context, name string, timer domain.Timer) (*domain.Sprinkler, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
	List(ctx context.Context) ([]domain.Sprinkler, error)
	Start(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
	Stop(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
	Pause(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
	Resume(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
	Reset(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
	ToggleTimer(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error)
}

// SprinklerHandler serves the sprinkler REST endpoints.
type SprinklerHandler struct {
	sprinklers sprinklerService
	log        *slog.Logger
}

// NewSprinklerHandler creates a SprinklerHandler.
func NewSprinklerHandler(sprinklers sprinklerService, logger *slog.Logger) *SprinklerHandler {
	return &SprinklerHandler{
		sprinklers: sprinklers,
		log:        logger.With("handler", "sprinklers"),
	}
}

// List returns all sprinklers.
// GET /api/sprinklers
func (h *SprinklerHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.sprinklers.List(r.Context())
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type createSprinklerRequest struct {
	Name  string       `json:"name"`
	Timer domain.Timer `json:"timer"`
}

// Create registers a new sprinkler. It starts inactive.
// POST /api/sprinklers
func (h *SprinklerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSprinklerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.sprinklers.Create(r.Context(), req.Name, req.Timer)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Get returns a single sprinkler.
// GET /api/sprinklers/{id}
func (h *SprinklerHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.sprinklers.Get)
}

// Start activates a sprinkler, demoting any currently active one.
// POST /api/sprinklers/{id}/start
func (h *SprinklerHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.sprinklers.Start)
}

// Stop deactivates a sprinkler and clears its run timer.
// POST /api/sprinklers/{id}/stop
func (h *SprinklerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.sprinklers.Stop)
}

// Pause suspends an active sprinkler.
// POST /api/sprinklers/{id}/pause
func (h *SprinklerHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.sprinklers.Pause)
}

// Resume reactivates a paused sprinkler.
// POST /api/sprinklers/{id}/resume
func (h *SprinklerHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.sprinklers.Resume)
}

// Reset clears a sprinkler's run timer.
// POST /api/sprinklers/{id}/reset
func (h *SprinklerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.sprinklers.Reset)
}

// ToggleTimer flips a sprinkler's automatic-schedule flag.
// POST /api/sprinklers/{id}/toggle-timer
func (h *SprinklerHandler) ToggleTimer(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.sprinklers.ToggleTimer)
}

// lifecycle parses the path id and runs one service operation, writing the
// updated sprinkler or a mapped error.
func (h *SprinklerHandler) lifecycle(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id uuid.UUID) (*domain.Sprinkler, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sprinkler id")
		return
	}

	updated, err := op(r.Context(), id)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
