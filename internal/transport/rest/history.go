package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/greenhose/sprinklerd/internal/domain"
	"github.com/greenhose/sprinklerd/internal/view"
)

type historyService interface {
	List(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
}

// HistoryHandler serves the history REST endpoints.
type HistoryHandler struct {
	history   historyService
	formatter *view.Formatter
	log       *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(history historyService, formatter *view.Formatter, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history:   history,
		formatter: formatter,
		log:       logger.With("handler", "history"),
	}
}

// HistoryItem is a history record decorated with its display tuple and a
// relative timestamp, ready for rendering without further lookup.
type HistoryItem struct {
	ID            uuid.UUID            `json:"id"`
	SprinklerName string               `json:"sprinklerName"`
	Action        domain.HistoryAction `json:"action"`
	TimeStamp     time.Time            `json:"timeStamp"`
	TimeAgo       string               `json:"timeAgo"`
	Details       view.DisplayDetail   `json:"details"`
}

// List returns the most recent history records, newest first.
// GET /api/history?limit=50
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := h.history.List(r.Context(), limit)
	if err != nil {
		writeDomainError(h.log, w, r, err)
		return
	}

	items := make([]HistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, HistoryItem{
			ID:            rec.ID,
			SprinklerName: rec.SprinklerName,
			Action:        rec.Action,
			TimeStamp:     rec.CreatedAt,
			TimeAgo:       h.formatter.TimeAgo(rec.CreatedAt),
			Details:       view.StatusDetails(rec.Action),
		})
	}

	writeJSON(w, http.StatusOK, items)
}
