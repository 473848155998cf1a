// Package web serves the HTML dashboard: every sprinkler with its status,
// remaining time and schedule description, plus the recent history feed.
package web

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/greenhose/sprinklerd/internal/domain"
	"github.com/greenhose/sprinklerd/internal/view"
)

type sprinklerLister interface {
	List(ctx context.Context) ([]domain.Sprinkler, error)
	Active(ctx context.Context) (*domain.Sprinkler, error)
}

type historyLister interface {
	List(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
}

// Dashboard renders the index page.
type Dashboard struct {
	sprinklers sprinklerLister
	history    historyLister
	tmpl       *template.Template
	log        *slog.Logger
}

// NewDashboard creates a Dashboard. The clock feeds the relative-time and
// remaining-time helpers used by the template.
func NewDashboard(
	sprinklers sprinklerLister,
	history historyLister,
	clock clockwork.Clock,
	logger *slog.Logger,
) *Dashboard {
	tmpl := template.Must(template.New("index").Funcs(view.FuncMap(clock)).Parse(indexHTML))
	return &Dashboard{
		sprinklers: sprinklers,
		history:    history,
		tmpl:       tmpl,
		log:        logger.With("handler", "dashboard"),
	}
}

type indexData struct {
	Active     *domain.Sprinkler // nil when the whole system is idle
	Sprinklers []domain.Sprinkler
	History    []domain.HistoryRecord
}

// Index renders the dashboard.
// GET /
func (d *Dashboard) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	sprinklers, err := d.sprinklers.List(r.Context())
	if err != nil {
		d.log.ErrorContext(r.Context(), "list sprinklers", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	active, err := d.sprinklers.Active(r.Context())
	if err != nil {
		d.log.ErrorContext(r.Context(), "get active sprinkler", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	history, err := d.history.List(r.Context(), 20)
	if err != nil {
		d.log.ErrorContext(r.Context(), "list history", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := indexData{Active: active, Sprinklers: sprinklers, History: history}
	if err := d.tmpl.Execute(w, data); err != nil {
		d.log.ErrorContext(r.Context(), "render dashboard", slog.String("error", err.Error()))
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Sprinklers</title>
<style>
body { font-family: monospace; max-width: 700px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
.active { color: green; font-weight: bold; }
.paused { color: orange; font-weight: bold; }
.inactive { color: #888; }
.muted { color: #888; font-size: 0.9em; }
</style>
</head>
<body>
<h1>Sprinklers</h1>

{{if .Active}}<p class="active">Currently running: {{.Active.Name}} ({{remainingTime .Active}} remaining)</p>
{{else}}<p class="muted">No sprinkler is running.</p>
{{end}}
<table>
<tr><th>Name</th><th>Status</th><th>Remaining</th><th>Schedule</th></tr>
{{range .Sprinklers}}
<tr>
<td>{{.Name}}</td>
<td class="{{.Status}}">{{.Status}}</td>
<td>{{if isActiveOrPaused .}}{{remainingTime .}}{{else}}&mdash;{{end}}</td>
<td class="muted">{{timerSchedule .Timer}} [{{timerIcon .}}]</td>
</tr>
{{end}}
</table>

<h2>History</h2>
<table>
<tr><th>Sprinkler</th><th>Event</th><th>When</th></tr>
{{range .History}}
{{$d := statusDetails .Action}}
<tr>
<td>{{.SprinklerName}}</td>
<td>{{$d.Title}} <span class="muted">({{.SprinklerName}} {{$d.Description}})</span></td>
<td class="muted">{{timeAgo .CreatedAt}}</td>
</tr>
{{end}}
</table>

<p class="muted"><a href="/api/sprinklers">JSON</a> &middot; <a href="/api/history">history JSON</a></p>
</body>
</html>
`
