package view

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/greenhose/sprinklerd/internal/domain"
)

func TestFuncMap_RendersSprinkler(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tmpl := template.Must(template.New("item").Funcs(FuncMap(clockwork.NewFakeClockAt(now))).Parse(
		`{{if isActiveOrPaused .}}{{remainingTime .}}{{end}} | {{timerIcon .}} | {{timerSchedule .Timer}}`,
	))

	s := domain.Sprinkler{
		Name:         "Front Lawn",
		Status:       domain.StatusActive,
		CurrentTimer: 300,
		Timer:        domain.Timer{Active: true, Duration: 600, Days: 2, Time: "14:00"},
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, s); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "5 minutes | iconTimerOn | Scheduled to turn on every couple of days at 2:00 PM for 10 minutes"
	if sb.String() != want {
		t.Errorf("rendered %q, want %q", sb.String(), want)
	}
}

func TestFuncMap_RendersHistoryItem(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tmpl := template.Must(template.New("item").Funcs(FuncMap(clockwork.NewFakeClockAt(now))).Parse(
		`{{with statusDetails .Action}}{{.Title}}: {{$.SprinklerName}} {{.Description}}{{end}} ({{timeAgo .CreatedAt}})`,
	))

	rec := domain.HistoryRecord{
		SprinklerName: "Front Lawn",
		Action:        domain.ActionStop,
		CreatedAt:     now.Add(-5 * time.Minute),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, rec); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "Turned Off: Front Lawn was turned off (5 minutes ago)"
	if sb.String() != want {
		t.Errorf("rendered %q, want %q", sb.String(), want)
	}
}
