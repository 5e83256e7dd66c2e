// Package filter derives the visible and selectable views of the event list.
// Functions here never modify their input.
package filter

import (
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/community-events/internal/model"
)

// Today formats t as the ISO date used for validity checks.
func Today(t time.Time) string {
	return t.UTC().Format(model.DateLayout)
}

// IsValid reports whether an event can still be offered: it has not passed
// and it has seats left.
func IsValid(e model.Event, today string) bool {
	return e.Date >= today && e.Seats > 0
}

// ComputeVisible applies validity, then category, then case-insensitive
// name search. Input order is preserved.
func ComputeVisible(events []model.Event, c model.Criteria, today string) []model.Event {
	search := strings.ToLower(c.Search)

	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if !IsValid(e, today) {
			continue
		}
		if c.Category != "" && e.Category != c.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ComputeSelectable returns the events the registration form may offer.
func ComputeSelectable(events []model.Event, today string) []model.Event {
	return ComputeVisible(events, model.Criteria{}, today)
}

// Categories lists the distinct categories in first-seen order.
func Categories(events []model.Event) []string {
	seen := make(map[string]struct{}, len(events))
	var out []string
	for _, e := range events {
		if _, ok := seen[e.Category]; ok || e.Category == "" {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}
