// Package console renders the portal as plain text for the command line.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/Shivanand-hulikatti/community-events/internal/service"
)

// Renderer writes each projection to w as soon as it is made.
type Renderer struct {
	w io.Writer
}

var _ service.Renderer = (*Renderer)(nil)

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) ShowEvents(events []model.Event, empty string) {
	if len(events) == 0 {
		fmt.Fprintln(r.w, empty)
		return
	}
	for _, e := range events {
		action := "[register]"
		if e.SoldOut() {
			action = "[full]"
		}
		fmt.Fprintf(r.w, "#%d %s\n  Date: %s\n  Category: %s\n  Seats available: %d %s\n",
			e.ID, e.Name, e.Date, e.Category, e.Seats, action)
	}
}

func (r *Renderer) ShowChoices(choices []service.Choice) {
	fmt.Fprintln(r.w, "Registration choices:")
	for _, c := range choices {
		if c.Disabled {
			fmt.Fprintf(r.w, "  - %s\n", c.Label)
			continue
		}
		fmt.Fprintf(r.w, "  %d) %s\n", c.EventID, c.Label)
	}
}

func (r *Renderer) ShowMessage(kind, text string) {
	fmt.Fprintf(r.w, "[%s] %s\n", strings.ToUpper(kind), text)
}

func (r *Renderer) ShowFormError(text string) {
	if text != "" {
		fmt.Fprintf(r.w, "error: %s\n", text)
	}
}

func (r *Renderer) SetLoading(on bool) {
	if on {
		fmt.Fprintln(r.w, "Loading...")
	}
}

func (r *Renderer) ResetForm() {}
