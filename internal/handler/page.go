package handler

import (
	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/Shivanand-hulikatti/community-events/internal/service"
)

// notice is an alert-style message shown at the top of the page.
type notice struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// page collects everything the workflow renders during one request. It is
// written out either as HTML or as JSON.
type page struct {
	Criteria     model.Criteria         `json:"criteria"`
	Categories   []string               `json:"categories"`
	Events       []model.Event          `json:"events"`
	Empty        string                 `json:"empty,omitempty"`
	Choices      []service.Choice       `json:"choices,omitempty"`
	Notices      []notice               `json:"notices,omitempty"`
	FormError    string                 `json:"form_error,omitempty"`
	Loading      bool                   `json:"loading"`
	Form         model.RegistrationForm `json:"-"`
	Registration *model.Registration    `json:"registration,omitempty"`
}

var _ service.Renderer = (*page)(nil)

func (p *page) ShowEvents(events []model.Event, empty string) {
	p.Events = events
	p.Empty = ""
	if len(events) == 0 {
		p.Empty = empty
	}
}

func (p *page) ShowChoices(choices []service.Choice) { p.Choices = choices }

func (p *page) ShowMessage(kind, text string) {
	p.Notices = append(p.Notices, notice{Kind: kind, Text: text})
}

func (p *page) ShowFormError(text string) { p.FormError = text }

func (p *page) SetLoading(on bool) { p.Loading = on }

func (p *page) ResetForm() { p.Form = model.RegistrationForm{} }

// Selected reports whether id is the event currently chosen in the form.
func (p *page) Selected(id int) bool { return p.Form.EventID == id }
