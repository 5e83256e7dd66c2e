// Package service implements the registration workflow: page initialisation,
// filtering, direct registration and the guarded form submission.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/community-events/internal/confirm"
	"github.com/Shivanand-hulikatti/community-events/internal/filter"
	"github.com/Shivanand-hulikatti/community-events/internal/messages"
	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/Shivanand-hulikatti/community-events/internal/store"
	"github.com/google/uuid"
)

// ErrValidation is returned when a required form field is missing.
var ErrValidation = errors.New("all fields are required")

// ErrStaleSelection is returned when the selected event became unavailable
// after the form was populated.
var ErrStaleSelection = errors.New("selected event is no longer available")

// Message kinds passed to Renderer.ShowMessage.
const (
	KindInfo    = "info"
	KindSuccess = "success"
	KindError   = "error"
)

// Choice is one option of the registration form's event selector.
type Choice struct {
	EventID  int    `json:"event_id,omitempty"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Renderer projects workflow state onto a user interface.
type Renderer interface {
	ShowEvents(events []model.Event, empty string)
	ShowChoices(choices []Choice)
	ShowMessage(kind, text string)
	ShowFormError(text string)
	SetLoading(on bool)
	ResetForm()
}

// Confirmer performs the remote create-registration request.
type Confirmer interface {
	CreateRegistration(ctx context.Context, p model.RegistrationPayload) error
}

// Outcomes recorded by Recorder.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeDirect    = "direct"
	OutcomeInvalid   = "invalid"
	OutcomeNotFound  = "not_found"
	OutcomeNoSeats   = "no_seats"
	OutcomeStale     = "stale"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport_error"
)

// Recorder observes registration outcomes.
type Recorder interface {
	Registration(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) Registration(string) {}

// Options tune the workflow. Zero values are usable.
type Options struct {
	// Delay is waited before the remote confirmation request.
	Delay    time.Duration
	Now      func() time.Time
	Recorder Recorder
	Logger   *slog.Logger
}

// Workflow coordinates the store, the filter engine and a Renderer.
type Workflow struct {
	events   *store.EventStore
	confirm  Confirmer
	msg      *messages.Catalog
	delay    time.Duration
	now      func() time.Time
	recorder Recorder
	logger   *slog.Logger
}

// NewWorkflow constructs a Workflow with its dependencies.
func NewWorkflow(events *store.EventStore, c Confirmer, msg *messages.Catalog, opts Options) *Workflow {
	w := &Workflow{
		events:   events,
		confirm:  c,
		msg:      msg,
		delay:    opts.Delay,
		now:      opts.Now,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.recorder == nil {
		w.recorder = nopRecorder{}
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w
}

func (w *Workflow) today() string {
	return filter.Today(w.now())
}

// Init renders the initial page: form choices, the visible list and the
// one-time load notice.
func (w *Workflow) Init(ui Renderer, c model.Criteria) {
	w.RefreshChoices(ui)
	w.ApplyFilters(ui, c)
	ui.ShowMessage(KindInfo, w.msg.T(messages.PageLoaded, nil))
}

// ApplyFilters recomputes the visible list. Form choices are left alone.
func (w *Workflow) ApplyFilters(ui Renderer, c model.Criteria) []model.Event {
	visible := filter.ComputeVisible(w.events.List(), c, w.today())
	ui.ShowEvents(visible, w.msg.T(messages.NoEvents, nil))
	return visible
}

// Categories lists the event categories the filter control offers.
func (w *Workflow) Categories() []string {
	return filter.Categories(w.events.List())
}

// RefreshChoices repopulates the registration form's event selector.
func (w *Workflow) RefreshChoices(ui Renderer) {
	selectable := filter.ComputeSelectable(w.events.List(), w.today())
	if len(selectable) == 0 {
		ui.ShowChoices([]Choice{{Label: w.msg.T(messages.NoChoices, nil), Disabled: true}})
		return
	}
	choices := make([]Choice, 0, len(selectable))
	for _, e := range selectable {
		label := w.msg.T(messages.ChoiceLabel, map[string]any{
			"Name": e.Name, "Date": e.Date, "Seats": e.Seats,
		})
		choices = append(choices, Choice{EventID: e.ID, Label: label})
	}
	ui.ShowChoices(choices)
}

func (w *Workflow) refresh(ui Renderer, c model.Criteria) {
	w.ApplyFilters(ui, c)
	w.RefreshChoices(ui)
}

// Register is the direct registration path triggered from an event card.
// It takes the seat immediately; there is no remote confirmation.
func (w *Workflow) Register(ui Renderer, c model.Criteria, eventID int) (model.Event, error) {
	e, err := w.events.DecrementSeat(eventID)
	if err != nil {
		reason := messages.ReasonNoSeats
		outcome := OutcomeNoSeats
		if errors.Is(err, store.ErrNotFound) {
			reason = messages.ReasonNotFound
			outcome = OutcomeNotFound
		}
		w.recorder.Registration(outcome)
		ui.ShowMessage(KindError, w.msg.T(messages.RegisterFailed, map[string]any{
			"Reason": w.msg.T(reason, nil),
		}))
		w.refresh(ui, c)
		return model.Event{}, fmt.Errorf("register for event %d: %w", eventID, err)
	}

	w.recorder.Registration(OutcomeDirect)
	w.logger.Info("direct registration", "event_id", e.ID, "seats_left", e.Seats)
	ui.ShowMessage(KindSuccess, w.msg.T(messages.Registered, map[string]any{
		"Event": e.Name, "Seats": e.Seats,
	}))
	w.refresh(ui, c)
	return e, nil
}

// SubmitRegistration is the guarded form path: validate, recheck and hold the
// seat, confirm remotely, then commit the seat only on confirmed success.
//
// The seat is held from the recheck until the remote call settles, so two
// concurrent submissions can never both pass the recheck for the last seat.
// A held seat is not offered to anyone else; a failed confirmation returns it.
func (w *Workflow) SubmitRegistration(ctx context.Context, ui Renderer, c model.Criteria, form model.RegistrationForm) (*model.Registration, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if form.Name == "" || form.Email == "" || form.EventID <= 0 {
		w.recorder.Registration(OutcomeInvalid)
		ui.ShowFormError(w.msg.T(messages.FieldsRequired, nil))
		return nil, ErrValidation
	}
	ui.ShowFormError("")

	event, err := w.events.Get(form.EventID)
	if err == nil && !filter.IsValid(event, w.today()) {
		err = store.ErrNoSeats
	}
	var hold store.Hold
	if err == nil {
		hold, err = w.events.Reserve(form.EventID)
	}
	if err != nil {
		w.recorder.Registration(OutcomeStale)
		ui.ShowMessage(KindError, w.msg.T(messages.NoLongerAvailable, nil))
		w.RefreshChoices(ui)
		w.ApplyFilters(ui, c)
		return nil, fmt.Errorf("%w: %w", ErrStaleSelection, err)
	}

	ui.SetLoading(true)
	err = w.confirmRemotely(ctx, form)
	ui.SetLoading(false)

	if err != nil {
		if relErr := w.events.Release(hold); relErr != nil {
			w.logger.Error("release seat hold", "event_id", form.EventID, "error", relErr)
		}
		if errors.Is(err, confirm.ErrRejected) {
			w.recorder.Registration(OutcomeRejected)
			ui.ShowMessage(KindError, w.msg.T(messages.SubmitFailed, nil))
		} else {
			w.recorder.Registration(OutcomeTransport)
			ui.ShowMessage(KindError, w.msg.T(messages.NetworkError, nil))
		}
		w.logger.Warn("registration not confirmed", "event_id", form.EventID, "error", err)
		return nil, err
	}

	event, err = w.events.Commit(hold)
	if err != nil {
		return nil, fmt.Errorf("commit seat hold: %w", err)
	}
	w.recorder.Registration(OutcomeConfirmed)
	w.logger.Info("registration confirmed", "event_id", event.ID, "seats_left", event.Seats)

	ui.ShowMessage(KindSuccess, w.msg.T(messages.Thanks, map[string]any{
		"Name": form.Name, "Event": event.Name,
	}))
	w.refresh(ui, c)
	ui.ResetForm()

	return &model.Registration{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		EventName: event.Name,
		Name:      form.Name,
		Email:     form.Email,
		CreatedAt: w.now().UTC(),
	}, nil
}

// confirmRemotely waits the configured delay and sends the request. A context
// ending during the wait counts as a transport failure.
func (w *Workflow) confirmRemotely(ctx context.Context, form model.RegistrationForm) error {
	if w.delay > 0 {
		t := time.NewTimer(w.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", confirm.ErrTransport, ctx.Err())
		}
	}
	return w.confirm.CreateRegistration(ctx, model.RegistrationPayload{
		Name:    form.Name,
		Email:   form.Email,
		EventID: form.EventID,
	})
}
