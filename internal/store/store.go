// Package store holds the canonical in-memory list of events and is the only
// place where seat counts change.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no event has the requested id.
var ErrNotFound = errors.New("event not found")

// ErrNoSeats is returned when an event has no remaining seats.
var ErrNoSeats = errors.New("no seats available")

// ErrUnknownHold is returned when a hold token was never issued or is already settled.
var ErrUnknownHold = errors.New("unknown seat hold")

// Hold is a seat taken out of the offerable pool while a registration is
// being confirmed remotely.
type Hold struct {
	Token   string
	EventID int
}

// EventStore owns the event list. The zero value is not usable; use New.
type EventStore struct {
	mu     sync.Mutex
	events []model.Event
	index  map[int]int
	holds  map[string]int
}

// New builds a store from a seed list. The seed is copied; ids must be
// positive and unique, seats non-negative and dates in ISO form.
func New(seed []model.Event) (*EventStore, error) {
	s := &EventStore{
		events: make([]model.Event, 0, len(seed)),
		index:  make(map[int]int, len(seed)),
		holds:  make(map[string]int),
	}
	for _, e := range seed {
		if e.ID <= 0 {
			return nil, fmt.Errorf("seed event %q: id must be positive", e.Name)
		}
		if _, dup := s.index[e.ID]; dup {
			return nil, fmt.Errorf("seed event %d: duplicate id", e.ID)
		}
		if e.Seats < 0 {
			return nil, fmt.Errorf("seed event %d: seats cannot be negative", e.ID)
		}
		if _, err := time.Parse(model.DateLayout, e.Date); err != nil {
			return nil, fmt.Errorf("seed event %d: invalid date %q: %w", e.ID, e.Date, err)
		}
		s.index[e.ID] = len(s.events)
		s.events = append(s.events, e)
	}
	return s, nil
}

// List returns a copy of all events in seed order.
func (s *EventStore) List() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Get returns a copy of a single event or ErrNotFound.
func (s *EventStore) Get(id int) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return model.Event{}, ErrNotFound
	}
	return s.events[i], nil
}

// DecrementSeat takes exactly one seat from the event. The check and the
// decrement happen under the same lock, so seats never go below zero no
// matter how callers interleave.
func (s *EventStore) DecrementSeat(id int) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.take(id)
	if err != nil {
		return model.Event{}, err
	}
	return *e, nil
}

// Reserve takes one seat out of the pool and returns a hold for it. The seat
// is either consumed by Commit or given back by Release.
func (s *EventStore) Reserve(id int) (Hold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.take(id); err != nil {
		return Hold{}, err
	}
	h := Hold{Token: uuid.New().String(), EventID: id}
	s.holds[h.Token] = id
	return h, nil
}

// Commit settles a hold as a sold seat and returns the event as it stands.
func (s *EventStore) Commit(h Hold) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.holds[h.Token]
	if !ok {
		return model.Event{}, ErrUnknownHold
	}
	delete(s.holds, h.Token)
	return s.events[s.index[id]], nil
}

// Release gives the held seat back to the event.
func (s *EventStore) Release(h Hold) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.holds[h.Token]
	if !ok {
		return ErrUnknownHold
	}
	delete(s.holds, h.Token)
	s.events[s.index[id]].Seats++
	return nil
}

// Held reports how many seats are currently held across all events.
func (s *EventStore) Held() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.holds)
}

// take must be called with mu held.
func (s *EventStore) take(id int) (*model.Event, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	e := &s.events[i]
	if e.Seats <= 0 {
		return nil, ErrNoSeats
	}
	e.Seats--
	return e, nil
}
