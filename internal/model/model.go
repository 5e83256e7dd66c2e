// Package model defines the core domain types for the community events portal.
package model

import "time"

// DateLayout is the ISO calendar-date form used for event dates.
const DateLayout = time.DateOnly

// Event represents a community event with a finite number of seats.
// Date is kept in ISO form so that lexical order equals calendar order.
type Event struct {
	ID       int    `json:"id" toml:"id"`
	Name     string `json:"name" toml:"name"`
	Date     string `json:"date" toml:"date"`
	Seats    int    `json:"seats" toml:"seats"`
	Category string `json:"category" toml:"category"`
}

// SoldOut returns true when no seats remain.
func (e Event) SoldOut() bool {
	return e.Seats <= 0
}

// Criteria narrows the visible event list. Empty fields match everything.
type Criteria struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

// RegistrationForm is the user-submitted registration form.
type RegistrationForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	EventID int    `json:"event_id"`
}

// RegistrationPayload is the body of the outbound create-registration request.
type RegistrationPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	EventID int    `json:"eventId"`
}

// Registration is the confirmation of a successful form registration.
type Registration struct {
	ID        string    `json:"id"`
	EventID   int       `json:"event_id"`
	EventName string    `json:"event_name"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
