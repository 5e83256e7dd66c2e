package messages

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, locale string) *Catalog {
	t.Helper()
	c, err := NewCatalog(locale, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return c
}

func TestCatalog_T(t *testing.T) {
	c := newCatalog(t, "en")

	assert.Equal(t, "No events to display.", c.T(NoEvents, nil))
	assert.Equal(t, "Registered for Jazz Concert. Seats left: 2",
		c.T(Registered, map[string]any{"Event": "Jazz Concert", "Seats": 2}))
	assert.Equal(t, "Thanks Ada, you are registered for Music Night!",
		c.T(Thanks, map[string]any{"Name": "Ada", "Event": "Music Night"}))
	assert.Equal(t, "Music Night (2027-06-15) - Seats: 5",
		c.T(ChoiceLabel, map[string]any{"Name": "Music Night", "Date": "2027-06-15", "Seats": 5}))
}

func TestCatalog_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	c := newCatalog(t, "fr")
	assert.Equal(t, "Network error. Please try again.", c.T(NetworkError, nil))
}

func TestCatalog_MissingID(t *testing.T) {
	c := newCatalog(t, "")
	assert.Equal(t, "DoesNotExist", c.T("DoesNotExist", nil))
}
