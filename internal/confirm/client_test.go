package confirm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRegistration_SendsJSON(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	err := c.CreateRegistration(context.Background(), model.RegistrationPayload{
		Name: "Ada", Email: "ada@example.com", EventID: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]any{"name": "Ada", "email": "ada@example.com", "eventId": float64(4)}, gotBody)
}

func TestCreateRegistration_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"ok", http.StatusOK, nil},
		{"created", http.StatusCreated, nil},
		{"no content", http.StatusNoContent, nil},
		{"redirect not followed is failure", http.StatusNotModified, ErrRejected},
		{"bad request", http.StatusBadRequest, ErrRejected},
		{"server error", http.StatusInternalServerError, ErrRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewClient(srv.Client(), srv.URL).CreateRegistration(context.Background(), model.RegistrationPayload{})
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrTransport)
		})
	}
}

func TestCreateRegistration_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(nil, url).CreateRegistration(context.Background(), model.RegistrationPayload{})
	require.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrRejected)
}

func TestCreateRegistration_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewClient(srv.Client(), srv.URL).CreateRegistration(ctx, model.RegistrationPayload{})
	require.ErrorIs(t, err, ErrTransport)
}
