package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shivanand-hulikatti/community-events/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	events := Default()
	require.Len(t, events, 4)
	assert.Equal(t, model.Event{ID: 4, Name: "Jazz Concert", Date: "2027-06-20", Seats: 3, Category: "Music"}, events[3])
	assert.Equal(t, 0, events[2].Seats)
}

func TestFile_List(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[events]]
id = 9
name = "Poetry Slam"
date = "2027-03-03"
seats = 2
category = "Arts"
`), 0o600))

	events, err := File{Path: path}.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Event{{ID: 9, Name: "Poetry Slam", Date: "2027-03-03", Seats: 2, Category: "Arts"}}, events)
}

func TestFile_EmptyPathUsesDefault(t *testing.T) {
	events, err := File{}.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Default(), events)
}

func TestFile_Errors(t *testing.T) {
	_, err := File{Path: filepath.Join(t.TempDir(), "missing.toml")}.List(context.Background())
	require.Error(t, err)

	_, err = Parse([]byte("[[events]\nid = "))
	require.Error(t, err)
}
