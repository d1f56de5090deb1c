package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"organizer/internal/api"
	"organizer/internal/config"
	"organizer/internal/repository/sqlite"
	"organizer/internal/store"

	"github.com/stretchr/testify/require"
)

// Tuesday 2024-03-05 10:30 UTC
var testNow = time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

// setupTestApp builds an App over an in-memory organizer. input is what the
// user answers to confirmation prompts.
func setupTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	st, err := store.Open(context.Background(), repo, store.DefaultKey,
		store.WithLocation(time.UTC), store.WithIDGenerator(ids))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(api.New(st, api.WithClock(func() time.Time { return testNow })), config.NewConfig(),
		WithOutput(out),
		WithInput(strings.NewReader(input)),
	)
	return a, out
}

// addTask adds a task through the API and fails the test on error
func addTask(t *testing.T, a *App, list string, in api.TaskInput) string {
	t.Helper()
	task, err := a.api.AddTask(context.Background(), list, in)
	require.NoError(t, err)
	return task.ID
}
