package cli

import (
	"context"
	"testing"

	"organizer/internal/api"
	"organizer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand(t *testing.T) {
	a, out := setupTestApp(t, "")
	cmd := NewAddCommand(a, AddOptions{Date: "15/03/2024", Time: "09:00", Urgent: true})

	err := cmd.Execute(context.Background(), []string{"exams", "Calc", "Final"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Added to 📚 Prova: Calc Final")
	assert.Contains(t, out.String(), "15/03/2024 09:00")
	assert.Contains(t, out.String(), "! urgente")
	assert.Contains(t, out.String(), "#id-1")

	tasks, err := a.api.ListTasks(context.Background(), "exams")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Calc Final", tasks[0].Text)
}

func TestAddCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		opts AddOptions
	}{
		{"missing text", []string{"exams"}, AddOptions{}},
		{"unknown list", []string{"groceries", "milk"}, AddOptions{}},
		{"time without date", []string{"meetings", "sync"}, AddOptions{Time: "10:00"}},
		{"bad date", []string{"meetings", "sync"}, AddOptions{Date: "31/02/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := setupTestApp(t, "")
			err := NewAddCommand(a, tt.opts).Execute(context.Background(), tt.args)

			assert.Error(t, err)
			assert.Empty(t, out.String())
		})
	}
}

func TestEditCommand(t *testing.T) {
	a, out := setupTestApp(t, "")
	id := addTask(t, a, "workTasks", api.TaskInput{Text: "Report", Date: "10/03/2024"})

	text := "Quarterly report"
	err := NewEditCommand(a, api.TaskUpdate{Text: &text}).Execute(context.Background(), []string{"workTasks", id})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Updated:")
	assert.Contains(t, out.String(), "Quarterly report")
	assert.Contains(t, out.String(), "10/03/2024")
}

func TestEditCommand_NothingToChange(t *testing.T) {
	a, _ := setupTestApp(t, "")
	id := addTask(t, a, "workTasks", api.TaskInput{Text: "Report"})

	err := NewEditCommand(a, api.TaskUpdate{}).Execute(context.Background(), []string{"workTasks", id})

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestEditCommand_MissingTaskPrintsNothing(t *testing.T) {
	a, out := setupTestApp(t, "")
	text := "x"

	err := NewEditCommand(a, api.TaskUpdate{Text: &text}).Execute(context.Background(), []string{"exams", "nope"})

	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestDoneCommand(t *testing.T) {
	a, out := setupTestApp(t, "")
	id := addTask(t, a, "assignments", api.TaskInput{Text: "Essay"})
	cmd := NewDoneCommand(a)

	require.NoError(t, cmd.Execute(context.Background(), []string{"assignments", id}))
	assert.Contains(t, out.String(), "Done: Essay")

	out.Reset()
	require.NoError(t, cmd.Execute(context.Background(), []string{"assignments", id}))
	assert.Contains(t, out.String(), "Reopened: Essay")

	out.Reset()
	require.NoError(t, cmd.Execute(context.Background(), []string{"assignments", "missing"}))
	assert.Empty(t, out.String())
}

func TestRemoveCommand(t *testing.T) {
	a, out := setupTestApp(t, "")
	id := addTask(t, a, "exams", api.TaskInput{Text: "Physics"})

	require.NoError(t, NewRemoveCommand(a).Execute(context.Background(), []string{"exams", id}))
	assert.Contains(t, out.String(), "Removed #"+id+" from Prova")

	tasks, err := a.api.ListTasks(context.Background(), "exams")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.Error(t, NewRemoveCommand(a).Execute(context.Background(), []string{"exams"}))
}

func TestClearCommand(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		yes       bool
		expected  string
		remaining int
	}{
		{"declined", "n\n", false, "Cancelled.", 2},
		{"no answer", "", false, "Cancelled.", 2},
		{"confirmed", "y\n", false, "Cleared Prova", 0},
		{"confirmed in portuguese", "sim\n", false, "Cleared Prova", 0},
		{"yes flag", "", true, "Cleared Prova", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := setupTestApp(t, tt.input)
			addTask(t, a, "exams", api.TaskInput{Text: "One"})
			addTask(t, a, "exams", api.TaskInput{Text: "Two"})

			require.NoError(t, NewClearCommand(a, tt.yes).Execute(context.Background(), []string{"exams"}))
			assert.Contains(t, out.String(), tt.expected)

			tasks, err := a.api.ListTasks(context.Background(), "exams")
			require.NoError(t, err)
			assert.Len(t, tasks, tt.remaining)
		})
	}
}

func TestClearCommand_EmptyList(t *testing.T) {
	a, out := setupTestApp(t, "")

	require.NoError(t, NewClearCommand(a, false).Execute(context.Background(), []string{"exams"}))
	assert.Contains(t, out.String(), "Prova is already empty")
	assert.NotContains(t, out.String(), "[y/N]")
}

func TestListCommand(t *testing.T) {
	a, out := setupTestApp(t, "")
	addTask(t, a, "exams", api.TaskInput{Text: "Calc Final", Date: "01/03/2024"})
	done := addTask(t, a, "exams", api.TaskInput{Text: "Physics"})
	addTask(t, a, "meetings", api.TaskInput{Text: "Standup", Link: "https://meet.example.com/x"})
	_, err := a.api.ToggleTask(context.Background(), "exams", done)
	require.NoError(t, err)

	require.NoError(t, NewListCommand(a, ListOptions{}).Execute(context.Background(), nil))
	output := out.String()
	assert.Contains(t, output, "📚 Prova (2)")
	assert.Contains(t, output, "💼 Reunião (1)")
	assert.Contains(t, output, "[x]  Physics")
	assert.Contains(t, output, "01/03/2024 (atrasado)")
	assert.Contains(t, output, "https://meet.example.com/x")
	assert.NotContains(t, output, "Entrega")

	out.Reset()
	require.NoError(t, NewListCommand(a, ListOptions{Pending: true}).Execute(context.Background(), []string{"exams"}))
	assert.Contains(t, out.String(), "📚 Prova (1)")
	assert.NotContains(t, out.String(), "Physics")
}

func TestListCommand_Empty(t *testing.T) {
	a, out := setupTestApp(t, "")

	require.NoError(t, NewListCommand(a, ListOptions{}).Execute(context.Background(), nil))
	assert.Contains(t, out.String(), "No tasks found")

	out.Reset()
	require.NoError(t, NewListCommand(a, ListOptions{}).Execute(context.Background(), []string{"video-lessons"}))
	assert.Contains(t, out.String(), "🎬 Vídeo-aula (0)")

	assert.Error(t, NewListCommand(a, ListOptions{}).Execute(context.Background(), []string{"groceries"}))
}

func TestListCommand_Search(t *testing.T) {
	a, out := setupTestApp(t, "")
	addTask(t, a, "exams", api.TaskInput{Text: "Calc Final"})
	addTask(t, a, "videoLessons", api.TaskInput{Text: "Limits", Link: "https://example.com/calc-limits"})
	addTask(t, a, "meetings", api.TaskInput{Text: "Standup"})

	require.NoError(t, NewListCommand(a, ListOptions{Search: "CALC"}).Execute(context.Background(), nil))
	assert.Contains(t, out.String(), "Calc Final")
	assert.Contains(t, out.String(), "Limits")
	assert.NotContains(t, out.String(), "Standup")

	out.Reset()
	require.NoError(t, NewListCommand(a, ListOptions{Search: "calc"}).Execute(context.Background(), []string{"exams"}))
	assert.Contains(t, out.String(), "Calc Final")
	assert.NotContains(t, out.String(), "Limits")

	out.Reset()
	require.NoError(t, NewListCommand(a, ListOptions{Search: "zzz"}).Execute(context.Background(), nil))
	assert.Contains(t, out.String(), `No tasks matching "zzz"`)
}

func TestListCommand_DateRange(t *testing.T) {
	a, out := setupTestApp(t, "")
	addTask(t, a, "meetings", api.TaskInput{Text: "Sync", Date: "07/03/2024"})
	addTask(t, a, "meetings", api.TaskInput{Text: "Retro", Date: "28/03/2024"})
	addTask(t, a, "exams", api.TaskInput{Text: "Calc", Date: "08/03/2024"})

	opts := ListOptions{From: "hoje", To: "10/03/2024"}
	require.NoError(t, NewListCommand(a, opts).Execute(context.Background(), []string{"meetings"}))
	assert.Contains(t, out.String(), "Sync")
	assert.NotContains(t, out.String(), "Retro")
	assert.NotContains(t, out.String(), "Calc")

	out.Reset()
	require.NoError(t, NewListCommand(a, ListOptions{From: "01/05/2024"}).Execute(context.Background(), nil))
	assert.Contains(t, out.String(), "No tasks found")

	assert.Error(t, NewListCommand(a, ListOptions{From: "someday"}).Execute(context.Background(), nil))
}
