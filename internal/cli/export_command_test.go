package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"organizer/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCommand_CSVToOutput(t *testing.T) {
	a, out := setupTestApp(t, "")
	addTask(t, a, "exams", api.TaskInput{Text: "Calc Final", Date: "15/03/2024"})

	require.NoError(t, NewExportCommand(a, ExportOptions{Format: "csv"}).Execute(context.Background(), nil))

	assert.Contains(t, out.String(), "List,ID,Text,Date,Time,Link,Urgent,Completed")
	assert.Contains(t, out.String(), "Calc Final")
	assert.NotContains(t, out.String(), "Exported to")
}

func TestExportCommand_XLSXToFile(t *testing.T) {
	a, out := setupTestApp(t, "")
	addTask(t, a, "meetings", api.TaskInput{Text: "Sync"})
	path := filepath.Join(t.TempDir(), "organizer.xlsx")

	require.NoError(t, NewExportCommand(a, ExportOptions{Format: "xlsx", Out: path}).Execute(context.Background(), nil))
	assert.Contains(t, out.String(), "Exported to "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Reunião")
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	a, _ := setupTestApp(t, "")
	path := filepath.Join(t.TempDir(), "out.pdf")

	err := NewExportCommand(a, ExportOptions{Format: "pdf", Out: path}).Execute(context.Background(), nil)

	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
