package export

import (
	"fmt"
	"io"

	"organizer/internal/domain"

	"github.com/xuri/excelize/v2"
)

// WorkoutSheet names the sheet holding the workout plan
const WorkoutSheet = "Academia"

// XLSXExporter writes a workbook with one sheet per list, named by the
// list's label, followed by a sheet for the workout plan.
type XLSXExporter struct{}

func (e *XLSXExporter) Export(w io.Writer, state domain.State) error {
	file := excelize.NewFile()
	defer file.Close()

	for _, info := range domain.AllLists {
		tasks := state.Lists[info.Name]
		rows := make([][]string, 0, len(tasks))
		for _, t := range tasks {
			rows = append(rows, taskRow(info, t))
		}
		if err := writeSheet(file, info.Label, TaskHeader, rows); err != nil {
			return err
		}
	}

	if err := writeSheet(file, WorkoutSheet, WorkoutHeader, workoutRows(state)); err != nil {
		return err
	}

	if err := file.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(file *excelize.File, name string, header []string, rows [][]string) error {
	if _, err := file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", name, err)
	}
	sw, err := file.NewStreamWriter(name)
	if err != nil {
		return fmt.Errorf("failed to open sheet %s: %w", name, err)
	}

	for i, row := range append([][]string{header}, rows...) {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, name, err)
		}
	}
	return sw.Flush()
}
