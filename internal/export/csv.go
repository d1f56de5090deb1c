package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"organizer/internal/domain"
)

// CSVExporter writes every task of every list as one CSV table. The
// workout plan is not part of the CSV output.
type CSVExporter struct{}

func (e *CSVExporter) Export(w io.Writer, state domain.State) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(TaskHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, info := range domain.AllLists {
		for _, t := range state.Lists[info.Name] {
			if err := writer.Write(taskRow(info, t)); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
