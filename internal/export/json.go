package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"organizer/internal/domain"
	"organizer/internal/store"
)

// JSONExporter writes the snapshot in its persisted JSON form, so the
// output can be loaded back as a stored value.
type JSONExporter struct {
	Indent string
}

func (e *JSONExporter) Export(w io.Writer, state domain.State) error {
	data, err := store.Encode(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if e.Indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", e.Indent); err != nil {
			return fmt.Errorf("failed to indent snapshot: %w", err)
		}
		data = buf.Bytes()
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
