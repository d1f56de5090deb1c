package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"organizer/internal/export"
)

// ExportOptions select the format and destination of an export
type ExportOptions struct {
	Format string
	Out    string
}

// ExportCommand handles the export command
type ExportCommand struct {
	app  *App
	opts ExportOptions
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App, opts ExportOptions) *ExportCommand {
	return &ExportCommand{app: app, opts: opts}
}

// Execute writes the whole organization to --out, or to standard output
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	format, err := export.ParseFormat(c.opts.Format)
	if err != nil {
		return err
	}
	exporter, err := export.New(format)
	if err != nil {
		return err
	}

	var w io.Writer = c.app.out
	if c.opts.Out != "" {
		file, err := os.Create(c.opts.Out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.opts.Out, err)
		}
		defer file.Close()
		w = file
	}

	if err := exporter.Export(w, c.app.api.State(ctx)); err != nil {
		return err
	}
	if c.opts.Out != "" {
		c.app.printf("Exported to %s\n", c.opts.Out)
	}
	return nil
}
