package cli

import (
	"context"
	"strings"

	"organizer/internal/errors"
)

// DoneCommand handles the done command
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute toggles the completion of <list> <id>
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org done <list> <id>")
	}

	task, err := c.app.api.ToggleTask(ctx, args[0], args[1])
	if err != nil || task == nil {
		return err
	}

	if task.Completed {
		c.app.printf("Done: %s\n", task.Text)
	} else {
		c.app.printf("Reopened: %s\n", task.Text)
	}
	return nil
}
