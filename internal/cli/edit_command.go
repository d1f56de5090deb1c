package cli

import (
	"context"
	"strings"

	"organizer/internal/api"
	"organizer/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app    *App
	update api.TaskUpdate
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App, update api.TaskUpdate) *EditCommand {
	return &EditCommand{app: app, update: update}
}

// Execute changes the fields set in the update on the task <list> <id>.
// An id that matches no task changes nothing and prints nothing.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org edit <list> <id> [flags]")
	}
	if c.update.IsEmpty() {
		return errors.NewInvalidInputError("flags", "", "nothing to change, see org edit --help")
	}

	task, err := c.app.api.UpdateTask(ctx, args[0], args[1], c.update)
	if err != nil || task == nil {
		return err
	}

	c.app.println("Updated:")
	c.app.println(c.app.taskLine(*task, false))
	return nil
}
