package cli

import (
	"context"
	"strings"

	"organizer/internal/api"
	"organizer/internal/errors"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	app *App
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app}
}

// Execute removes the task <list> <id>. Removing a missing id is not an error.
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org remove <list> <id>")
	}
	if err := c.app.api.RemoveTask(ctx, args[0], args[1]); err != nil {
		return err
	}

	list, _ := api.ParseList(args[0])
	c.app.printf("Removed #%s from %s\n", args[1], listInfo(list).Label)
	return nil
}
