package cli

import (
	"context"
	"strings"

	"organizer/internal/api"
	"organizer/internal/errors"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	app *App
	yes bool
}

// NewClearCommand creates a new clear command handler. With yes set the
// confirmation prompt is skipped.
func NewClearCommand(app *App, yes bool) *ClearCommand {
	return &ClearCommand{app: app, yes: yes}
}

// Execute empties a list after asking for confirmation
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org clear <list>")
	}

	tasks, err := c.app.api.ListTasks(ctx, args[0])
	if err != nil {
		return err
	}
	list, _ := api.ParseList(args[0])
	info := listInfo(list)

	if len(tasks) == 0 {
		c.app.printf("%s is already empty\n", info.Label)
		return nil
	}
	if !c.yes && !c.app.confirm(sprintf("Clear all %d items from %s?", len(tasks), info.Label)) {
		c.app.println("Cancelled.")
		return nil
	}

	if err := c.app.api.ClearList(ctx, args[0]); err != nil {
		return err
	}
	c.app.printf("Cleared %s\n", info.Label)
	return nil
}
