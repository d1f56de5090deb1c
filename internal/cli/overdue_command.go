package cli

import (
	"context"
)

// OverdueCommand handles the overdue command
type OverdueCommand struct {
	app *App
}

// NewOverdueCommand creates a new overdue command handler
func NewOverdueCommand(app *App) *OverdueCommand {
	return &OverdueCommand{app: app}
}

// Execute prints every overdue task with its list
func (c *OverdueCommand) Execute(ctx context.Context, args []string) error {
	overdue := c.app.api.Overdue(ctx)
	if len(overdue) == 0 {
		c.app.println("Nothing overdue")
		return nil
	}

	for _, o := range overdue {
		c.app.printf("%s %s\n", c.app.styles.Group(o.List.Group).Render(o.List.Icon+" "+o.List.Label), c.app.taskLine(o.Task, true))
	}
	return nil
}
