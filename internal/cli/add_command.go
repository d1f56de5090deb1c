package cli

import (
	"context"
	"strings"

	"organizer/internal/api"
	"organizer/internal/errors"
)

// AddOptions are the optional fields of a new task
type AddOptions struct {
	Date   string
	Time   string
	Link   string
	Urgent bool
}

// AddCommand handles the add command
type AddCommand struct {
	app  *App
	opts AddOptions
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, opts AddOptions) *AddCommand {
	return &AddCommand{app: app, opts: opts}
}

// Execute adds a task. args are the list followed by the task text.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org add <list> <text>")
	}

	task, err := c.app.api.AddTask(ctx, args[0], api.TaskInput{
		Text:   strings.Join(args[1:], " "),
		Date:   c.opts.Date,
		Time:   c.opts.Time,
		Link:   c.opts.Link,
		Urgent: c.opts.Urgent,
	})
	if err != nil {
		return err
	}

	list, _ := api.ParseList(args[0])
	info := listInfo(list)
	c.app.printf("Added to %s %s: %s\n", info.Icon, info.Label, task.Text)
	c.app.println(c.app.taskLine(*task, false))
	return nil
}
