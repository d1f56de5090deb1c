package cli

import (
	"context"
	"strings"
	"time"

	"organizer/internal/api"
	"organizer/internal/domain"
	"organizer/internal/errors"
	"organizer/internal/views"
)

// ListOptions filter the list command
type ListOptions struct {
	Search  string
	From    string
	To      string
	Pending bool
}

func (o ListOptions) searching() bool {
	return o.Search != "" || o.From != "" || o.To != ""
}

// ListCommand handles the list command
type ListCommand struct {
	app  *App
	opts ListOptions
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, opts ListOptions) *ListCommand {
	return &ListCommand{app: app, opts: opts}
}

// Execute prints one list, or every list when no list is named
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org list [list]")
	}

	if c.opts.searching() {
		return c.search(ctx, args)
	}

	lists := domain.AllLists
	if len(args) == 1 {
		list, err := api.ParseList(args[0])
		if err != nil {
			return err
		}
		lists = []domain.ListInfo{listInfo(list)}
	}

	state := c.app.api.State(ctx)
	now := c.now()
	printed := 0
	for _, info := range lists {
		tasks := c.filter(state.Lists[info.Name])
		if len(tasks) == 0 && len(lists) > 1 {
			continue
		}
		c.app.println(c.app.listHeading(info, len(tasks)))
		for _, t := range tasks {
			c.app.println(c.app.taskLine(t, views.IsOverdue(t, now)))
		}
		printed++
	}

	if printed == 0 {
		c.app.println("No tasks found")
	}
	return nil
}

func (c *ListCommand) search(ctx context.Context, args []string) error {
	results, err := c.app.api.SearchTasks(ctx, api.SearchInput{
		Text:             c.opts.Search,
		Lists:            args,
		From:             c.opts.From,
		To:               c.opts.To,
		IncludeCompleted: !c.opts.Pending,
	})
	if err != nil {
		return err
	}

	if len(results) == 0 {
		if c.opts.Search != "" {
			c.app.printf("No tasks matching %q\n", c.opts.Search)
		} else {
			c.app.println("No tasks found")
		}
		return nil
	}

	now := c.now()
	for _, r := range results {
		c.app.printf("%s %s\n", r.List.Icon, c.app.taskLine(r.Task, views.IsOverdue(r.Task, now)))
	}
	return nil
}

func (c *ListCommand) filter(tasks []domain.Task) []domain.Task {
	if !c.opts.Pending {
		return tasks
	}
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func (c *ListCommand) now() time.Time {
	return c.app.now()
}
