package cli

import (
	"context"
	"strings"

	"organizer/internal/domain"
	"organizer/internal/errors"
)

// DayCommand handles the day command
type DayCommand struct {
	app *App
}

// NewDayCommand creates a new day command handler
func NewDayCommand(app *App) *DayCommand {
	return &DayCommand{app: app}
}

// Execute prints the agenda of a day, today when no date is given
func (c *DayCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org day [date]")
	}
	day := ""
	if len(args) == 1 {
		day = args[0]
	}

	agenda, err := c.app.api.DayAgenda(ctx, day)
	if err != nil {
		return err
	}

	st := c.app.styles
	title := sprintf("%s, %s", domain.WeekdayNameOf(agenda.Date), c.app.formatDate(agenda.Date))
	c.app.println(st.Title.Render(title))

	if len(agenda.Tasks) == 0 {
		c.app.println(st.Muted.Render("  Nothing scheduled"))
		return nil
	}

	for _, dt := range agenda.Tasks {
		c.app.println(c.row(dt, agenda.Overdue[dt.ID], agenda.WorkoutDone))
	}
	return nil
}

// row renders one agenda entry as "<time> <icon> <category>  <text> [marks]"
func (c *DayCommand) row(dt domain.DisplayTask, overdue, workoutDone bool) string {
	st := c.app.styles

	clock := "     "
	if dt.Due != nil && dt.Due.Clock != nil {
		clock = dt.Due.Clock.String()
	}

	group := domain.GroupAcademia
	if !dt.IsWorkout() {
		if name, ok := domain.ParseListName(dt.List); ok {
			group = listInfo(name).Group
		}
	}

	text := dt.Text
	done := workoutDone
	if dt.Completed != nil {
		done = *dt.Completed
	}
	if done {
		text = st.Done.Render(text)
	}

	parts := []string{
		"  " + clock,
		st.Group(group).Render(dt.Icon + " " + dt.Category),
		text,
	}
	if done {
		parts = append(parts, "✓")
	}
	if dt.Urgent {
		parts = append(parts, st.Urgent.Render("! urgente"))
	}
	if overdue {
		parts = append(parts, st.Overdue.Render("(atrasado)"))
	}
	if !dt.IsWorkout() {
		parts = append(parts, st.Muted.Render("#"+dt.ID))
	}
	return strings.Join(parts, "  ")
}
