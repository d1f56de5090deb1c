package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"organizer/internal/domain"
	"organizer/internal/errors"
	"organizer/internal/views"

	"github.com/charmbracelet/lipgloss"
)

// CalendarCommand handles the calendar command
type CalendarCommand struct {
	app *App
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{app: app}
}

// Execute prints a month grid. The month is given as MM/YYYY, YYYY-MM or
// a bare month number of the current year; the current month by default.
func (c *CalendarCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org calendar [month]")
	}

	today := c.app.api.Today()
	year, month := today.Year(), today.Month()
	if len(args) == 1 {
		var err error
		year, month, err = parseMonth(args[0], year)
		if err != nil {
			return err
		}
	}

	view := c.app.api.Month(ctx, year, month)
	c.app.println(c.render(view))
	return nil
}

// parseMonth accepts MM/YYYY, YYYY-MM and MM
func parseMonth(s string, currentYear int) (int, time.Month, error) {
	input := strings.TrimSpace(s)
	for _, layout := range []string{"01/2006", "1/2006", "2006-01"} {
		if t, err := time.Parse(layout, input); err == nil {
			return t.Year(), t.Month(), nil
		}
	}
	if m, err := strconv.Atoi(input); err == nil && m >= 1 && m <= 12 {
		return currentYear, time.Month(m), nil
	}
	return 0, 0, errors.NewInvalidInputError("month", s, "expected MM/YYYY or YYYY-MM")
}

func (c *CalendarCommand) render(view views.MonthView) string {
	st := c.app.styles
	width := 7 * 4

	var lines []string
	header := sprintf("%s %d", monthName(view.Month), view.Year)
	lines = append(lines, st.Title.Width(width).Align(lipgloss.Center).Render(header))

	labels := make([]string, 7)
	for i := range labels {
		labels[i] = st.Cell.Inherit(st.Muted).Render(weekdayAbbrev[(int(view.WeekStart)+i)%7])
	}
	lines = append(lines, strings.Join(labels, ""))

	for _, week := range view.Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = c.cell(day)
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	lines = append(lines, "", c.legend())
	return strings.Join(lines, "\n")
}

// cell renders a day number coloured by its first group. Urgent days are
// marked with "!", other days with events with "•".
func (c *CalendarCommand) cell(day views.CalendarDay) string {
	st := c.app.styles
	if !day.InMonth {
		return st.Cell.Inherit(st.Muted).Render(strconv.Itoa(day.Date.Day()) + " ")
	}

	style := st.Cell
	mark := " "
	switch {
	case day.Urgent:
		style = style.Inherit(st.Urgent)
		mark = "!"
	case len(day.Groups) > 0:
		style = style.Inherit(st.Group(day.Groups[0]))
		mark = "•"
	}
	if day.Today {
		style = style.Inherit(st.Today)
	}
	return style.Render(strconv.Itoa(day.Date.Day()) + mark)
}

func (c *CalendarCommand) legend() string {
	st := c.app.styles
	parts := make([]string, 0, len(domain.Groups)+1)
	for _, g := range domain.Groups {
		parts = append(parts, st.Group(g).Render("• "+string(g)))
	}
	parts = append(parts, st.Urgent.Render("! urgente"))
	return strings.Join(parts, "  ")
}
