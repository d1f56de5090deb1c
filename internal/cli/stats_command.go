package cli

import (
	"context"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app *App
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute prints the dashboard counters
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	d := c.app.api.Dashboard(ctx)
	st := c.app.styles

	c.app.println(st.Title.Render("Resumo de " + c.app.formatDate(d.Today)))
	c.app.printf("  Hoje:       %d\n", d.TodayCount)
	c.app.printf("  Pendentes:  %d\n", d.Pending)

	overdue := sprintf("%d", d.Overdue)
	if d.Overdue > 0 {
		overdue = st.Overdue.Render(overdue)
	}
	c.app.printf("  Atrasadas:  %s\n", overdue)
	c.app.printf("  Eventos:    %d agendados\n", d.Scheduled)
	c.app.printf("  Treinos:    %d/%d nesta semana\n", d.WeeklyCompleted, d.WeeklyTotal)
	return nil
}
