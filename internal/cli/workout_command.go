package cli

import (
	"context"
	"strings"

	"organizer/internal/api"
	"organizer/internal/domain"
	"organizer/internal/errors"
)

// WorkoutShowCommand prints the workout plan
type WorkoutShowCommand struct {
	app *App
}

// NewWorkoutShowCommand creates a new workout show handler
func NewWorkoutShowCommand(app *App) *WorkoutShowCommand {
	return &WorkoutShowCommand{app: app}
}

// Execute prints the plan one weekday per line, with this week's progress
func (c *WorkoutShowCommand) Execute(ctx context.Context, args []string) error {
	plan := c.app.api.WorkoutPlan(ctx)
	if plan == nil {
		c.app.println("No workout plan. Create one with: org workout set --name <name> --day \"Segunda=07:00 Push\"")
		return nil
	}

	st := c.app.styles
	c.app.println(st.Group(domain.GroupAcademia).Bold(true).Render(domain.WorkoutIcon + " " + plan.Name))
	for _, name := range domain.Weekdays {
		day := plan.Schedule[name]
		if day == nil {
			c.app.printf("  %-8s %s\n", name, st.Muted.Render("descanso"))
			continue
		}
		c.app.printf("  %-8s %s\n", name, day.Summary())
	}

	d := c.app.api.Dashboard(ctx)
	c.app.printf("\n  %d/%d nesta semana\n", d.WeeklyCompleted, d.WeeklyTotal)
	return nil
}

// WorkoutSetOptions is the plan form given on the command line
type WorkoutSetOptions struct {
	Name  string
	Days  []string
	Merge bool
}

// WorkoutSetCommand saves the workout plan
type WorkoutSetCommand struct {
	app  *App
	opts WorkoutSetOptions
}

// NewWorkoutSetCommand creates a new workout set handler
func NewWorkoutSetCommand(app *App, opts WorkoutSetOptions) *WorkoutSetCommand {
	return &WorkoutSetCommand{app: app, opts: opts}
}

// Execute saves the plan. Each day is "<weekday>=[HH:MM] exercises";
// weekdays not given are rest days unless merging with the current plan.
func (c *WorkoutSetCommand) Execute(ctx context.Context, args []string) error {
	in := api.WorkoutInput{Name: c.opts.Name, Days: map[string]api.WorkoutDayInput{}}

	if c.opts.Merge {
		if current := c.app.api.WorkoutPlan(ctx); current != nil {
			for name, day := range current.Schedule {
				if day != nil {
					in.Days[string(name)] = api.WorkoutDayInput{Time: day.Time, Exercises: day.Exercises}
				}
			}
		}
	}

	for _, spec := range c.opts.Days {
		key, day, err := parseDaySpec(spec)
		if err != nil {
			return err
		}
		if name, ok := domain.ParseWeekdayName(key); ok {
			key = string(name)
		}
		in.Days[key] = day
	}

	plan, err := c.app.api.SetWorkoutPlan(ctx, in)
	if err != nil {
		return err
	}
	c.app.printf("Saved workout plan %q with %d training days\n", plan.Name, plan.ActiveDays())
	return nil
}

// parseDaySpec splits "Terça=18:00 Legs" into the weekday and its session.
// The time is optional; "Terça=" makes the day a rest day.
func parseDaySpec(spec string) (string, api.WorkoutDayInput, error) {
	key, value, ok := strings.Cut(spec, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", api.WorkoutDayInput{}, errors.NewInvalidInputError("day", spec, `expected "<weekday>=[HH:MM] exercises"`)
	}

	value = strings.TrimSpace(value)
	var day api.WorkoutDayInput
	first, rest, _ := strings.Cut(value, " ")
	if _, err := domain.ParseClock(first); err == nil {
		day.Time = first
		day.Exercises = strings.TrimSpace(rest)
	} else {
		day.Exercises = value
	}
	return strings.TrimSpace(key), day, nil
}

// WorkoutClearCommand removes the workout plan
type WorkoutClearCommand struct {
	app *App
	yes bool
}

// NewWorkoutClearCommand creates a new workout clear handler
func NewWorkoutClearCommand(app *App, yes bool) *WorkoutClearCommand {
	return &WorkoutClearCommand{app: app, yes: yes}
}

// Execute removes the plan after confirmation. Recorded workouts are kept.
func (c *WorkoutClearCommand) Execute(ctx context.Context, args []string) error {
	if c.app.api.WorkoutPlan(ctx) == nil {
		c.app.println("No workout plan to clear")
		return nil
	}
	if !c.yes && !c.app.confirm("Remove the workout plan?") {
		c.app.println("Cancelled.")
		return nil
	}
	if err := c.app.api.ClearWorkoutPlan(ctx); err != nil {
		return err
	}
	c.app.println("Workout plan removed")
	return nil
}

// WorkoutDoneCommand toggles a day's workout completion
type WorkoutDoneCommand struct {
	app *App
}

// NewWorkoutDoneCommand creates a new workout done handler
func NewWorkoutDoneCommand(app *App) *WorkoutDoneCommand {
	return &WorkoutDoneCommand{app: app}
}

// Execute toggles the workout of a date, today by default
func (c *WorkoutDoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: org workout done [date]")
	}
	day := ""
	if len(args) == 1 {
		day = args[0]
	}

	date, done, err := c.app.api.ToggleWorkout(ctx, day)
	if err != nil {
		return err
	}
	if done {
		c.app.printf("Workout of %s marked as done\n", c.app.formatDate(date))
	} else {
		c.app.printf("Workout of %s marked as not done\n", c.app.formatDate(date))
	}
	return nil
}
