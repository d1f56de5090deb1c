// Package views derives read-only projections from an organization state
// snapshot. Every function is pure; "now" and "today" are always passed in.
package views

import (
	"sort"
	"time"

	"organizer/internal/domain"
)

// TasksOnDate returns the agenda for day: every dated task of the agenda
// lists falling on that calendar day, in list order, followed by the
// scheduled workout when the plan has one for day's weekday.
func TasksOnDate(state domain.State, day time.Time) []domain.DisplayTask {
	var out []domain.DisplayTask
	for _, info := range domain.AgendaLists() {
		for _, t := range state.Lists[info.Name] {
			if t.Due == nil || !domain.SameDay(t.Due.Day, day) {
				continue
			}
			out = append(out, displayTask(info, t))
		}
	}

	if row, ok := workoutRow(state, day); ok {
		out = append(out, row)
	}
	return out
}

func displayTask(info domain.ListInfo, t domain.Task) domain.DisplayTask {
	completed := t.Completed
	row := domain.DisplayTask{
		ID:        t.ID,
		Text:      t.Text,
		Category:  info.Label,
		Icon:      info.Icon,
		List:      info.Name.String(),
		Urgent:    t.Urgent,
		Completed: &completed,
	}
	if t.Due != nil {
		due := domain.NewDue(t.Due.Day, t.Due.Clock)
		row.Due = &due
	}
	return row
}

func workoutRow(state domain.State, day time.Time) (domain.DisplayTask, bool) {
	session := WorkoutForDate(state, day)
	if session == nil {
		return domain.DisplayTask{}, false
	}
	return domain.DisplayTask{
		ID:       "workout-" + string(domain.WeekdayNameOf(day)),
		Text:     session.Summary(),
		Category: domain.WorkoutLabel,
		Icon:     domain.WorkoutIcon,
		List:     domain.WorkoutSection,
	}, true
}

// WorkoutForDate returns the session scheduled on day's weekday, or nil.
func WorkoutForDate(state domain.State, day time.Time) *domain.WorkoutDay {
	return state.WorkoutPlan.DayFor(day)
}

// IsWorkoutCompleted reports the recorded completion for day's date.
func IsWorkoutCompleted(state domain.State, day time.Time) bool {
	return state.CompletedWorkouts.IsDone(day)
}

// DatesWithEvents returns the day of every dated agenda task, one entry per
// task, in scan order.
func DatesWithEvents(state domain.State) []time.Time {
	var out []time.Time
	for _, info := range domain.AgendaLists() {
		for _, t := range state.Lists[info.Name] {
			if t.Due != nil {
				out = append(out, t.Due.Day)
			}
		}
	}
	return out
}

// DatesWithEventsByCategory groups task dates by calendar group. The
// academia group projects the workout plan over today±window days.
// Every group is present in the result, possibly empty.
func DatesWithEventsByCategory(state domain.State, today time.Time, window int) map[domain.Group][]time.Time {
	out := make(map[domain.Group][]time.Time, len(domain.Groups))
	for _, g := range domain.Groups {
		out[g] = []time.Time{}
	}

	for _, info := range domain.AgendaLists() {
		for _, t := range state.Lists[info.Name] {
			if t.Due != nil {
				out[info.Group] = append(out[info.Group], t.Due.Day)
			}
		}
	}

	out[domain.GroupAcademia] = projectWorkouts(state.WorkoutPlan, today, window)
	return out
}

func projectWorkouts(plan *domain.WorkoutPlan, today time.Time, window int) []time.Time {
	dates := []time.Time{}
	if plan == nil {
		return dates
	}
	start := domain.DayOf(today)
	for offset := -window; offset <= window; offset++ {
		day := start.AddDate(0, 0, offset)
		if plan.DayFor(day) != nil {
			dates = append(dates, day)
		}
	}
	return dates
}

// DatesWithUrgentTasks returns the distinct days holding at least one
// urgent dated task, in chronological order.
func DatesWithUrgentTasks(state domain.State) []time.Time {
	seen := map[string]bool{}
	var out []time.Time
	for _, info := range domain.AgendaLists() {
		for _, t := range state.Lists[info.Name] {
			if !t.Urgent || t.Due == nil {
				continue
			}
			key := domain.DateKey(t.Due.Day)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, t.Due.Day)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
