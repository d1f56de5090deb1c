package views

import (
	"time"

	"organizer/internal/domain"

	"github.com/jinzhu/now"
)

// IsOverdue reports whether an uncompleted dated task is due strictly
// before now.
func IsOverdue(t domain.Task, now time.Time) bool {
	return overdue(t.Due, t.Completed, now)
}

// IsRowOverdue is IsOverdue for an agenda row. Workout rows are never
// overdue.
func IsRowOverdue(row domain.DisplayTask, now time.Time) bool {
	if row.IsWorkout() || row.Completed == nil {
		return false
	}
	return overdue(row.Due, *row.Completed, now)
}

func overdue(due *domain.Due, completed bool, now time.Time) bool {
	return due != nil && !completed && due.Before(now)
}

// PendingTaskCount counts uncompleted tasks across the agenda lists.
func PendingTaskCount(state domain.State) int {
	count := 0
	for _, info := range domain.AgendaLists() {
		for _, t := range state.Lists[info.Name] {
			if !t.Completed {
				count++
			}
		}
	}
	return count
}

// ScheduledEventCount counts the dated tasks of the gjMeetings and
// outrosEventos lists, completed ones included.
func ScheduledEventCount(state domain.State) int {
	count := 0
	for _, name := range []domain.ListName{domain.ListGJMeetings, domain.ListOutrosEventos} {
		for _, t := range state.Lists[name] {
			if t.Due != nil {
				count++
			}
		}
	}
	return count
}

// OverdueTask is an overdue task with the list it belongs to.
type OverdueTask struct {
	List domain.ListInfo
	Task domain.Task
}

// OverdueTasks returns the overdue tasks of the agenda lists in scan order.
func OverdueTasks(state domain.State, now time.Time) []domain.Task {
	var out []domain.Task
	for _, o := range OverdueByList(state, now) {
		out = append(out, o.Task)
	}
	return out
}

// OverdueByList is OverdueTasks with each task's list attached.
func OverdueByList(state domain.State, now time.Time) []OverdueTask {
	var out []OverdueTask
	for _, info := range domain.AgendaLists() {
		for _, t := range state.Lists[info.Name] {
			if IsOverdue(t, now) {
				out = append(out, OverdueTask{List: info, Task: t.Clone()})
			}
		}
	}
	return out
}

// WorkoutStats summarizes the current week's workouts.
type WorkoutStats struct {
	Completed int
	Total     int
}

// WeekBounds returns the first day of the week containing t's calendar day
// and the first day of the following week, as date-only values.
func WeekBounds(t time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	cfg := &now.Config{WeekStartDay: weekStart, TimeLocation: time.UTC}
	start := cfg.With(domain.DayOf(t)).BeginningOfWeek()
	return start, start.AddDate(0, 0, 7)
}

// WeeklyWorkoutStats counts the plan's active weekdays and the dates of the
// week containing at that are recorded as done. Recorded dates count even when
// their weekday is a rest day.
func WeeklyWorkoutStats(state domain.State, at time.Time, weekStart time.Weekday) WorkoutStats {
	stats := WorkoutStats{Total: state.WorkoutPlan.ActiveDays()}

	start, end := WeekBounds(at, weekStart)
	for key, done := range state.CompletedWorkouts {
		if !done {
			continue
		}
		day, err := domain.ParseDay(key)
		if err != nil {
			continue
		}
		if !day.Before(start) && day.Before(end) {
			stats.Completed++
		}
	}
	return stats
}
