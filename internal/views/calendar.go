package views

import (
	"time"

	"organizer/internal/domain"

	"github.com/jinzhu/now"
)

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date    time.Time
	InMonth bool
	Today   bool
	Groups  []domain.Group
	Urgent  bool
	Tasks   int
}

// HasGroup reports whether the day is decorated with g.
func (d CalendarDay) HasGroup(g domain.Group) bool {
	for _, have := range d.Groups {
		if have == g {
			return true
		}
	}
	return false
}

// MonthView is a month laid out in full weeks.
type MonthView struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Weeks     [][]CalendarDay
}

// MonthGrid lays out year/month in weeks beginning on weekStart, padding
// with days of the neighbouring months. Cells are decorated with the
// category groups, urgent flag and agenda task count of their date. Cell
// dates are date-only values.
func MonthGrid(state domain.State, year int, month time.Month, today time.Time, window int, weekStart time.Weekday) MonthView {
	cfg := &now.Config{WeekStartDay: weekStart, TimeLocation: time.UTC}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	gridStart := cfg.With(first).BeginningOfWeek()
	gridEnd := cfg.With(cfg.With(first).EndOfMonth()).EndOfWeek()

	byGroup := DatesWithEventsByCategory(state, today, window)
	groups := map[string][]domain.Group{}
	for _, g := range domain.Groups {
		seen := map[string]bool{}
		for _, day := range byGroup[g] {
			key := domain.DateKey(day)
			if !seen[key] {
				seen[key] = true
				groups[key] = append(groups[key], g)
			}
		}
	}

	urgent := map[string]bool{}
	for _, day := range DatesWithUrgentTasks(state) {
		urgent[domain.DateKey(day)] = true
	}

	counts := map[string]int{}
	for _, day := range DatesWithEvents(state) {
		counts[domain.DateKey(day)]++
	}

	view := MonthView{Year: year, Month: month, WeekStart: weekStart}
	var week []CalendarDay
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := domain.DateKey(day)
		week = append(week, CalendarDay{
			Date:    day,
			InMonth: day.Month() == month,
			Today:   domain.SameDay(day, today),
			Groups:  groups[key],
			Urgent:  urgent[key],
			Tasks:   counts[key],
		})
		if len(week) == 7 {
			view.Weeks = append(view.Weeks, week)
			week = nil
		}
	}
	return view
}
