package services

import (
	"time"

	"organizer/internal/domain"
	"organizer/internal/views"
)

// DefaultProjectionDays is how far the workout plan is projected onto the
// calendar in each direction
const DefaultProjectionDays = 30

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	dates          DateService
	projectionDays int
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(dates DateService, projectionDays int) ReportingService {
	if projectionDays <= 0 {
		projectionDays = DefaultProjectionDays
	}
	return &reportingServiceImpl{dates: dates, projectionDays: projectionDays}
}

// DayAgenda collects the tasks and workout of one day and flags which of
// the tasks are overdue right now. day is read on its own calendar.
func (r *reportingServiceImpl) DayAgenda(state domain.State, day time.Time) *DayAgenda {
	day = domain.DayOf(day)
	now := r.dates.Now()

	agenda := &DayAgenda{
		Date:        day,
		Tasks:       views.TasksOnDate(state, day),
		Workout:     views.WorkoutForDate(state, day),
		WorkoutDone: views.IsWorkoutCompleted(state, day),
		Overdue:     make(map[string]bool),
	}

	for _, dt := range agenda.Tasks {
		if views.IsRowOverdue(dt, now) {
			agenda.Overdue[dt.ID] = true
		}
	}
	return agenda
}

// Dashboard computes the home screen counters
func (r *reportingServiceImpl) Dashboard(state domain.State) *Dashboard {
	now := r.dates.Now()
	today := r.dates.Today()
	stats := views.WeeklyWorkoutStats(state, now, r.dates.WeekStart())

	todayCount := 0
	for _, dt := range views.TasksOnDate(state, today) {
		if !dt.IsWorkout() {
			todayCount++
		}
	}

	return &Dashboard{
		Today:           today,
		TodayCount:      todayCount,
		Pending:         views.PendingTaskCount(state),
		Overdue:         len(views.OverdueTasks(state, now)),
		Scheduled:       views.ScheduledEventCount(state),
		WeeklyCompleted: stats.Completed,
		WeeklyTotal:     stats.Total,
	}
}

func (r *reportingServiceImpl) Month(state domain.State, year int, month time.Month) views.MonthView {
	return views.MonthGrid(state, year, month, r.dates.Today(), r.projectionDays, r.dates.WeekStart())
}

func (r *reportingServiceImpl) Overdue(state domain.State) []views.OverdueTask {
	return views.OverdueByList(state, r.dates.Now())
}
