package services

import (
	"time"

	"organizer/internal/domain"
	"organizer/internal/views"
)

// DayAgenda is everything shown for one calendar day
type DayAgenda struct {
	Date        time.Time            `json:"date"`
	Tasks       []domain.DisplayTask `json:"tasks"`
	Workout     *domain.WorkoutDay   `json:"workout,omitempty"`
	WorkoutDone bool                 `json:"workout_done"`
	Overdue     map[string]bool      `json:"overdue"`
}

// Dashboard holds the summary counters shown on the home screen
type Dashboard struct {
	Today           time.Time `json:"today"`
	TodayCount      int       `json:"today_count"`
	Pending         int       `json:"pending"`
	Overdue         int       `json:"overdue"`
	Scheduled       int       `json:"scheduled"`
	WeeklyCompleted int       `json:"weekly_completed"`
	WeeklyTotal     int       `json:"weekly_total"`
}

// SearchResult is a task matching a text search, with its list
type SearchResult struct {
	List domain.ListInfo `json:"list"`
	Task domain.Task     `json:"task"`
}

// DateService handles calendar input and the notion of "today"
type DateService interface {
	// Clock access
	Now() time.Time
	Today() time.Time

	// Input parsing
	ParseDate(s string) (time.Time, error)
	ParseClock(s string) (*domain.Clock, error)

	WeekStart() time.Weekday
}

// ReportingService computes the derived views for presentation
type ReportingService interface {
	DayAgenda(state domain.State, day time.Time) *DayAgenda
	Dashboard(state domain.State) *Dashboard
	Month(state domain.State, year int, month time.Month) views.MonthView
	Overdue(state domain.State) []views.OverdueTask
}

// SearchService finds tasks by text, list and due date
type SearchService interface {
	SearchTasks(state domain.State, opts domain.SearchOptions) []SearchResult
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	DateService      DateService
	ReportingService ReportingService
	SearchService    SearchService
}

// NewServiceContainer wires the services together around one date service
func NewServiceContainer(dates DateService, projectionDays int) *ServiceContainer {
	return &ServiceContainer{
		DateService:      dates,
		ReportingService: NewReportingService(dates, projectionDays),
		SearchService:    NewSearchService(),
	}
}
