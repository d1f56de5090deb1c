package api

import (
	"context"
	"strings"
	"time"

	"organizer/internal/domain"
	"organizer/internal/errors"
	"organizer/internal/services"
	"organizer/internal/store"
	"organizer/internal/validation"
	"organizer/internal/views"
)

// API defines every operation the presentation layer performs on the
// organization. Inputs are user-facing strings; they are parsed and
// validated before the store is touched.
type API interface {
	// Task operations
	AddTask(ctx context.Context, list string, in TaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, list, id string, in TaskUpdate) (*domain.Task, error)
	RemoveTask(ctx context.Context, list, id string) error
	ToggleTask(ctx context.Context, list, id string) (*domain.Task, error)
	ClearList(ctx context.Context, list string) error
	ListTasks(ctx context.Context, list string) ([]domain.Task, error)
	SearchTasks(ctx context.Context, in SearchInput) ([]services.SearchResult, error)
	State(ctx context.Context) domain.State

	// Workout operations
	WorkoutPlan(ctx context.Context) *domain.WorkoutPlan
	SetWorkoutPlan(ctx context.Context, in WorkoutInput) (*domain.WorkoutPlan, error)
	ClearWorkoutPlan(ctx context.Context) error
	ToggleWorkout(ctx context.Context, day string) (time.Time, bool, error)

	// Views
	DayAgenda(ctx context.Context, day string) (*services.DayAgenda, error)
	Month(ctx context.Context, year int, month time.Month) views.MonthView
	Dashboard(ctx context.Context) *services.Dashboard
	Overdue(ctx context.Context) []views.OverdueTask
	Today() time.Time
	Now() time.Time
}

type apiImpl struct {
	store            *store.Store
	services         *services.ServiceContainer
	taskValidator    *validation.TaskValidator
	workoutValidator *validation.WorkoutValidator
}

type settings struct {
	now            func() time.Time
	weekStart      time.Weekday
	projectionDays int
	limits         validation.Limits
}

// Option configures an API
type Option func(*settings)

// WithClock sets the source of the current time
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithWeekStart sets the first day of the week for weekly stats and calendars
func WithWeekStart(day time.Weekday) Option {
	return func(s *settings) { s.weekStart = day }
}

// WithProjectionDays sets how far the workout plan is projected on calendars
func WithProjectionDays(days int) Option {
	return func(s *settings) { s.projectionDays = days }
}

// WithLimits sets the maximum lengths of free-text fields
func WithLimits(limits validation.Limits) Option {
	return func(s *settings) { s.limits = limits }
}

// New creates a new API instance over st.
func New(st *store.Store, opts ...Option) API {
	cfg := settings{
		now:            time.Now,
		weekStart:      time.Sunday,
		projectionDays: services.DefaultProjectionDays,
		limits:         validation.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := validation.NewValidatorWithLimits(cfg.limits)
	dates := services.NewDateService(cfg.now, st.Location(), cfg.weekStart)
	return &apiImpl{
		store:            st,
		services:         services.NewServiceContainer(dates, cfg.projectionDays),
		taskValidator:    validation.NewTaskValidatorWith(v),
		workoutValidator: validation.NewWorkoutValidatorWith(v),
	}
}

// ParseList resolves a user-supplied list name
func ParseList(s string) (domain.ListName, error) {
	list, ok := domain.ParseListName(s)
	if !ok {
		return "", errors.NewInvalidInputError("list", s, "unknown list")
	}
	return list, nil
}

// Task operations

func (a *apiImpl) AddTask(ctx context.Context, listName string, in TaskInput) (*domain.Task, error) {
	list, err := ParseList(listName)
	if err != nil {
		return nil, err
	}

	var day *time.Time
	if strings.TrimSpace(in.Date) != "" {
		d, err := a.services.DateService.ParseDate(in.Date)
		if err != nil {
			return nil, err
		}
		day = &d
	}

	fields := validation.TaskFields{
		Text: in.Text,
		Time: strings.TrimSpace(in.Time),
		Link: strings.TrimSpace(in.Link),
	}
	if err := a.taskValidator.ValidateTaskForCreation(fields, day != nil); err != nil {
		return nil, err
	}
	clock, err := a.services.DateService.ParseClock(fields.Time)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	urgent := in.Urgent
	proto := domain.TaskPatch{Text: &text, Day: day, Clock: clock, Urgent: &urgent}
	if fields.Link != "" {
		proto.Link = &fields.Link
	}

	id, err := a.store.AddTask(ctx, list, proto)
	if err != nil {
		return nil, err
	}
	return a.findTask(list, id)
}

// UpdateTask applies in to the task. A task that does not exist is not an
// error: nothing changes and a nil task is returned.
func (a *apiImpl) UpdateTask(ctx context.Context, listName, id string, in TaskUpdate) (*domain.Task, error) {
	list, err := ParseList(listName)
	if err != nil {
		return nil, err
	}
	existing, err := a.findTask(list, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if in.IsEmpty() {
		return existing, nil
	}

	patch := domain.TaskPatch{
		Text:      trimmed(in.Text),
		Link:      trimmed(in.Link),
		Urgent:    in.Urgent,
		Completed: in.Completed,
	}

	if in.Date != nil {
		if strings.TrimSpace(*in.Date) == "" {
			patch.ClearDue = true
		} else {
			d, err := a.services.DateService.ParseDate(*in.Date)
			if err != nil {
				return nil, err
			}
			patch.Day = &d
		}
	}
	hasDay := patch.Day != nil || (existing.Due != nil && !patch.ClearDue)

	fields := validation.TaskFields{}
	if patch.Text != nil {
		fields.Text = *patch.Text
	}
	if patch.Link != nil {
		fields.Link = *patch.Link
	}
	if t := trimmed(in.Time); t != nil {
		fields.Time = *t
	}
	if err := a.taskValidator.ValidateTaskForUpdate(id, fields, patch.Text != nil, hasDay); err != nil {
		return nil, err
	}

	if in.Time != nil {
		clock, err := a.services.DateService.ParseClock(fields.Time)
		if err != nil {
			return nil, err
		}
		patch.Clock = clock
		patch.ClearClock = clock == nil
	}

	found, err := a.store.UpdateTask(ctx, list, id, patch)
	if err != nil || !found {
		return nil, err
	}
	return a.findTask(list, id)
}

func (a *apiImpl) RemoveTask(ctx context.Context, listName, id string) error {
	list, err := ParseList(listName)
	if err != nil {
		return err
	}
	return a.store.RemoveTask(ctx, list, id)
}

// ToggleTask flips the task's completion. A missing task yields nil.
func (a *apiImpl) ToggleTask(ctx context.Context, listName, id string) (*domain.Task, error) {
	list, err := ParseList(listName)
	if err != nil {
		return nil, err
	}
	found, err := a.store.ToggleTaskCompletion(ctx, list, id)
	if err != nil || !found {
		return nil, err
	}
	return a.findTask(list, id)
}

func (a *apiImpl) ClearList(ctx context.Context, listName string) error {
	list, err := ParseList(listName)
	if err != nil {
		return err
	}
	return a.store.ClearList(ctx, list)
}

func (a *apiImpl) ListTasks(ctx context.Context, listName string) ([]domain.Task, error) {
	list, err := ParseList(listName)
	if err != nil {
		return nil, err
	}
	return a.store.Tasks(list)
}

func (a *apiImpl) SearchTasks(ctx context.Context, in SearchInput) ([]services.SearchResult, error) {
	opts := domain.SearchOptions{
		Text:             strings.TrimSpace(in.Text),
		IncludeCompleted: in.IncludeCompleted,
	}
	for _, name := range in.Lists {
		list, err := ParseList(name)
		if err != nil {
			return nil, err
		}
		opts.Lists = append(opts.Lists, list)
	}
	if strings.TrimSpace(in.From) != "" {
		from, err := a.services.DateService.ParseDate(in.From)
		if err != nil {
			return nil, err
		}
		opts.From = &from
	}
	if strings.TrimSpace(in.To) != "" {
		to, err := a.services.DateService.ParseDate(in.To)
		if err != nil {
			return nil, err
		}
		opts.To = &to
	}
	if opts.From != nil && opts.To != nil && opts.To.Before(*opts.From) {
		return nil, errors.NewInvalidInputError("to", in.To, "end date is before start date")
	}
	return a.services.SearchService.SearchTasks(a.store.State(), opts), nil
}

func (a *apiImpl) State(ctx context.Context) domain.State {
	return a.store.State()
}

func (a *apiImpl) findTask(list domain.ListName, id string) (*domain.Task, error) {
	tasks, err := a.store.Tasks(list)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// Workout operations

func (a *apiImpl) WorkoutPlan(ctx context.Context) *domain.WorkoutPlan {
	return a.store.WorkoutPlan()
}

// SetWorkoutPlan saves the plan form, keeping the id of the current plan.
func (a *apiImpl) SetWorkoutPlan(ctx context.Context, in WorkoutInput) (*domain.WorkoutPlan, error) {
	fields := in.fields()
	if err := a.workoutValidator.ValidatePlan(fields); err != nil {
		return nil, err
	}

	schedule := make(map[domain.WeekdayName]*domain.WorkoutDay, len(domain.Weekdays))
	for key, day := range fields.Days {
		name, _ := domain.ParseWeekdayName(key)
		if day.IsRest() {
			schedule[name] = nil
			continue
		}
		schedule[name] = &domain.WorkoutDay{Time: day.Time, Exercises: day.Exercises}
	}

	plan := domain.WorkoutPlan{
		Name:     strings.TrimSpace(in.Name),
		Schedule: schedule,
	}
	if current := a.store.WorkoutPlan(); current != nil {
		plan.ID = current.ID
	}

	if err := a.store.SetWorkoutPlan(ctx, plan); err != nil {
		return nil, err
	}
	return a.store.WorkoutPlan(), nil
}

func (a *apiImpl) ClearWorkoutPlan(ctx context.Context) error {
	return a.store.ClearWorkoutPlan(ctx)
}

// ToggleWorkout flips the workout completion of day (today when empty) and
// returns the resolved day with its new value.
func (a *apiImpl) ToggleWorkout(ctx context.Context, day string) (time.Time, bool, error) {
	d, err := a.resolveDay(day)
	if err != nil {
		return time.Time{}, false, err
	}
	done, err := a.store.ToggleWorkoutCompletion(ctx, d)
	return d, done, err
}

// Views

// DayAgenda returns the agenda of day, or of today when day is empty.
func (a *apiImpl) DayAgenda(ctx context.Context, day string) (*services.DayAgenda, error) {
	d, err := a.resolveDay(day)
	if err != nil {
		return nil, err
	}
	return a.services.ReportingService.DayAgenda(a.store.State(), d), nil
}

func (a *apiImpl) Month(ctx context.Context, year int, month time.Month) views.MonthView {
	return a.services.ReportingService.Month(a.store.State(), year, month)
}

func (a *apiImpl) Dashboard(ctx context.Context) *services.Dashboard {
	return a.services.ReportingService.Dashboard(a.store.State())
}

func (a *apiImpl) Overdue(ctx context.Context) []views.OverdueTask {
	return a.services.ReportingService.Overdue(a.store.State())
}

func (a *apiImpl) Today() time.Time {
	return a.services.DateService.Today()
}

func (a *apiImpl) Now() time.Time {
	return a.services.DateService.Now()
}

func (a *apiImpl) resolveDay(day string) (time.Time, error) {
	if strings.TrimSpace(day) == "" {
		return a.services.DateService.Today(), nil
	}
	return a.services.DateService.ParseDate(day)
}
