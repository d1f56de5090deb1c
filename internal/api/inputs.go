package api

import (
	"strings"

	"organizer/internal/validation"
)

// TaskInput is the content of a new task as typed by the user
type TaskInput struct {
	Text   string `json:"text"`
	Date   string `json:"date,omitempty"`
	Time   string `json:"time,omitempty"`
	Link   string `json:"link,omitempty"`
	Urgent bool   `json:"urgent"`
}

// TaskUpdate holds the fields to change on an existing task. Nil fields are
// left alone. An empty Date, Time or Link clears that field.
type TaskUpdate struct {
	Text      *string `json:"text,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Link      *string `json:"link,omitempty"`
	Urgent    *bool   `json:"urgent,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the update changes nothing
func (u TaskUpdate) IsEmpty() bool {
	return u.Text == nil && u.Date == nil && u.Time == nil && u.Link == nil &&
		u.Urgent == nil && u.Completed == nil
}

// SearchInput are the criteria of a task search as typed by the user.
// From and To take the same date forms as TaskInput.Date.
type SearchInput struct {
	Text             string   `json:"text,omitempty"`
	Lists            []string `json:"lists,omitempty"`
	From             string   `json:"from,omitempty"`
	To               string   `json:"to,omitempty"`
	IncludeCompleted bool     `json:"includeCompleted"`
}

// WorkoutDayInput is one weekday of a workout plan form
type WorkoutDayInput struct {
	Time      string `json:"time"`
	Exercises string `json:"exercises"`
}

// WorkoutInput is a workout plan form. Days are keyed by weekday name
// (Segunda .. Domingo). Missing days and days left blank are rest days.
type WorkoutInput struct {
	Name string                     `json:"name"`
	Days map[string]WorkoutDayInput `json:"days"`
}

func (in WorkoutInput) fields() validation.WorkoutFields {
	days := make(map[string]validation.WorkoutDayFields, len(in.Days))
	for key, d := range in.Days {
		days[key] = validation.WorkoutDayFields{
			Time:      strings.TrimSpace(d.Time),
			Exercises: strings.TrimSpace(d.Exercises),
		}
	}
	return validation.WorkoutFields{Name: in.Name, Days: days}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
