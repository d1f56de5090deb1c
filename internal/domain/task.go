package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for storage and record keys.
const DateLayout = "2006-01-02"

// ClockLayout is the wall-clock time format, "HH:MM".
const ClockLayout = "15:04"

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DayOf returns the calendar day t falls on in t's location, as a date-only
// value at midnight UTC. Days never carry the user's zone.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD date into a date-only value.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateKey formats the calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Due is when a task falls: a calendar day and, optionally, a time of day.
// Without a clock the task is due at the start of its day.
type Due struct {
	Day   time.Time
	Clock *Clock
}

// NewDue builds a Due on the calendar day of day.
func NewDue(day time.Time, clock *Clock) Due {
	d := Due{Day: DayOf(day)}
	if clock != nil {
		c := *clock
		d.Clock = &c
	}
	return d
}

// Before reports whether the due moment is strictly earlier than t, read on
// the calendar date and wall clock of t's location.
func (d Due) Before(t time.Time) bool {
	today := DayOf(t)
	if !d.Day.Equal(today) {
		return d.Day.Before(today)
	}
	hour, minute := d.wallClock()
	due := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
	elapsed := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())
	return due < elapsed
}

func (d Due) wallClock() (int, int) {
	if d.Clock == nil {
		return 0, 0
	}
	return d.Clock.Hour, d.Clock.Minute
}

// Task is a single entry of a category list.
type Task struct {
	ID        string
	Text      string
	Due       *Due
	Link      string
	Urgent    bool
	Completed bool
}

// HasDate reports whether the task is placed on the calendar.
func (t Task) HasDate() bool {
	return t.Due != nil
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	if t.Due != nil {
		due := NewDue(t.Due.Day, t.Due.Clock)
		t.Due = &due
	}
	return t
}

// TaskPatch is a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Text       *string
	Day        *time.Time
	Clock      *Clock
	ClearDue   bool
	ClearClock bool
	Link       *string
	Urgent     *bool
	Completed  *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Day == nil && p.Clock == nil && !p.ClearDue &&
		!p.ClearClock && p.Link == nil && p.Urgent == nil && p.Completed == nil
}

// Apply merges the patch into t. A clock is only kept when the task has a day.
func (p TaskPatch) Apply(t *Task) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.ClearDue {
		t.Due = nil
	}
	if p.Day != nil {
		var clock *Clock
		if t.Due != nil {
			clock = t.Due.Clock
		}
		due := NewDue(*p.Day, clock)
		t.Due = &due
	}
	if t.Due != nil {
		if p.ClearClock {
			t.Due.Clock = nil
		}
		if p.Clock != nil {
			c := *p.Clock
			t.Due.Clock = &c
		}
	}
	if p.Link != nil {
		t.Link = *p.Link
	}
	if p.Urgent != nil {
		t.Urgent = *p.Urgent
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
