package services

import (
	"strings"
	"time"

	"organizer/internal/domain"
	"organizer/internal/errors"
	"organizer/internal/validation"
)

// InputDateLayout is the day-first format users type dates in
const InputDateLayout = "02/01/2006"

var relativeDays = map[string]int{
	"today":     0,
	"hoje":      0,
	"tomorrow":  1,
	"amanhã":    1,
	"amanha":    1,
	"yesterday": -1,
	"ontem":     -1,
}

// dateServiceImpl implements the DateService interface
type dateServiceImpl struct {
	now       func() time.Time
	loc       *time.Location
	weekStart time.Weekday
	validator *validation.Validator
}

// NewDateService creates a DateService reading the current time from now.
// A nil now uses time.Now and a nil loc uses time.Local.
func NewDateService(now func() time.Time, loc *time.Location, weekStart time.Weekday) DateService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &dateServiceImpl{now: now, loc: loc, weekStart: weekStart, validator: validation.NewValidator()}
}

func (d *dateServiceImpl) Now() time.Time {
	return d.now().In(d.loc)
}

func (d *dateServiceImpl) Today() time.Time {
	return domain.DayOf(d.Now())
}

func (d *dateServiceImpl) WeekStart() time.Weekday {
	return d.weekStart
}

// ParseDate accepts DD/MM/YYYY, YYYY-MM-DD and a few relative words
// (today, tomorrow, yesterday and their Portuguese forms). The result is a
// date-only value; dates more than a century away from today are refused.
func (d *dateServiceImpl) ParseDate(s string) (time.Time, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" {
		return time.Time{}, errors.NewInvalidInputError("date", s, "date cannot be empty")
	}

	if offset, ok := relativeDays[input]; ok {
		return d.Today().AddDate(0, 0, offset), nil
	}

	for _, layout := range []string{InputDateLayout, domain.DateLayout} {
		t, err := time.Parse(layout, input)
		if err != nil {
			continue
		}
		if !d.validator.IsReasonableDate(t, d.Today()) {
			return time.Time{}, errors.NewInvalidInputError("date", s, "date is out of range")
		}
		return t, nil
	}

	return time.Time{}, errors.NewInvalidInputError("date", s, "expected DD/MM/YYYY, YYYY-MM-DD or today/tomorrow")
}

// ParseClock parses HH:MM. An empty string means no time of day.
func (d *dateServiceImpl) ParseClock(s string) (*domain.Clock, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return nil, nil
	}
	c, err := domain.ParseClock(input)
	if err != nil {
		return nil, errors.NewInvalidInputError("time", s, "expected HH:MM")
	}
	return &c, nil
}
