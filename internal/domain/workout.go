package domain

import (
	"strings"
	"time"
)

// WeekdayName is one of the seven fixed schedule keys.
type WeekdayName string

const (
	Segunda WeekdayName = "Segunda"
	Terca   WeekdayName = "Terça"
	Quarta  WeekdayName = "Quarta"
	Quinta  WeekdayName = "Quinta"
	Sexta   WeekdayName = "Sexta"
	Sabado  WeekdayName = "Sábado"
	Domingo WeekdayName = "Domingo"
)

// Weekdays lists the schedule keys in display order, Monday first.
var Weekdays = []WeekdayName{Segunda, Terca, Quarta, Quinta, Sexta, Sabado, Domingo}

var weekdayOf = map[WeekdayName]time.Weekday{
	Segunda: time.Monday,
	Terca:   time.Tuesday,
	Quarta:  time.Wednesday,
	Quinta:  time.Thursday,
	Sexta:   time.Friday,
	Sabado:  time.Saturday,
	Domingo: time.Sunday,
}

// Weekday returns the time.Weekday for the name.
func (w WeekdayName) Weekday() time.Weekday {
	return weekdayOf[w]
}

// IsValid reports whether w is one of the seven schedule keys.
func (w WeekdayName) IsValid() bool {
	_, ok := weekdayOf[w]
	return ok
}

// WeekdayNameOf returns the schedule key for the weekday of t.
func WeekdayNameOf(t time.Time) WeekdayName {
	wd := t.Weekday()
	for name, d := range weekdayOf {
		if d == wd {
			return name
		}
	}
	return ""
}

var weekdayAliases = map[string]WeekdayName{
	"terca":  Terca,
	"sabado": Sabado,
	"seg":    Segunda,
	"ter":    Terca,
	"qua":    Quarta,
	"qui":    Quinta,
	"sex":    Sexta,
	"sab":    Sabado,
	"sáb":    Sabado,
	"dom":    Domingo,
}

// ParseWeekdayName resolves a weekday name case-insensitively, also
// accepting unaccented spellings and three letter abbreviations.
func ParseWeekdayName(s string) (WeekdayName, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, name := range Weekdays {
		if strings.ToLower(string(name)) == key {
			return name, true
		}
	}
	name, ok := weekdayAliases[key]
	return name, ok
}

// WorkoutDay is the scheduled session for one weekday.
type WorkoutDay struct {
	Time      string
	Exercises string
}

// Summary renders the session as "time - exercises".
func (d WorkoutDay) Summary() string {
	return d.Time + " - " + d.Exercises
}

// WorkoutPlan is the weekly recurring exercise template. A nil schedule
// entry is a rest day.
type WorkoutPlan struct {
	ID       string
	Name     string
	Schedule map[WeekdayName]*WorkoutDay
}

// NormalizeSchedule returns a schedule holding exactly the seven weekday keys.
// Unknown keys are dropped and missing keys become rest days.
func NormalizeSchedule(in map[WeekdayName]*WorkoutDay) map[WeekdayName]*WorkoutDay {
	out := make(map[WeekdayName]*WorkoutDay, len(Weekdays))
	for _, name := range Weekdays {
		if day := in[name]; day != nil {
			d := *day
			out[name] = &d
		} else {
			out[name] = nil
		}
	}
	return out
}

// DayFor returns the session scheduled on the weekday of t, or nil on rest days.
func (p *WorkoutPlan) DayFor(t time.Time) *WorkoutDay {
	if p == nil {
		return nil
	}
	return p.Schedule[WeekdayNameOf(t)]
}

// ActiveDays counts the weekdays that are not rest days.
func (p *WorkoutPlan) ActiveDays() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, name := range Weekdays {
		if p.Schedule[name] != nil {
			n++
		}
	}
	return n
}

// Clone deep-copies the plan.
func (p *WorkoutPlan) Clone() *WorkoutPlan {
	if p == nil {
		return nil
	}
	return &WorkoutPlan{ID: p.ID, Name: p.Name, Schedule: NormalizeSchedule(p.Schedule)}
}
