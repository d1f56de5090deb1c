// Package export writes the organization to files other tools can read.
package export

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"organizer/internal/domain"
	"organizer/internal/errors"
)

// Format names an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats
var Formats = []Format{FormatCSV, FormatJSON, FormatXLSX}

// ParseFormat resolves a format name case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.NewInvalidInputError("format", s, "supported formats are csv, json and xlsx")
}

// Extension returns the file extension for the format, with the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Exporter writes a state snapshot to w
type Exporter interface {
	Export(w io.Writer, state domain.State) error
}

// New returns the exporter for format
func New(format Format) (Exporter, error) {
	switch format {
	case FormatCSV:
		return &CSVExporter{}, nil
	case FormatJSON:
		return &JSONExporter{Indent: "  "}, nil
	case FormatXLSX:
		return &XLSXExporter{}, nil
	default:
		return nil, errors.NewInvalidInputError("format", string(format), "unsupported format")
	}
}

// TaskHeader is the column layout shared by the tabular formats
var TaskHeader = []string{"List", "ID", "Text", "Date", "Time", "Link", "Urgent", "Completed"}

// WorkoutHeader is the column layout of the workout plan rows
var WorkoutHeader = []string{"Plan", "Weekday", "Time", "Exercises", "Done Dates"}

func taskRow(info domain.ListInfo, t domain.Task) []string {
	var date, clock string
	if t.Due != nil {
		date = domain.DateKey(t.Due.Day)
		if t.Due.Clock != nil {
			clock = t.Due.Clock.String()
		}
	}
	return []string{
		string(info.Name),
		t.ID,
		t.Text,
		date,
		clock,
		t.Link,
		strconv.FormatBool(t.Urgent),
		strconv.FormatBool(t.Completed),
	}
}

// workoutRows lays the plan out one weekday per row. Rest days get an
// empty time and exercises. The done dates of each weekday are listed in
// the last column.
func workoutRows(state domain.State) [][]string {
	plan := state.WorkoutPlan
	if plan == nil {
		return nil
	}

	done := completedByWeekday(state.CompletedWorkouts)
	rows := make([][]string, 0, len(domain.Weekdays))
	for _, name := range domain.Weekdays {
		row := []string{plan.Name, string(name), "", "", strings.Join(done[name], " ")}
		if day := plan.Schedule[name]; day != nil {
			row[2] = day.Time
			row[3] = day.Exercises
		}
		rows = append(rows, row)
	}
	return rows
}

func completedByWeekday(record domain.CompletedWorkouts) map[domain.WeekdayName][]string {
	out := make(map[domain.WeekdayName][]string)
	for _, key := range sortedDoneKeys(record) {
		day, err := parseKey(key)
		if err != nil {
			continue
		}
		name := domain.WeekdayNameOf(day)
		out[name] = append(out[name], key)
	}
	return out
}

func sortedDoneKeys(record domain.CompletedWorkouts) []string {
	keys := make([]string, 0, len(record))
	for k, done := range record {
		if done {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func parseKey(key string) (time.Time, error) {
	return time.Parse(domain.DateLayout, key)
}
