package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"organizer/internal/domain"
)

// document is the persisted snapshot. Field names are the storage format and
// must not change.
type document struct {
	Exams             []taskDoc       `json:"exams"`
	VideoLessons      []taskDoc       `json:"videoLessons"`
	Assignments       []taskDoc       `json:"assignments"`
	Meetings          []taskDoc       `json:"meetings"`
	WorkTasks         []taskDoc       `json:"workTasks"`
	GJMeetings        []taskDoc       `json:"gjMeetings"`
	OutrosEventos     []taskDoc       `json:"outrosEventos"`
	WorkoutPlan       *planDoc        `json:"workoutPlan"`
	CompletedWorkouts map[string]bool `json:"completedWorkouts"`
}

func (d *document) lists() map[domain.ListName]*[]taskDoc {
	return map[domain.ListName]*[]taskDoc{
		domain.ListExams:         &d.Exams,
		domain.ListVideoLessons:  &d.VideoLessons,
		domain.ListAssignments:   &d.Assignments,
		domain.ListMeetings:      &d.Meetings,
		domain.ListWorkTasks:     &d.WorkTasks,
		domain.ListGJMeetings:    &d.GJMeetings,
		domain.ListOutrosEventos: &d.OutrosEventos,
	}
}

type taskDoc struct {
	ID        flexString `json:"id"`
	Text      string     `json:"text"`
	Date      string     `json:"date,omitempty"`
	Time      string     `json:"time,omitempty"`
	Link      string     `json:"link,omitempty"`
	Urgent    bool       `json:"urgent"`
	Completed bool       `json:"completed"`
}

type planDoc struct {
	ID       flexString         `json:"id"`
	Name     string             `json:"name"`
	Schedule map[string]*dayDoc `json:"schedule"`
}

type dayDoc struct {
	Time      string `json:"time"`
	Exercises string `json:"exercises"`
}

// flexString accepts ids written either as strings or as bare numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// Encode serializes the full state into its persisted JSON form.
func Encode(state domain.State) ([]byte, error) {
	doc := document{CompletedWorkouts: map[string]bool{}}

	lists := doc.lists()
	for _, info := range domain.AllLists {
		tasks := state.Lists[info.Name]
		out := make([]taskDoc, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, encodeTask(t))
		}
		*lists[info.Name] = out
	}

	if plan := state.WorkoutPlan; plan != nil {
		pd := &planDoc{ID: flexString(plan.ID), Name: plan.Name, Schedule: make(map[string]*dayDoc, len(domain.Weekdays))}
		for _, name := range domain.Weekdays {
			if day := plan.Schedule[name]; day != nil {
				pd.Schedule[string(name)] = &dayDoc{Time: day.Time, Exercises: day.Exercises}
			} else {
				pd.Schedule[string(name)] = nil
			}
		}
		doc.WorkoutPlan = pd
	}

	for k, v := range state.CompletedWorkouts {
		doc.CompletedWorkouts[k] = v
	}

	return json.Marshal(doc)
}

func encodeTask(t domain.Task) taskDoc {
	td := taskDoc{
		ID:        flexString(t.ID),
		Text:      t.Text,
		Link:      t.Link,
		Urgent:    t.Urgent,
		Completed: t.Completed,
	}
	if t.Due != nil {
		td.Date = domain.DateKey(t.Due.Day)
		if t.Due.Clock != nil {
			td.Time = t.Due.Clock.String()
		}
	}
	return td
}

// Decode parses a persisted snapshot, filling every missing field with its
// default. Only data that is not a JSON object fails as a whole. A list, task,
// plan or completion entry of the wrong shape is left out and its path is
// returned in skipped. Task dates that cannot be parsed are dropped together
// with their time.
func Decode(data []byte, loc *time.Location) (state domain.State, skipped []string, err error) {
	if loc == nil {
		loc = time.Local
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.NewState(), nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	state = domain.NewState()
	for _, info := range domain.AllLists {
		name := info.Name.String()
		var items []json.RawMessage
		if !decodeField(fields[name], &items) {
			skipped = append(skipped, name)
			continue
		}
		tasks := make([]domain.Task, 0, len(items))
		for i, item := range items {
			var td taskDoc
			if err := json.Unmarshal(item, &td); err != nil {
				skipped = append(skipped, fmt.Sprintf("%s[%d]", name, i))
				continue
			}
			tasks = append(tasks, decodeTask(td, loc))
		}
		state.Lists[info.Name] = tasks
	}

	plan, planSkipped := decodePlan(fields["workoutPlan"])
	state.WorkoutPlan = plan
	skipped = append(skipped, planSkipped...)

	var completed map[string]json.RawMessage
	if !decodeField(fields["completedWorkouts"], &completed) {
		skipped = append(skipped, "completedWorkouts")
	}
	for key, raw := range completed {
		var done bool
		if err := json.Unmarshal(raw, &done); err != nil {
			skipped = append(skipped, "completedWorkouts."+key)
			continue
		}
		state.CompletedWorkouts[key] = done
	}

	sort.Strings(skipped)
	return state, skipped, nil
}

// decodeField unmarshals raw into v. An absent or null field leaves v alone.
func decodeField(raw json.RawMessage, v interface{}) bool {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return true
	}
	return json.Unmarshal(raw, v) == nil
}

func decodePlan(raw json.RawMessage) (*domain.WorkoutPlan, []string) {
	var pd struct {
		ID       flexString                 `json:"id"`
		Name     string                     `json:"name"`
		Schedule map[string]json.RawMessage `json:"schedule"`
	}
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	if err := json.Unmarshal(raw, &pd); err != nil {
		return nil, []string{"workoutPlan"}
	}

	var skipped []string
	schedule := make(map[domain.WeekdayName]*domain.WorkoutDay, len(domain.Weekdays))
	for key, rawDay := range pd.Schedule {
		name, ok := domain.ParseWeekdayName(key)
		if !ok {
			continue
		}
		var day *dayDoc
		if !decodeField(rawDay, &day) {
			skipped = append(skipped, "workoutPlan.schedule."+key)
			continue
		}
		if day == nil {
			continue
		}
		schedule[name] = &domain.WorkoutDay{Time: day.Time, Exercises: day.Exercises}
	}
	return &domain.WorkoutPlan{
		ID:       string(pd.ID),
		Name:     pd.Name,
		Schedule: domain.NormalizeSchedule(schedule),
	}, skipped
}

func decodeTask(td taskDoc, loc *time.Location) domain.Task {
	t := domain.Task{
		ID:        string(td.ID),
		Text:      td.Text,
		Link:      td.Link,
		Urgent:    td.Urgent,
		Completed: td.Completed,
	}

	day, ok := parseStoredDate(td.Date, loc)
	if !ok {
		return t
	}

	var clock *domain.Clock
	if td.Time != "" {
		if c, err := domain.ParseClock(td.Time); err == nil {
			clock = &c
		}
	}
	due := domain.NewDue(day, clock)
	t.Due = &due
	return t
}

// parseStoredDate accepts a plain calendar date or an RFC 3339 datetime,
// which is reduced to its calendar day in loc. The result is date-only.
func parseStoredDate(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if day, err := domain.ParseDay(s); err == nil {
		return day, true
	}
	if instant, err := time.Parse(time.RFC3339, s); err == nil {
		return domain.DayOf(instant.In(loc)), true
	}
	return time.Time{}, false
}
