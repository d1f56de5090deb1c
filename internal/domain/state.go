package domain

import "time"

// CompletedWorkouts records, per calendar date, whether that day's workout was done.
type CompletedWorkouts map[string]bool

// IsDone reports the recorded completion for the day of t.
func (c CompletedWorkouts) IsDone(t time.Time) bool {
	return c[DateKey(t)]
}

// State is the root aggregate persisted as one snapshot.
type State struct {
	Lists             map[ListName][]Task
	WorkoutPlan       *WorkoutPlan
	CompletedWorkouts CompletedWorkouts
}

// NewState returns the empty initial state.
func NewState() State {
	lists := make(map[ListName][]Task, len(AllLists))
	for _, info := range AllLists {
		lists[info.Name] = []Task{}
	}
	return State{
		Lists:             lists,
		CompletedWorkouts: CompletedWorkouts{},
	}
}

// Tasks returns the tasks of a list in display order.
func (s State) Tasks(list ListName) []Task {
	return s.Lists[list]
}

// Clone deep-copies the state.
func (s State) Clone() State {
	out := NewState()
	for name, tasks := range s.Lists {
		copied := make([]Task, len(tasks))
		for i, t := range tasks {
			copied[i] = t.Clone()
		}
		out.Lists[name] = copied
	}
	out.WorkoutPlan = s.WorkoutPlan.Clone()
	for k, v := range s.CompletedWorkouts {
		out.CompletedWorkouts[k] = v
	}
	return out
}

// FindTask returns the index of the task with id in list, or -1.
func (s State) FindTask(list ListName, id string) int {
	for i, t := range s.Lists[list] {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// DisplayTask is a read-only projection of a task, or of a synthesized
// workout, used to render one date's agenda. Workout rows carry no
// completion flag; their completion lives in CompletedWorkouts.
type DisplayTask struct {
	ID        string
	Text      string
	Category  string
	Icon      string
	List      string
	Due       *Due
	Urgent    bool
	Completed *bool
}

// IsWorkout reports whether the row was synthesized from the workout plan.
func (d DisplayTask) IsWorkout() bool {
	return d.List == WorkoutSection
}
