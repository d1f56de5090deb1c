package store

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"organizer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brt = time.FixedZone("BRT", -3*60*60)

func sampleState() domain.State {
	state := domain.NewState()
	examDue := domain.NewDue(time.Date(2024, 3, 5, 0, 0, 0, 0, brt), nil)
	meetingDue := domain.NewDue(time.Date(2024, 3, 6, 0, 0, 0, 0, brt), &domain.Clock{Hour: 14, Minute: 30})

	state.Lists[domain.ListExams] = []domain.Task{
		{ID: "1", Text: "Calc Final", Due: &examDue, Urgent: true},
		{ID: "2", Text: "Physics"},
	}
	state.Lists[domain.ListVideoLessons] = []domain.Task{
		{ID: "3", Text: "Lecture 4", Link: "https://example.com/lecture-4"},
	}
	state.Lists[domain.ListMeetings] = []domain.Task{
		{ID: "4", Text: "Sprint review", Due: &meetingDue, Completed: true},
	}
	state.WorkoutPlan = &domain.WorkoutPlan{
		ID:   "plan-1",
		Name: "Meu Treino",
		Schedule: domain.NormalizeSchedule(map[domain.WeekdayName]*domain.WorkoutDay{
			domain.Terca: {Time: "18:00", Exercises: "Legs"},
		}),
	}
	state.CompletedWorkouts["2024-03-05"] = true
	state.CompletedWorkouts["2024-03-06"] = false
	return state
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	state := sampleState()

	data, err := Encode(state)
	require.NoError(t, err)

	decoded, skipped, err := Decode(data, brt)
	require.NoError(t, err)

	assert.Empty(t, skipped)
	assert.Equal(t, state, decoded)
}

func TestEncodeDecode_EmptyStateRoundTrip(t *testing.T) {
	data, err := Encode(domain.NewState())
	require.NoError(t, err)

	decoded, _, err := Decode(data, brt)
	require.NoError(t, err)
	assert.Equal(t, domain.NewState(), decoded)
}

func TestEncode_Shape(t *testing.T) {
	data, err := Encode(sampleState())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, info := range domain.AllLists {
		assert.Contains(t, raw, string(info.Name))
	}
	assert.Contains(t, raw, "workoutPlan")
	assert.Contains(t, raw, "completedWorkouts")

	var exams []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["exams"], &exams))
	require.Len(t, exams, 2)
	assert.Equal(t, "2024-03-05", exams[0]["date"])
	assert.NotContains(t, exams[0], "time")
	assert.NotContains(t, exams[0], "link")
	assert.Equal(t, true, exams[0]["urgent"])
	assert.Equal(t, false, exams[0]["completed"])
	assert.NotContains(t, exams[1], "date")

	var meetings []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["meetings"], &meetings))
	assert.Equal(t, "14:30", meetings[0]["time"])

	var plan struct {
		Schedule map[string]*dayDoc `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(raw["workoutPlan"], &plan))
	assert.Len(t, plan.Schedule, 7)
	assert.Nil(t, plan.Schedule["Segunda"])
	require.NotNil(t, plan.Schedule["Terça"])
	assert.Equal(t, "Legs", plan.Schedule["Terça"].Exercises)
}

func TestEncode_NoPlanIsNull(t *testing.T) {
	data, err := Encode(domain.NewState())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "null", string(raw["workoutPlan"]))
	assert.Equal(t, "{}", string(raw["completedWorkouts"]))
}

func TestDecode_FillsDefaults(t *testing.T) {
	input := `{
		"exams": [{"id": "1", "text": "Prova"}],
		"classes": "legacy notes",
		"gjEvents": "legacy events"
	}`

	state, skipped, err := Decode([]byte(input), brt)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	require.Len(t, state.Tasks(domain.ListExams), 1)
	exam := state.Tasks(domain.ListExams)[0]
	assert.False(t, exam.Urgent)
	assert.False(t, exam.Completed)
	assert.Nil(t, exam.Due)

	for _, info := range domain.AllLists {
		assert.NotNil(t, state.Tasks(info.Name), info.Name)
	}
	assert.Nil(t, state.WorkoutPlan)
	assert.NotNil(t, state.CompletedWorkouts)
	assert.Empty(t, state.CompletedWorkouts)
}

func TestDecode_Dates(t *testing.T) {
	tests := []struct {
		name        string
		date        string
		time        string
		expectedDay *time.Time
		expectClock *domain.Clock
	}{
		{
			name:        "plain date",
			date:        "2024-03-05",
			expectedDay: ptrTime(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:        "datetime reduced to local day",
			date:        "2024-03-05T03:00:00.000Z",
			expectedDay: ptrTime(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:        "datetime before local midnight",
			date:        "2024-03-05T01:00:00Z",
			expectedDay: ptrTime(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:        "date with time",
			date:        "2024-03-05",
			time:        "09:15",
			expectedDay: ptrTime(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
			expectClock: &domain.Clock{Hour: 9, Minute: 15},
		},
		{
			name:        "invalid time is dropped",
			date:        "2024-03-05",
			time:        "late",
			expectedDay: ptrTime(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "invalid date is dropped",
			date: "2024-02-30",
			time: "09:15",
		},
		{
			name: "time without date is dropped",
			time: "09:15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := map[string]string{"id": "1", "text": "x"}
			if tt.date != "" {
				task["date"] = tt.date
			}
			if tt.time != "" {
				task["time"] = tt.time
			}
			data, err := json.Marshal(map[string]interface{}{"exams": []interface{}{task}})
			require.NoError(t, err)

			state, _, err := Decode(data, brt)
			require.NoError(t, err)
			decoded := state.Tasks(domain.ListExams)[0]

			if tt.expectedDay == nil {
				assert.Nil(t, decoded.Due)
				return
			}
			require.NotNil(t, decoded.Due)
			assert.Equal(t, *tt.expectedDay, decoded.Due.Day)
			assert.Equal(t, tt.expectClock, decoded.Due.Clock)
		})
	}
}

func TestDecode_NumericIDs(t *testing.T) {
	input := `{"exams": [{"id": 1709251200000, "text": "Prova"}], "workoutPlan": {"id": 42, "name": "Treino", "schedule": {}}}`

	state, _, err := Decode([]byte(input), brt)
	require.NoError(t, err)
	assert.Equal(t, "1709251200000", state.Tasks(domain.ListExams)[0].ID)
	assert.Equal(t, "42", state.WorkoutPlan.ID)
}

func TestDecode_NormalizesSchedule(t *testing.T) {
	input := `{"workoutPlan": {"id": "p", "name": "Treino", "schedule": {
		"Segunda": {"time": "07:00", "exercises": "Pernas"},
		"Terca": {"time": "08:00", "exercises": "Costas"},
		"Holiday": {"time": "10:00", "exercises": "Nada"},
		"Quarta": null
	}}}`

	state, _, err := Decode([]byte(input), brt)
	require.NoError(t, err)
	require.NotNil(t, state.WorkoutPlan)

	schedule := state.WorkoutPlan.Schedule
	assert.Len(t, schedule, 7)
	require.NotNil(t, schedule[domain.Segunda])
	require.NotNil(t, schedule[domain.Terca])
	assert.Equal(t, "Costas", schedule[domain.Terca].Exercises)
	assert.Nil(t, schedule[domain.Quarta])
	assert.Nil(t, schedule[domain.Domingo])
}

func TestDecode_Malformed(t *testing.T) {
	inputs := []string{
		`{"exams": [{"id": "1", "text": "trunc`,
		`not json`,
		`["exams"]`,
	}

	for _, input := range inputs {
		state, _, err := Decode([]byte(input), brt)
		assert.Error(t, err, input)
		assert.Equal(t, domain.NewState(), state)
	}
}

func TestDecode_SkipsMistypedEntries(t *testing.T) {
	input := `{
		"exams": [{"id": "1", "text": "Calc", "date": "2024-03-05"}, {"id": "2", "text": 7}, {"id": "3", "text": "Physics"}],
		"meetings": "not a list",
		"workTasks": [{"id": "w1", "text": "Report"}],
		"workoutPlan": {"id": "p", "name": "Treino", "schedule": {
			"Segunda": {"time": "07:00", "exercises": "Push"},
			"Terça": "legs"
		}},
		"completedWorkouts": {"2024-03-04": true, "2024-03-05": "yes"}
	}`

	state, skipped, err := Decode([]byte(input), brt)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"completedWorkouts.2024-03-05",
		"exams[1]",
		"meetings",
		"workoutPlan.schedule.Terça",
	}, skipped)

	exams := state.Tasks(domain.ListExams)
	require.Len(t, exams, 2)
	assert.Equal(t, "1", exams[0].ID)
	assert.Equal(t, "3", exams[1].ID)
	assert.Empty(t, state.Tasks(domain.ListMeetings))
	require.Len(t, state.Tasks(domain.ListWorkTasks), 1)

	require.NotNil(t, state.WorkoutPlan)
	assert.NotNil(t, state.WorkoutPlan.Schedule[domain.Segunda])
	assert.Nil(t, state.WorkoutPlan.Schedule[domain.Terca])
	assert.Equal(t, domain.CompletedWorkouts{"2024-03-04": true}, state.CompletedWorkouts)
}

func TestDecode_MistypedPlanIsSkipped(t *testing.T) {
	state, skipped, err := Decode([]byte(`{"workoutPlan": ["Treino"], "completedWorkouts": 3}`), brt)
	require.NoError(t, err)

	assert.Equal(t, []string{"completedWorkouts", "workoutPlan"}, skipped)
	assert.Nil(t, state.WorkoutPlan)
	assert.Empty(t, state.CompletedWorkouts)
}

func TestDecode_DSTStartAtMidnight(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	state, _, err := Decode([]byte(`{"exams": [{"id": "1", "text": "Calc", "date": "2024-09-08", "time": "09:00"}]}`), santiago)
	require.NoError(t, err)

	exam := state.Tasks(domain.ListExams)[0]
	require.NotNil(t, exam.Due)
	assert.Equal(t, "2024-09-08", domain.DateKey(exam.Due.Day))
	assert.Equal(t, time.Sunday, exam.Due.Day.Weekday())

	data, err := Encode(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"date":"2024-09-08","time":"09:00"`)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
