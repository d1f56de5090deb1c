package services

import (
	"testing"
	"time"
	_ "time/tzdata"

	"organizer/internal/domain"
	"organizer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is Tuesday 2024-03-05 10:30 UTC
func fixedNow() time.Time {
	return time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
}

func newTestDateService() DateService {
	return NewDateService(fixedNow, time.UTC, time.Sunday)
}

func TestDateService_ParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"day first", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"iso", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"today", "today", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"hoje", "Hoje", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", "tomorrow", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
		{"amanhã", "amanhã", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
		{"amanha", " amanha ", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
		{"yesterday", "yesterday", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	}

	ds := newTestDateService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ds.ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}
}

func TestDateService_ParseDate_Invalid(t *testing.T) {
	ds := newTestDateService()
	for _, input := range []string{"", "31/02/2024", "2024/03/15", "next week", "15-03-2024", "01/01/0001", "9999-12-31"} {
		t.Run(input, func(t *testing.T) {
			_, err := ds.ParseDate(input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
		})
	}
}

func TestDateService_ParseClock(t *testing.T) {
	ds := newTestDateService()

	c, err := ds.ParseClock("09:05")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 9, c.Hour)
	assert.Equal(t, 5, c.Minute)

	c, err = ds.ParseClock("")
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = ds.ParseClock("25:00")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestDateService_ParseDate_DSTStartAtMidnight(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2024, 9, 8, 12, 0, 0, 0, santiago) }
	ds := NewDateService(now, santiago, time.Sunday)

	for _, input := range []string{"08/09/2024", "2024-09-08", "hoje"} {
		t.Run(input, func(t *testing.T) {
			got, err := ds.ParseDate(input)
			require.NoError(t, err)
			assert.Equal(t, "2024-09-08", domain.DateKey(got))
			assert.Equal(t, time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC), got)
		})
	}

	tomorrow, err := ds.ParseDate("amanhã")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-09", domain.DateKey(tomorrow))
}

func TestDateService_Today(t *testing.T) {
	ds := newTestDateService()
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), ds.Today())

	brt := time.FixedZone("BRT", -3*60*60)
	late := NewDateService(func() time.Time { return time.Date(2024, 3, 6, 1, 0, 0, 0, time.UTC) }, brt, time.Sunday)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), late.Today())
}

func TestNewDateService_Defaults(t *testing.T) {
	ds := NewDateService(nil, nil, time.Monday)

	assert.Equal(t, time.Local, ds.Now().Location())
	assert.Equal(t, time.Monday, ds.WeekStart())
	assert.WithinDuration(t, time.Now(), ds.Now(), time.Minute)
}
