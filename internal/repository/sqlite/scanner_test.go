package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []string
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		if v, ok := d.(*string); ok {
			*v = ts.data[i]
		}
	}
	return nil
}

func TestScanEntry(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Entry
		expectError bool
	}{
		{
			name:    "valid entry",
			scanner: &TestScanner{data: []string{"camilaOrganization", "{}", "2024-06-01T10:00:00Z"}},
			expected: &Entry{
				Key:       "camilaOrganization",
				Value:     "{}",
				UpdatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:        "invalid timestamp",
			scanner:     &TestScanner{data: []string{"k", "v", "yesterday"}},
			expectError: true,
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanEntry(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Key, result.Key)
			assert.Equal(t, tt.expected.Value, result.Value)
			assert.True(t, tt.expected.UpdatedAt.Equal(result.UpdatedAt))
		})
	}
}
