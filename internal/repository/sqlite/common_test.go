package sqlite

import (
	"context"
	"errors"
	"testing"

	apperrors "organizer/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	require.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeStorage))
	assert.ErrorIs(t, result, originalErr)
}

func TestQuerySingle_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := QuerySingle(context.Background(), repo.db,
		`SELECT key, value, updated_at FROM kv_entries WHERE key = ?`,
		ScanEntry, "key", "missing", "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestExecute_WrapsFailures(t *testing.T) {
	repo := setupTestRepo(t)

	err := Execute(context.Background(), repo.db, "bad statement", `INSERT INTO missing_table VALUES (1)`)

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
	assert.Contains(t, err.Error(), "bad statement")
}
