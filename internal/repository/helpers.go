package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/taskflowhq/taskflow/internal/domain"
)

// parseNullableString converts a sql.NullString to a *string.
func parseNullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// nullableStringToValue converts a *string to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// parseTimestamp parses an RFC3339 timestamp column.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// translateConstraint maps SQLite constraint violations onto domain error
// kinds so persistence failures never surface as raw driver errors:
// unique violations become Conflict, foreign-key violations BadRequest.
// Other errors pass through for the caller to wrap.
func translateConstraint(err error, conflictMsg, badRefMsg string) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &domain.Error{Kind: domain.KindConflict, Message: conflictMsg, Err: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &domain.Error{Kind: domain.KindBadRequest, Message: badRefMsg, Err: err}
	}
	return err
}
