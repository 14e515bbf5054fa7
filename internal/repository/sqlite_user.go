package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taskflowhq/taskflow/internal/db"
	"github.com/taskflowhq/taskflow/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, display_name, photo_url, phone_number, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.DisplayName,
		nullableStringToValue(u.PhotoURL),
		nullableStringToValue(u.PhoneNumber),
		u.CreatedAt.Format(time.RFC3339),
		u.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if terr := translateConstraint(err,
			fmt.Sprintf("user with email %s already exists", u.Email),
			"user references a missing record"); terr != err {
			return terr
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, display_name, photo_url, phone_number, created_at, updated_at
		FROM users WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanUser(row, fmt.Sprintf("user %s not found", id))
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, display_name, photo_url, phone_number, created_at, updated_at
		FROM users WHERE email = ?`
	row := r.db.QueryRowContext(ctx, query, email)
	return r.scanUser(row, fmt.Sprintf("user with email %s not found", email))
}

func (r *SQLiteUserRepo) scanUser(row *sql.Row, notFoundMsg string) (*domain.User, error) {
	var u domain.User
	var createdAtStr, updatedAtStr string
	var photoURL, phoneNumber sql.NullString

	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &photoURL, &phoneNumber, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFoundf("%s", notFoundMsg)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.PhotoURL = parseNullableString(photoURL)
	u.PhoneNumber = parseNullableString(phoneNumber)

	var parseErr error
	u.CreatedAt, parseErr = parseTimestamp(createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	u.UpdatedAt, parseErr = parseTimestamp(updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &u, nil
}
