package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	selectUser := regexp.QuoteMeta("SELECT username, password_hash, created_at FROM users WHERE username = $1")
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantUser  bool
		wantError bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectUser).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash", "created_at"}).
						AddRow("alice", "hash", created))
			},
			wantUser: true,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectUser).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash", "created_at"}))
			},
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectUser).
					WithArgs("alice").
					WillReturnError(errors.New("connection reset"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			repo := NewUserReadRepository(db, nil)
			user, err := repo.GetByUsername(context.Background(), "alice")

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantUser {
				if assert.NotNil(t, user) {
					assert.Equal(t, "alice", user.Username)
					assert.Equal(t, "hash", user.PasswordHash)
					assert.True(t, created.Equal(user.CreatedAt))
				}
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_Save(t *testing.T) {
	insertUser := regexp.QuoteMeta("INSERT INTO users (username, password_hash, created_at)")

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "inserted"},
		{
			name:    "unique violation",
			execErr: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			wantErr: ErrDuplicateUsername,
		},
		{
			name:    "other error",
			execErr: errors.New("disk full"),
			wantErr: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			exp := mock.ExpectExec(insertUser).WithArgs("alice", "hash")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			repo := NewUserWriteRepository(db, nil)
			err := repo.Save(context.Background(), "alice", "hash")

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_Save_UsesRequestTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	assert.NoError(t, err)

	repo := NewUserWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	assert.NoError(t, repo.Save(context.Background(), "alice", "hash"))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
