package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/talentbank/internal/domain"
)

var userColumns = []string{"id", "uuid", "name", "point", "profile", "push_token", "created_at", "roles"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByUUID(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	token := "fcm-token"

	tests := []struct {
		name      string
		uuid      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			uuid: "device-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "device-1", "Alice", 150, (*string)(nil), &token, created, []string{"user"})
				mock.ExpectQuery(regexp.QuoteMeta("WHERE u.uuid = $1 GROUP BY u.id")).
					WithArgs("device-1").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:        1,
				UUID:      "device-1",
				Name:      "Alice",
				Point:     150,
				PushToken: &token,
				CreatedAt: created,
				Roles:     []string{"user"},
			},
		},
		{
			name: "User not found",
			uuid: "unknown",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE u.uuid = $1 GROUP BY u.id")).
					WithArgs("unknown").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			uuid: "device-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE u.uuid = $1 GROUP BY u.id")).
					WithArgs("device-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUUID(context.Background(), tt.uuid)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	profile := "uploads/profile_202601020304_ab12cd34.png"

	rows := pgxmock.NewRows(userColumns).
		AddRow(7, "device-7", "Bob", 0, &profile, (*string)(nil), created, []string{"user", "admin"})
	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.id = $1 GROUP BY u.id")).
		WithArgs(7).
		WillReturnRows(rows)

	user, err := repo.FindByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, &domain.User{
		ID:        7,
		UUID:      "device-7",
		Name:      "Bob",
		Profile:   &profile,
		CreatedAt: created,
		Roles:     []string{"user", "admin"},
	}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{UUID: "device-1", Name: "Alice"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (uuid, name)`)).
					WithArgs("device-1", "Alice").
					WillReturnRows(pgxmock.NewRows([]string{"id", "point", "created_at"}).AddRow(1, 0, created))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_roles (user_id, role_id)`)).
					WithArgs(1, DefaultRole).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			result: &domain.User{
				ID:        1,
				UUID:      "device-1",
				Name:      "Alice",
				CreatedAt: created,
				Roles:     []string{DefaultRole},
			},
		},
		{
			name: "Insert fails",
			user: &domain.User{UUID: "device-1", Name: "Alice"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (uuid, name)`)).
					WithArgs("device-1", "Alice").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Role link fails",
			user: &domain.User{UUID: "device-2", Name: "Bob"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (uuid, name)`)).
					WithArgs("device-2", "Bob").
					WillReturnRows(pgxmock.NewRows([]string{"id", "point", "created_at"}).AddRow(2, 0, created))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_roles (user_id, role_id)`)).
					WithArgs(2, DefaultRole).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AdjustBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		userID      int
		delta       int
		mockSetup   func()
		expectedErr error
		expectErr   bool
		result      int
	}{
		{
			name:   "Credit",
			userID: 1,
			delta:  100,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT point FROM users WHERE id = $1 FOR UPDATE")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"point"}).AddRow(0))
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET point = $1 WHERE id = $2 RETURNING point")).
					WithArgs(100, 1).
					WillReturnRows(pgxmock.NewRows([]string{"point"}).AddRow(100))
			},
			result: 100,
		},
		{
			name:   "Debit down to zero",
			userID: 1,
			delta:  -150,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT point FROM users WHERE id = $1 FOR UPDATE")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"point"}).AddRow(150))
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET point = $1 WHERE id = $2 RETURNING point")).
					WithArgs(0, 1).
					WillReturnRows(pgxmock.NewRows([]string{"point"}).AddRow(0))
			},
			result: 0,
		},
		{
			name:   "Debit exceeding balance is rejected without update",
			userID: 1,
			delta:  -151,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT point FROM users WHERE id = $1 FOR UPDATE")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"point"}).AddRow(150))
			},
			expectedErr: domain.ErrInsufficientBalance,
			result:      150,
		},
		{
			name:   "Unknown user",
			userID: 99,
			delta:  10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT point FROM users WHERE id = $1 FOR UPDATE")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name:   "Update fails",
			userID: 1,
			delta:  10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT point FROM users WHERE id = $1 FOR UPDATE")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"point"}).AddRow(5))
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET point = $1 WHERE id = $2 RETURNING point")).
					WithArgs(15, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.AdjustBalance(context.Background(), tt.userID, tt.delta)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, tt.result, result)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Updates(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET push_token = $1 WHERE id = $2")).
		WithArgs("token-1", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdatePushToken(context.Background(), 1, "token-1"))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET profile = $1 WHERE id = $2")).
		WithArgs("uploads/p.png", 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.UpdateProfile(context.Background(), 2, "uploads/p.png"), domain.ErrUserNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(4).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), 4))

	assert.NoError(t, mock.ExpectationsWereMet())
}
