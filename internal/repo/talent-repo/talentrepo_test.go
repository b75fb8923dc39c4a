package talentrepo

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

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

var talentColumns = []string{"id", "user_id", "title", "contents", "point", "completed", "req_at", "start_at", "end_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	reqAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Talent saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO talents (user_id, title, contents, point, start_at, end_at)")).
					WithArgs(1, "Tutoring", "math", 100, start, end).
					WillReturnRows(pgxmock.NewRows([]string{"id", "completed", "req_at"}).AddRow(5, false, reqAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO talents (user_id, title, contents, point, start_at, end_at)")).
					WithArgs(1, "Tutoring", "math", 100, start, end).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			talent := &domain.Talent{UserID: 1, Title: "Tutoring", Contents: "math", Point: 100, StartAt: start, EndAt: end}
			result, err := repo.Create(context.Background(), talent)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, result.ID)
				assert.Equal(t, reqAt, result.ReqAt)
				assert.False(t, result.Completed)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows(talentColumns).AddRow(5, 1, "Tutoring", "math", 100, false, at, at, at.Add(time.Hour)))
	talent, err := repo.FindByIDForUpdate(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Talent{
		ID: 5, UserID: 1, Title: "Tutoring", Contents: "math", Point: 100,
		ReqAt: at, StartAt: at, EndAt: at.Add(time.Hour),
	}, talent)

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(6).
		WillReturnError(pgx.ErrNoRows)
	talent, err = repo.FindByIDForUpdate(context.Background(), 6)
	assert.NoError(t, err)
	assert.Nil(t, talent)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOpen(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.TalentListing
	}{
		{
			name: "Only open talents with owner name",
			mockSetup: func() {
				rows := pgxmock.NewRows(append(talentColumns, "name")).
					AddRow(2, 1, "Cooking", "pasta", 100, false, at.Add(time.Hour), at, at.Add(time.Hour), "Alice").
					AddRow(1, 3, "Tutoring", "math", 100, false, at, at, at.Add(time.Hour), "Carol")
				mock.ExpectQuery(regexp.QuoteMeta("WHERE t.completed = FALSE")).WillReturnRows(rows)
			},
			result: []domain.TalentListing{
				{Talent: domain.Talent{ID: 2, UserID: 1, Title: "Cooking", Contents: "pasta", Point: 100, ReqAt: at.Add(time.Hour), StartAt: at, EndAt: at.Add(time.Hour)}, Name: "Alice"},
				{Talent: domain.Talent{ID: 1, UserID: 3, Title: "Tutoring", Contents: "math", Point: 100, ReqAt: at, StartAt: at, EndAt: at.Add(time.Hour)}, Name: "Carol"},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE t.completed = FALSE")).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListOpen(context.Background())
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

func TestRepository_ListByOwner(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	done := at.Add(3 * time.Hour)

	rows := pgxmock.NewRows(append(talentColumns, "completed_at")).
		AddRow(1, 1, "Tutoring", "math", 100, true, at, at, at.Add(time.Hour), &done).
		AddRow(2, 1, "Cooking", "pasta", 100, false, at.Add(time.Hour), at, at.Add(time.Hour), (*time.Time)(nil))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY t.completed DESC, t.req_at DESC")).
		WithArgs(1).
		WillReturnRows(rows)

	result, err := repo.ListByOwner(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, &done, result[0].CompletedAt)
	assert.Nil(t, result[1].CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkApplied(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Open talent flips to applied",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE talents SET completed = TRUE WHERE id = $1 AND completed = FALSE")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Already applied",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE talents SET completed = TRUE WHERE id = $1 AND completed = FALSE")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrAlreadyApplied,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE talents SET completed = TRUE WHERE id = $1 AND completed = FALSE")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkApplied(context.Background(), 1)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ReopenAppliedBy(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("WHERE contributor_id = $1 AND completed_at IS NULL")).
		WithArgs(4).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	n, err := repo.ReopenAppliedBy(context.Background(), 4)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
