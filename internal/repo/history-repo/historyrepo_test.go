package historyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	insert := regexp.QuoteMeta("INSERT INTO point_histories (user_id, date, point) VALUES ($1, $2, $3) RETURNING id")

	mock.ExpectQuery(insert).WithArgs(1, at, 100).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4))
	entry, err := repo.Append(context.Background(), 1, 100, at)
	assert.NoError(t, err)
	assert.Equal(t, &domain.PointHistory{ID: 4, UserID: 1, Date: at, Point: 100}, entry)

	mock.ExpectQuery(insert).WithArgs(1, at, 100).
		WillReturnError(errors.New("database error"))
	entry, err = repo.Append(context.Background(), 1, 100, at)
	assert.Error(t, err)
	assert.Nil(t, entry)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	first := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.PointHistory
	}{
		{
			name: "Entries oldest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "date", "point"}).
					AddRow(1, 1, first, 100).
					AddRow(2, 1, second, 200)
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date ASC")).WithArgs(1).WillReturnRows(rows)
			},
			result: []domain.PointHistory{
				{ID: 1, UserID: 1, Date: first, Point: 100},
				{ID: 2, UserID: 1, Date: second, Point: 200},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date ASC")).WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByUser(context.Background(), 1)
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
