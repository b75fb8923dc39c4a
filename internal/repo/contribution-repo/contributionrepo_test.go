package contributionrepo

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

func TestRepository_Accumulate(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	upsert := regexp.QuoteMeta("DO UPDATE SET point = user_places.point + EXCLUDED.point, date = EXCLUDED.date")

	tests := []struct {
		name      string
		points    int
		mockSetup func()
		expectErr bool
		result    *domain.Contribution
	}{
		{
			name:   "First donation creates the row",
			points: 30,
			mockSetup: func() {
				mock.ExpectQuery(upsert).WithArgs(1, 3, 30, at).
					WillReturnRows(pgxmock.NewRows([]string{"id", "point", "date"}).AddRow(7, 30, at))
			},
			result: &domain.Contribution{ID: 7, UserID: 1, PlaceID: 3, Point: 30, Date: at},
		},
		{
			name:   "Second donation accumulates into the same row",
			points: 20,
			mockSetup: func() {
				mock.ExpectQuery(upsert).WithArgs(1, 3, 20, at).
					WillReturnRows(pgxmock.NewRows([]string{"id", "point", "date"}).AddRow(7, 50, at))
			},
			result: &domain.Contribution{ID: 7, UserID: 1, PlaceID: 3, Point: 50, Date: at},
		},
		{
			name:   "Database error",
			points: 20,
			mockSetup: func() {
				mock.ExpectQuery(upsert).WithArgs(1, 3, 20, at).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Accumulate(context.Background(), 1, 3, tt.points, at)
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

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	due := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "title", "contents", "due_date", "target_point", "owned_point", "picture", "point", "date"}).
		AddRow(3, "Shelter", "food", due, 200, 80, (*string)(nil), 50, at)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE up.user_id = $1")).
		WithArgs(1).
		WillReturnRows(rows)

	result, err := repo.ListByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []domain.UserDonation{{
		DonationPlace: domain.DonationPlace{ID: 3, Title: "Shelter", Contents: "food", DueDate: due, TargetPoint: 200, OwnedPoint: 80},
		ContriPoint:   50,
		Date:          at,
	}}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
