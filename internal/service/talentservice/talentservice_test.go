package talentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/talentbank/internal/config"
	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/pg"
)

var fixedNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type mocks struct {
	talents      *MockTalentRepo
	applications *MockApplicationRepo
	balances     *MockBalanceRepo
	history      *MockHistoryRepo
	tx           *pg.MockTXManager
}

func NewMock(t *testing.T, policy Policy) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		talents:      NewMockTalentRepo(ctrl),
		applications: NewMockApplicationRepo(ctrl),
		balances:     NewMockBalanceRepo(ctrl),
		history:      NewMockHistoryRepo(ctrl),
		tx:           pg.NewMockTXManager(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(m.talents, m.applications, m.balances, m.history, m.tx, policy)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

var defaultPolicy = Policy{HistoryMode: config.HistoryModeBalance, OwnerOnlyCompletion: true}

func TestRequest(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	tests := []struct {
		name          string
		startAt       time.Time
		endAt         time.Time
		prepareMock   func(m *mocks)
		expectedError error
		expectErr     bool
	}{
		{
			name:    "Talent created with default points",
			startAt: start,
			endAt:   end,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().Create(gomock.Any(), &domain.Talent{
					UserID: 1, Title: "Tutoring", Contents: "math", Point: DefaultPoint, StartAt: start, EndAt: end,
				}).DoAndReturn(func(_ context.Context, talent *domain.Talent) (*domain.Talent, error) {
					talent.ID = 10
					return talent, nil
				})
			},
		},
		{
			name:          "End equal to start",
			startAt:       start,
			endAt:         start,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidRange,
		},
		{
			name:          "End before start",
			startAt:       end,
			endAt:         start,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidRange,
		},
		{
			name:    "Store failure",
			startAt: start,
			endAt:   end,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, defaultPolicy)
			tt.prepareMock(m)

			talent, err := service.Request(context.Background(), 1, "Tutoring", "math", tt.startAt, tt.endAt)
			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, talent)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, 10, talent.ID)
				assert.Equal(t, 100, talent.Point)
			}
		})
	}
}

func TestApply(t *testing.T) {
	openTalent := &domain.Talent{ID: 1, UserID: 1, Point: 100}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
		expectErr     bool
	}{
		{
			name: "Application recorded and talent marked applied",
			prepareMock: func(m *mocks) {
				gomock.InOrder(
					m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(openTalent, nil),
					m.applications.EXPECT().ExistsForTalent(gomock.Any(), 1).Return(false, nil),
					m.applications.EXPECT().Create(gomock.Any(), 1, 2).
						Return(&domain.Application{ID: 5, TalentID: 1, ContributorID: 2}, nil),
					m.talents.EXPECT().MarkApplied(gomock.Any(), 1).Return(nil),
				)
			},
		},
		{
			name: "Unknown talent",
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrTalentNotFound,
		},
		{
			name: "Requester applying to own talent",
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Talent{ID: 1, UserID: 2, Point: 100}, nil)
			},
			expectedError: ErrSelfDealing,
		},
		{
			name: "Second application is rejected",
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(openTalent, nil)
				m.applications.EXPECT().ExistsForTalent(gomock.Any(), 1).Return(true, nil)
			},
			expectedError: ErrAlreadyApplied,
		},
		{
			name: "Talent already flagged",
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Talent{ID: 1, UserID: 1, Point: 100, Completed: true}, nil)
				m.applications.EXPECT().ExistsForTalent(gomock.Any(), 1).Return(false, nil)
			},
			expectedError: ErrAlreadyApplied,
		},
		{
			name: "Concurrent insert hits unique index",
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(openTalent, nil)
				m.applications.EXPECT().ExistsForTalent(gomock.Any(), 1).Return(false, nil)
				m.applications.EXPECT().Create(gomock.Any(), 1, 2).Return(nil, domain.ErrAlreadyApplied)
			},
			expectedError: ErrAlreadyApplied,
		},
		{
			name: "Store failure",
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, defaultPolicy)
			tt.prepareMock(m)

			app, err := service.Apply(context.Background(), 1, 2)
			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, app)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, &domain.Application{ID: 5, TalentID: 1, ContributorID: 2}, app)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	talent := &domain.Talent{ID: 1, UserID: 1, Point: 100}
	pending := func() *domain.Application {
		return &domain.Application{ID: 5, TalentID: 1, ContributorID: 2}
	}
	done := fixedNow.Add(-time.Hour)

	tests := []struct {
		name          string
		policy        Policy
		completerID   int
		prepareMock   func(m *mocks)
		expectedError error
		expectErr     bool
	}{
		{
			name:        "Contributor credited and history records new balance",
			policy:      defaultPolicy,
			completerID: 1,
			prepareMock: func(m *mocks) {
				gomock.InOrder(
					m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil),
					m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).Return(pending(), nil),
					m.applications.EXPECT().MarkCompleted(gomock.Any(), 5, fixedNow).Return(nil),
					m.balances.EXPECT().AdjustBalance(gomock.Any(), 2, 100).Return(250, nil),
					m.history.EXPECT().Append(gomock.Any(), 2, 250, fixedNow).Return(&domain.PointHistory{}, nil),
				)
			},
		},
		{
			name:        "Delta history mode records the credited points",
			policy:      Policy{HistoryMode: config.HistoryModeDelta, OwnerOnlyCompletion: true},
			completerID: 1,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil)
				m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).Return(pending(), nil)
				m.applications.EXPECT().MarkCompleted(gomock.Any(), 5, fixedNow).Return(nil)
				m.balances.EXPECT().AdjustBalance(gomock.Any(), 2, 100).Return(250, nil)
				m.history.EXPECT().Append(gomock.Any(), 2, 100, fixedNow).Return(&domain.PointHistory{}, nil)
			},
		},
		{
			name:        "Third party allowed when owner-only is off",
			policy:      Policy{HistoryMode: config.HistoryModeBalance},
			completerID: 3,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil)
				m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).Return(pending(), nil)
				m.applications.EXPECT().MarkCompleted(gomock.Any(), 5, fixedNow).Return(nil)
				m.balances.EXPECT().AdjustBalance(gomock.Any(), 2, 100).Return(100, nil)
				m.history.EXPECT().Append(gomock.Any(), 2, 100, fixedNow).Return(&domain.PointHistory{}, nil)
			},
		},
		{
			name:        "Third party rejected when owner-only is on",
			policy:      defaultPolicy,
			completerID: 3,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil)
				m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).Return(pending(), nil)
			},
			expectedError: ErrNotRequester,
		},
		{
			name:        "Unknown talent",
			policy:      defaultPolicy,
			completerID: 1,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrTalentNotFound,
		},
		{
			name:        "No application",
			policy:      defaultPolicy,
			completerID: 1,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil)
				m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrApplicationNotFound,
		},
		{
			name:        "Contributor can't complete own application",
			policy:      defaultPolicy,
			completerID: 2,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil)
				m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).Return(pending(), nil)
			},
			expectedError: ErrSelfDealing,
		},
		{
			name:        "Second completion does not pay again",
			policy:      defaultPolicy,
			completerID: 1,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil)
				m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).
					Return(&domain.Application{ID: 5, TalentID: 1, ContributorID: 2, CompletedAt: &done}, nil)
			},
			expectedError: ErrAlreadyCompleted,
		},
		{
			name:        "Credit failure rolls back",
			policy:      defaultPolicy,
			completerID: 1,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil)
				m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).Return(pending(), nil)
				m.applications.EXPECT().MarkCompleted(gomock.Any(), 5, fixedNow).Return(nil)
				m.balances.EXPECT().AdjustBalance(gomock.Any(), 2, 100).Return(0, errors.New("db error"))
			},
			expectErr: true,
		},
		{
			name:        "History failure rolls back",
			policy:      defaultPolicy,
			completerID: 1,
			prepareMock: func(m *mocks) {
				m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(talent, nil)
				m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).Return(pending(), nil)
				m.applications.EXPECT().MarkCompleted(gomock.Any(), 5, fixedNow).Return(nil)
				m.balances.EXPECT().AdjustBalance(gomock.Any(), 2, 100).Return(100, nil)
				m.history.EXPECT().Append(gomock.Any(), 2, 100, fixedNow).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, tt.policy)
			tt.prepareMock(m)

			app, err := service.Complete(context.Background(), 1, tt.completerID)
			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, app)
			case tt.expectErr:
				assert.Error(t, err)
				assert.Nil(t, app)
			default:
				assert.NoError(t, err)
				assert.Equal(t, 2, app.ContributorID)
				assert.Equal(t, &fixedNow, app.CompletedAt)
			}
		})
	}
}

// A requests, B applies, A completes twice: B is paid once.
func TestRequestApplyCompleteScenario(t *testing.T) {
	service, m := NewMock(t, defaultPolicy)
	const alice, bob = 1, 2
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var (
		stored      domain.Talent
		application *domain.Application
		bobBalance  int
		historyLog  []int
	)

	m.talents.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, talent *domain.Talent) (*domain.Talent, error) {
			talent.ID = 1
			stored = *talent
			return talent, nil
		})
	m.talents.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
		DoAndReturn(func(context.Context, int) (*domain.Talent, error) {
			cp := stored
			return &cp, nil
		}).AnyTimes()
	m.talents.EXPECT().MarkApplied(gomock.Any(), 1).
		DoAndReturn(func(context.Context, int) error {
			stored.Completed = true
			return nil
		})
	m.applications.EXPECT().ExistsForTalent(gomock.Any(), 1).
		DoAndReturn(func(context.Context, int) (bool, error) {
			return application != nil, nil
		})
	m.applications.EXPECT().Create(gomock.Any(), 1, bob).
		DoAndReturn(func(_ context.Context, talentID, contributorID int) (*domain.Application, error) {
			application = &domain.Application{ID: 9, TalentID: talentID, ContributorID: contributorID}
			return application, nil
		})
	m.applications.EXPECT().FindByTalentIDForUpdate(gomock.Any(), 1).
		DoAndReturn(func(context.Context, int) (*domain.Application, error) {
			a := *application
			return &a, nil
		}).Times(2)
	m.applications.EXPECT().MarkCompleted(gomock.Any(), 9, fixedNow).
		DoAndReturn(func(_ context.Context, _ int, at time.Time) error {
			application.CompletedAt = &at
			return nil
		})
	m.balances.EXPECT().AdjustBalance(gomock.Any(), bob, 100).
		DoAndReturn(func(_ context.Context, _ int, delta int) (int, error) {
			bobBalance += delta
			return bobBalance, nil
		})
	m.history.EXPECT().Append(gomock.Any(), bob, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, userID, point int, at time.Time) (*domain.PointHistory, error) {
			historyLog = append(historyLog, point)
			return &domain.PointHistory{UserID: userID, Point: point, Date: at}, nil
		})

	_, err := service.Request(context.Background(), alice, "Tutoring", "math", start, start.Add(24*time.Hour))
	assert.NoError(t, err)

	_, err = service.Apply(context.Background(), 1, bob)
	assert.NoError(t, err)

	_, err = service.Complete(context.Background(), 1, alice)
	assert.NoError(t, err)
	assert.Equal(t, 100, bobBalance)
	assert.Equal(t, []int{100}, historyLog)

	_, err = service.Complete(context.Background(), 1, alice)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, 100, bobBalance)
	assert.Len(t, historyLog, 1)
}

func TestListings(t *testing.T) {
	service, m := NewMock(t, defaultPolicy)

	m.talents.EXPECT().ListOpen(gomock.Any()).Return([]domain.TalentListing{{Name: "Alice"}}, nil)
	open, err := service.ListOpen(context.Background())
	assert.NoError(t, err)
	assert.Len(t, open, 1)

	m.talents.EXPECT().ListByOwner(gomock.Any(), 1).Return(nil, errors.New("db error"))
	_, err = service.ListMine(context.Background(), 1)
	assert.Error(t, err)

	m.applications.EXPECT().ListCompletedByContributor(gomock.Any(), 2).
		Return([]domain.CompletedApplication{{Title: "Tutoring"}}, nil)
	completed, err := service.ListCompleted(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, "Tutoring", completed[0].Title)
}
