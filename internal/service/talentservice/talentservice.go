package talentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/internal/config"
	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/metrics"
	"github.com/GlebRadaev/talentbank/internal/pg"
)

// DefaultPoint is the reward for a completed talent request.
const DefaultPoint = 100

var (
	ErrInvalidRange        = errors.New("end_at must be after start_at")
	ErrTalentNotFound      = errors.New("talent not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSelfDealing         = errors.New("contributor can't complete own application")
	ErrNotRequester        = errors.New("only the requester can complete the talent")
	ErrOwnTalent           = fmt.Errorf("requester can't apply to own talent: %w", ErrSelfDealing)
	ErrAlreadyApplied      = domain.ErrAlreadyApplied
	ErrAlreadyCompleted    = domain.ErrAlreadyCompleted
)

//go:generate mockgen -source=talentservice.go -destination=mock_talentservice.go -package=talentservice
type TalentRepo interface {
	Create(ctx context.Context, talent *domain.Talent) (*domain.Talent, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Talent, error)
	ListOpen(ctx context.Context) ([]domain.TalentListing, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.OwnedTalent, error)
	MarkApplied(ctx context.Context, talentID int) error
}

type ApplicationRepo interface {
	Create(ctx context.Context, talentID, contributorID int) (*domain.Application, error)
	ExistsForTalent(ctx context.Context, talentID int) (bool, error)
	FindByTalentIDForUpdate(ctx context.Context, talentID int) (*domain.Application, error)
	MarkCompleted(ctx context.Context, id int, at time.Time) error
	ListCompletedByContributor(ctx context.Context, contributorID int) ([]domain.CompletedApplication, error)
}

type BalanceRepo interface {
	AdjustBalance(ctx context.Context, userID int, delta int) (int, error)
}

type HistoryRepo interface {
	Append(ctx context.Context, userID int, point int, at time.Time) (*domain.PointHistory, error)
}

// Policy holds the completion rules that are configurable per deployment.
type Policy struct {
	HistoryMode         string
	OwnerOnlyCompletion bool
}

type Service struct {
	talentRepo      TalentRepo
	applicationRepo ApplicationRepo
	balanceRepo     BalanceRepo
	historyRepo     HistoryRepo
	txManager       pg.TXManager
	policy          Policy
	now             func() time.Time
}

func New(
	talentRepo TalentRepo,
	applicationRepo ApplicationRepo,
	balanceRepo BalanceRepo,
	historyRepo HistoryRepo,
	txManager pg.TXManager,
	policy Policy,
) *Service {
	return &Service{
		talentRepo:      talentRepo,
		applicationRepo: applicationRepo,
		balanceRepo:     balanceRepo,
		historyRepo:     historyRepo,
		txManager:       txManager,
		policy:          policy,
		now:             time.Now,
	}
}

func (s *Service) Request(ctx context.Context, userID int, title, contents string, startAt, endAt time.Time) (*domain.Talent, error) {
	if !endAt.After(startAt) {
		return nil, ErrInvalidRange
	}

	talent, err := s.talentRepo.Create(ctx, &domain.Talent{
		UserID:   userID,
		Title:    title,
		Contents: contents,
		Point:    DefaultPoint,
		StartAt:  startAt,
		EndAt:    endAt,
	})
	if err != nil {
		zap.L().Error("failed to create talent", zap.Error(err))
		return nil, err
	}
	zap.L().Info("talent requested", zap.Int("talent_id", talent.ID), zap.Int("user_id", userID))
	return talent, nil
}

func (s *Service) ListOpen(ctx context.Context) ([]domain.TalentListing, error) {
	talents, err := s.talentRepo.ListOpen(ctx)
	if err != nil {
		zap.L().Error("failed to list open talents", zap.Error(err))
		return nil, err
	}
	return talents, nil
}

func (s *Service) ListMine(ctx context.Context, userID int) ([]domain.OwnedTalent, error) {
	talents, err := s.talentRepo.ListByOwner(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list user talents", zap.Error(err))
		return nil, err
	}
	return talents, nil
}

func (s *Service) ListCompleted(ctx context.Context, contributorID int) ([]domain.CompletedApplication, error) {
	apps, err := s.applicationRepo.ListCompletedByContributor(ctx, contributorID)
	if err != nil {
		zap.L().Error("failed to list completed applications", zap.Error(err))
		return nil, err
	}
	return apps, nil
}

// Apply registers contributorID as the single contributor of the talent.
func (s *Service) Apply(ctx context.Context, talentID, contributorID int) (*domain.Application, error) {
	var app *domain.Application
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		talent, err := s.talentRepo.FindByIDForUpdate(ctx, talentID)
		if err != nil {
			return fmt.Errorf("can't load talent: %w", err)
		}
		if talent == nil {
			return ErrTalentNotFound
		}
		if talent.UserID == contributorID {
			return ErrOwnTalent
		}

		exists, err := s.applicationRepo.ExistsForTalent(ctx, talentID)
		if err != nil {
			return fmt.Errorf("can't check application: %w", err)
		}
		if exists || talent.Completed {
			return ErrAlreadyApplied
		}

		app, err = s.applicationRepo.Create(ctx, talentID, contributorID)
		if err != nil {
			return err
		}
		return s.talentRepo.MarkApplied(ctx, talentID)
	})
	metrics.RecordSettlement(metrics.SettlementApply, 0, err)
	if err != nil {
		logFailure("apply", err)
		return nil, err
	}

	zap.L().Info("talent applied", zap.Int("talent_id", talentID), zap.Int("contributor_id", contributorID))
	return app, nil
}

// Complete confirms the application of a talent and pays the contributor exactly once.
func (s *Service) Complete(ctx context.Context, talentID, completerID int) (*domain.Application, error) {
	var (
		app    *domain.Application
		credit int
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		talent, err := s.talentRepo.FindByIDForUpdate(ctx, talentID)
		if err != nil {
			return fmt.Errorf("can't load talent: %w", err)
		}
		if talent == nil {
			return ErrTalentNotFound
		}

		app, err = s.applicationRepo.FindByTalentIDForUpdate(ctx, talentID)
		if err != nil {
			return fmt.Errorf("can't load application: %w", err)
		}
		if app == nil {
			return ErrApplicationNotFound
		}
		if app.ContributorID == completerID {
			return ErrSelfDealing
		}
		if app.CompletedAt != nil {
			return ErrAlreadyCompleted
		}
		if s.policy.OwnerOnlyCompletion && talent.UserID != completerID {
			return ErrNotRequester
		}

		now := s.now()
		if err := s.applicationRepo.MarkCompleted(ctx, app.ID, now); err != nil {
			return err
		}
		app.CompletedAt = &now

		balance, err := s.balanceRepo.AdjustBalance(ctx, app.ContributorID, talent.Point)
		if err != nil {
			return fmt.Errorf("can't credit contributor: %w", err)
		}

		entry := balance
		if s.policy.HistoryMode == config.HistoryModeDelta {
			entry = talent.Point
		}
		if _, err := s.historyRepo.Append(ctx, app.ContributorID, entry, now); err != nil {
			return fmt.Errorf("can't append point history: %w", err)
		}
		credit = talent.Point
		return nil
	})
	metrics.RecordSettlement(metrics.SettlementComplete, credit, err)
	if err != nil {
		logFailure("complete", err)
		return nil, err
	}

	zap.L().Info("talent completed",
		zap.Int("talent_id", talentID),
		zap.Int("contributor_id", app.ContributorID),
		zap.Int("point", credit),
	)
	return app, nil
}

func logFailure(op string, err error) {
	switch {
	case errors.Is(err, ErrTalentNotFound),
		errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrSelfDealing),
		errors.Is(err, ErrNotRequester),
		errors.Is(err, ErrAlreadyApplied),
		errors.Is(err, ErrAlreadyCompleted):
		zap.L().Info("talent "+op+" rejected", zap.Error(err))
	default:
		zap.L().Error("talent "+op+" failed", zap.Error(err))
	}
}
