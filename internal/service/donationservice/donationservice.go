package donationservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/metrics"
	"github.com/GlebRadaev/talentbank/internal/pg"
)

// DefaultTargetPoint is used when a place is created without a target.
const DefaultTargetPoint = 200

var (
	ErrInvalidPoint        = errors.New("point must be positive")
	ErrInvalidPlace        = errors.New("invalid donation place")
	ErrPlaceNotFound       = errors.New("donation place not found")
	ErrInsufficientBalance = domain.ErrInsufficientBalance
)

//go:generate mockgen -source=donationservice.go -destination=mock_donationservice.go -package=donationservice
type PlaceRepo interface {
	Create(ctx context.Context, place *domain.DonationPlace) (*domain.DonationPlace, error)
	CreateIfAbsent(ctx context.Context, place *domain.DonationPlace) (bool, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.DonationPlace, error)
	ListOpen(ctx context.Context, now time.Time) ([]domain.DonationPlace, error)
	AddOwned(ctx context.Context, placeID int, points int) (int, error)
}

type ContributionRepo interface {
	Accumulate(ctx context.Context, userID, placeID, points int, at time.Time) (*domain.Contribution, error)
	ListByUser(ctx context.Context, userID int) ([]domain.UserDonation, error)
}

type BalanceRepo interface {
	AdjustBalance(ctx context.Context, userID int, delta int) (int, error)
}

type Service struct {
	placeRepo        PlaceRepo
	contributionRepo ContributionRepo
	balanceRepo      BalanceRepo
	txManager        pg.TXManager
	now              func() time.Time
}

func New(placeRepo PlaceRepo, contributionRepo ContributionRepo, balanceRepo BalanceRepo, txManager pg.TXManager) *Service {
	return &Service{
		placeRepo:        placeRepo,
		contributionRepo: contributionRepo,
		balanceRepo:      balanceRepo,
		txManager:        txManager,
		now:              time.Now,
	}
}

// ListOpen returns places whose due date has not passed and whose target is not reached.
func (s *Service) ListOpen(ctx context.Context) ([]domain.DonationPlace, error) {
	places, err := s.placeRepo.ListOpen(ctx, s.now())
	if err != nil {
		zap.L().Error("failed to list donation places", zap.Error(err))
		return nil, err
	}
	return places, nil
}

func (s *Service) ListUserDonations(ctx context.Context, userID int) ([]domain.UserDonation, error) {
	donations, err := s.contributionRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list user donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

// Donate moves points from the user to the place. Nothing is written when the balance is short.
func (s *Service) Donate(ctx context.Context, userID, placeID, points int) (*domain.Contribution, error) {
	if points <= 0 {
		return nil, ErrInvalidPoint
	}

	var contribution *domain.Contribution
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		place, err := s.placeRepo.FindByIDForUpdate(ctx, placeID)
		if err != nil {
			return fmt.Errorf("can't load donation place: %w", err)
		}
		if place == nil {
			return ErrPlaceNotFound
		}

		if _, err := s.balanceRepo.AdjustBalance(ctx, userID, -points); err != nil {
			return err
		}
		if _, err := s.placeRepo.AddOwned(ctx, placeID, points); err != nil {
			return fmt.Errorf("can't credit donation place: %w", err)
		}

		contribution, err = s.contributionRepo.Accumulate(ctx, userID, placeID, points, s.now())
		if err != nil {
			return fmt.Errorf("can't record contribution: %w", err)
		}
		return nil
	})
	metrics.RecordSettlement(metrics.SettlementDonate, points, err)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlaceNotFound), errors.Is(err, ErrInsufficientBalance), errors.Is(err, domain.ErrUserNotFound):
			zap.L().Info("donation rejected", zap.Int("user_id", userID), zap.Int("place_id", placeID), zap.Error(err))
		default:
			zap.L().Error("donation failed", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("points donated", zap.Int("user_id", userID), zap.Int("place_id", placeID), zap.Int("point", points))
	return contribution, nil
}

func validatePlace(place *domain.DonationPlace) error {
	place.Title = strings.TrimSpace(place.Title)
	place.Contents = strings.TrimSpace(place.Contents)
	if place.TargetPoint == 0 {
		place.TargetPoint = DefaultTargetPoint
	}
	if place.Title == "" || place.Contents == "" || place.DueDate.IsZero() || place.TargetPoint < 0 {
		return ErrInvalidPlace
	}
	return nil
}

func (s *Service) CreatePlace(ctx context.Context, place *domain.DonationPlace) (*domain.DonationPlace, error) {
	if err := validatePlace(place); err != nil {
		return nil, err
	}
	created, err := s.placeRepo.Create(ctx, place)
	if err != nil {
		zap.L().Error("failed to create donation place", zap.Error(err))
		return nil, err
	}
	zap.L().Info("donation place created", zap.Int("place_id", created.ID), zap.String("title", created.Title))
	return created, nil
}

// LoadPlaces decodes a YAML list of donation places.
func LoadPlaces(r io.Reader) ([]domain.DonationPlace, error) {
	var places []domain.DonationPlace
	if err := yaml.NewDecoder(r).Decode(&places); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't decode donation places: %w", err)
	}
	return places, nil
}

// SeedPlaces inserts places whose titles are not stored yet and reports how many were added.
func (s *Service) SeedPlaces(ctx context.Context, places []domain.DonationPlace) (int, error) {
	added := 0
	for i := range places {
		place := places[i]
		if err := validatePlace(&place); err != nil {
			return added, fmt.Errorf("place %d (%q): %w", i, place.Title, err)
		}
		created, err := s.placeRepo.CreateIfAbsent(ctx, &place)
		if err != nil {
			return added, err
		}
		if created {
			added++
		}
	}
	zap.L().Info("donation places seeded", zap.Int("added", added), zap.Int("total", len(places)))
	return added, nil
}
