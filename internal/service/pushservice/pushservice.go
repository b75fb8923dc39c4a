package pushservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/metrics"
	"github.com/GlebRadaev/talentbank/pkg/clients"
)

const defaultConcurrency = 4

var (
	ErrPushDisabled      = errors.New("push notifications are disabled")
	ErrInvalidPush       = errors.New("title, body and at least one recipient are required")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrNoPushToken       = errors.New("recipient has no push token")
	ErrDeliveryFailed    = clients.ErrDeliveryFailed
)

//go:generate mockgen -source=pushservice.go -destination=mock_pushservice.go -package=pushservice
type Sender interface {
	Send(ctx context.Context, token, title, body string) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	userRepo    UserRepo
	sender      Sender
	concurrency int
}

// New returns a push service. A nil sender disables delivery.
func New(userRepo UserRepo, sender Sender, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Service{
		userRepo:    userRepo,
		sender:      sender,
		concurrency: concurrency,
	}
}

func (s *Service) Enabled() bool {
	return s.sender != nil
}

// Broadcast resolves every recipient's token first, then sends to all of them concurrently.
func (s *Service) Broadcast(ctx context.Context, title, body string, to []int) error {
	if !s.Enabled() {
		return ErrPushDisabled
	}
	title, body = strings.TrimSpace(title), strings.TrimSpace(body)
	if title == "" || body == "" || len(to) == 0 {
		return ErrInvalidPush
	}

	tokens, err := s.resolveTokens(ctx, to)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for userID, token := range tokens {
		g.Go(func() error {
			err := s.sender.Send(gctx, token, title, body)
			metrics.RecordPush(err)
			if err == nil {
				return nil
			}
			if errors.Is(err, clients.ErrInvalidToken) {
				return fmt.Errorf("%w: user %d", ErrNoPushToken, userID)
			}
			return fmt.Errorf("user %d: %w", userID, err)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Warn("push broadcast failed", zap.Error(err))
		return err
	}

	zap.L().Info("push broadcast delivered", zap.Int("recipients", len(tokens)))
	return nil
}

func (s *Service) resolveTokens(ctx context.Context, to []int) (map[int]string, error) {
	tokens := make(map[int]string, len(to))
	for _, userID := range to {
		if _, ok := tokens[userID]; ok {
			continue
		}
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			zap.L().Error("can't load push recipient", zap.Int("user_id", userID), zap.Error(err))
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: user %d", ErrRecipientNotFound, userID)
		}
		if user.PushToken == nil || *user.PushToken == "" {
			return nil, fmt.Errorf("%w: user %d", ErrNoPushToken, userID)
		}
		tokens[userID] = *user.PushToken
	}
	return tokens, nil
}
