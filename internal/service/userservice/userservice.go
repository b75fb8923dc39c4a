package userservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/pg"
	"github.com/GlebRadaev/talentbank/internal/storage"
	"github.com/GlebRadaev/talentbank/pkg/auth"
	"github.com/GlebRadaev/talentbank/pkg/validate"
)

const profilePrefix = "profile"

var (
	ErrInvalidUser      = errors.New("uuid and name are required")
	ErrUserNotFound     = domain.ErrUserNotFound
	ErrUnsupportedImage = validate.ErrUnsupportedImage
	ErrProfileNotFound  = errors.New("profile image not found")
	ErrEmptyPushToken   = errors.New("push token is required")
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice
type UserRepo interface {
	FindByUUID(ctx context.Context, uuid string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, profile string) error
	UpdatePushToken(ctx context.Context, userID int, token string) error
	Delete(ctx context.Context, userID int) error
}

type TalentRepo interface {
	ReopenAppliedBy(ctx context.Context, contributorID int) (int64, error)
}

type HistoryRepo interface {
	ListByUser(ctx context.Context, userID int) ([]domain.PointHistory, error)
}

type Storage interface {
	Store(ctx context.Context, data io.Reader, filename string) (string, error)
	Delete(ctx context.Context, path string) error
	Open(ctx context.Context, path string) (io.ReadSeekCloser, error)
}

type Service struct {
	userRepo    UserRepo
	talentRepo  TalentRepo
	historyRepo HistoryRepo
	storage     Storage
	jwtService  auth.JWTServiceInterface
	txManager   pg.TXManager
	sessionTTL  time.Duration
	now         func() time.Time
}

func New(
	userRepo UserRepo,
	talentRepo TalentRepo,
	historyRepo HistoryRepo,
	storage Storage,
	jwtService auth.JWTServiceInterface,
	txManager pg.TXManager,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		userRepo:    userRepo,
		talentRepo:  talentRepo,
		historyRepo: historyRepo,
		storage:     storage,
		jwtService:  jwtService,
		txManager:   txManager,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// SignUp registers a device. A known uuid is signed in instead and created is false.
func (s *Service) SignUp(ctx context.Context, uuid, name string) (user *domain.User, created bool, err error) {
	uuid, name = strings.TrimSpace(uuid), strings.TrimSpace(name)
	if uuid == "" || name == "" {
		return nil, false, ErrInvalidUser
	}

	existing, err := s.userRepo.FindByUUID(ctx, uuid)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, false, err
	}
	if existing != nil {
		zap.L().Info("user already registered, signing in", zap.String("uuid", uuid))
		return existing, false, nil
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err = s.userRepo.Create(ctx, &domain.User{UUID: uuid, Name: name})
		return err
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, false, err
	}

	zap.L().Info("user signed up", zap.Int("user_id", user.ID), zap.String("uuid", uuid))
	return user, true, nil
}

// Login looks the user up by uuid only.
func (s *Service) Login(ctx context.Context, uuid string) (*domain.User, error) {
	uuid = strings.TrimSpace(uuid)
	if uuid == "" {
		return nil, ErrInvalidUser
	}
	user, err := s.userRepo.FindByUUID(ctx, uuid)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Info("login for unknown uuid", zap.String("uuid", uuid))
		return nil, ErrUserNotFound
	}
	zap.L().Info("user logged in", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) IssueSession(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, s.now().Add(s.sessionTTL))
	if err != nil {
		zap.L().Error("can't generate session token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Exists lets the auth middleware reject sessions of deleted users.
func (s *Service) Exists(ctx context.Context, userID int) (bool, error) {
	return s.userRepo.Exists(ctx, userID)
}

func (s *Service) Me(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UploadProfile stores a new profile image and removes the previous one.
func (s *Service) UploadProfile(ctx context.Context, userID int, filename string, data io.Reader) (string, error) {
	ext, err := validate.ImageExtension(filename)
	if err != nil {
		return "", err
	}

	user, err := s.Me(ctx, userID)
	if err != nil {
		return "", err
	}

	path, err := s.storage.Store(ctx, data, validate.UploadName(profilePrefix, ext, s.now()))
	if err != nil {
		zap.L().Error("can't store profile image", zap.Error(err))
		return "", fmt.Errorf("can't store profile image: %w", err)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, path); err != nil {
		if delErr := s.storage.Delete(ctx, path); delErr != nil {
			zap.L().Warn("can't remove orphaned profile image", zap.String("path", path), zap.Error(delErr))
		}
		return "", err
	}

	if user.Profile != nil && *user.Profile != "" {
		if err := s.storage.Delete(ctx, *user.Profile); err != nil {
			zap.L().Warn("can't remove previous profile image", zap.String("path", *user.Profile), zap.Error(err))
		}
	}

	zap.L().Info("profile image updated", zap.Int("user_id", userID), zap.String("path", path))
	return path, nil
}

// OpenProfile returns the stored image of a user and its file name. The caller closes it.
func (s *Service) OpenProfile(ctx context.Context, userID int) (io.ReadSeekCloser, string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, "", err
	}
	if user == nil || user.Profile == nil || *user.Profile == "" {
		return nil, "", ErrProfileNotFound
	}

	f, err := s.storage.Open(ctx, *user.Profile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidPath) {
			return nil, "", ErrProfileNotFound
		}
		zap.L().Error("can't open profile image", zap.Error(err))
		return nil, "", err
	}
	return f, *user.Profile, nil
}

func (s *Service) UpdatePushToken(ctx context.Context, userID int, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyPushToken
	}
	if err := s.userRepo.UpdatePushToken(ctx, userID, token); err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			zap.L().Error("can't update push token", zap.Error(err))
		}
		return err
	}
	zap.L().Info("push token updated", zap.Int("user_id", userID))
	return nil
}

func (s *Service) PointHistory(ctx context.Context, userID int) ([]domain.PointHistory, error) {
	history, err := s.historyRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't list point history", zap.Error(err))
		return nil, err
	}
	return history, nil
}

// DeleteByUUID removes the user and reopens the talents it applied to but never finished.
func (s *Service) DeleteByUUID(ctx context.Context, uuid string) error {
	user, err := s.userRepo.FindByUUID(ctx, uuid)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	var reopened int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		reopened, err = s.talentRepo.ReopenAppliedBy(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("can't reopen talents: %w", err)
		}
		return s.userRepo.Delete(ctx, user.ID)
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			zap.L().Error("can't delete user", zap.Error(err))
		}
		return err
	}

	if user.Profile != nil && *user.Profile != "" {
		if err := s.storage.Delete(ctx, *user.Profile); err != nil {
			zap.L().Warn("can't remove profile image", zap.String("path", *user.Profile), zap.Error(err))
		}
	}

	zap.L().Info("user deleted", zap.Int("user_id", user.ID), zap.Int64("reopened_talents", reopened))
	return nil
}
