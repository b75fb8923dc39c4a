package service

import (
	"context"

	"github.com/GlebRadaev/talentbank/internal/config"
	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/handlers/donation"
	"github.com/GlebRadaev/talentbank/internal/handlers/push"
	"github.com/GlebRadaev/talentbank/internal/handlers/talent"
	"github.com/GlebRadaev/talentbank/internal/handlers/users"
	"github.com/GlebRadaev/talentbank/internal/pg"
	"github.com/GlebRadaev/talentbank/internal/repo"
	"github.com/GlebRadaev/talentbank/internal/service/donationservice"
	"github.com/GlebRadaev/talentbank/internal/service/pushservice"
	"github.com/GlebRadaev/talentbank/internal/service/talentservice"
	"github.com/GlebRadaev/talentbank/internal/service/userservice"
	"github.com/GlebRadaev/talentbank/pkg/auth"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=service
type PlaceSeeder interface {
	SeedPlaces(ctx context.Context, places []domain.DonationPlace) (int, error)
}

// Deps are the collaborators services need besides repositories.
type Deps struct {
	TXManager pg.TXManager
	Storage   userservice.Storage
	JWT       auth.JWTServiceInterface
	Sender    pushservice.Sender
}

type Services struct {
	UserService     users.Service
	Sessions        auth.UserChecker
	TalentService   talent.Service
	DonationService donation.Service
	PlaceSeeder     PlaceSeeder
	PushService     push.Service
}

func New(cfg *config.Config, repos *repo.Repositories, deps Deps) *Services {
	userService := userservice.New(
		repos.UserRepo,
		repos.TalentRepo,
		repos.HistoryRepo,
		deps.Storage,
		deps.JWT,
		deps.TXManager,
		cfg.SessionTTL,
	)
	talentService := talentservice.New(
		repos.TalentRepo,
		repos.ApplicationRepo,
		repos.UserRepo,
		repos.HistoryRepo,
		deps.TXManager,
		talentservice.Policy{
			HistoryMode:         cfg.PointHistoryMode,
			OwnerOnlyCompletion: cfg.OwnerOnlyCompletion,
		},
	)
	donationService := donationservice.New(repos.PlaceRepo, repos.ContributionRepo, repos.UserRepo, deps.TXManager)
	pushService := pushservice.New(repos.UserRepo, deps.Sender, cfg.PushConcurrency)

	return &Services{
		UserService:     userService,
		Sessions:        userService,
		TalentService:   talentService,
		DonationService: donationService,
		PlaceSeeder:     donationService,
		PushService:     pushService,
	}
}
