package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/talentbank/docs"
	"github.com/GlebRadaev/talentbank/internal/config"
	donationhandlers "github.com/GlebRadaev/talentbank/internal/handlers/donation"
	pushhandlers "github.com/GlebRadaev/talentbank/internal/handlers/push"
	talenthandlers "github.com/GlebRadaev/talentbank/internal/handlers/talent"
	usershandlers "github.com/GlebRadaev/talentbank/internal/handlers/users"
	"github.com/GlebRadaev/talentbank/internal/metrics"
	"github.com/GlebRadaev/talentbank/internal/service"
	"github.com/GlebRadaev/talentbank/pkg/auth"
	"github.com/GlebRadaev/talentbank/pkg/ratelimit"
)

const apiPrefix = "/rest/v0.1"

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
type UsersHandler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UploadProfile(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateToken(w http.ResponseWriter, r *http.Request)
	PointHistory(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type TalentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	Completed(w http.ResponseWriter, r *http.Request)
	Request(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UserDonations(w http.ResponseWriter, r *http.Request)
	Donate(w http.ResponseWriter, r *http.Request)
	CreatePlace(w http.ResponseWriter, r *http.Request)
}

type PushHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
}

type Middleware func(http.Handler) http.Handler

type Handlers struct {
	UsersHandler    UsersHandler
	TalentHandler   TalentHandler
	DonationHandler DonationHandler
	PushHandler     PushHandler

	Auth  Middleware
	Admin Middleware
	Limit Middleware
}

func New(s *service.Services, cfg *config.Config, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		UsersHandler:    usershandlers.New(s.UserService, cfg.SessionTTL, cfg.MaxUploadBytes),
		TalentHandler:   talenthandlers.New(s.TalentService),
		DonationHandler: donationhandlers.New(s.DonationService),
		PushHandler:     pushhandlers.New(s.PushService),

		Auth:  auth.AuthMiddleware(jwtService, s.Sessions),
		Admin: auth.AdminMiddleware(&auth.HashService{}, cfg.AdminKeyHash),
		Limit: ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route(apiPrefix, func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.With(h.Limit).Post("/sign_up", h.UsersHandler.SignUp)
			r.With(h.Limit).Post("/login", h.UsersHandler.Login)
			r.With(h.Limit).Post("/push_noti", h.PushHandler.Send)
			r.Post("/logout", h.UsersHandler.Logout)
			r.Get("/profile/{user_id}", h.UsersHandler.GetProfile)

			r.Group(func(r chi.Router) {
				r.Use(h.Auth)
				r.Get("/me", h.UsersHandler.Me)
				r.Post("/profile", h.UsersHandler.UploadProfile)
				r.Get("/donations", h.DonationHandler.UserDonations)
				r.Get("/point_history", h.UsersHandler.PointHistory)
				r.Put("/token", h.UsersHandler.UpdateToken)
			})

			r.With(h.Admin).Delete("/user/{uuid}", h.UsersHandler.DeleteUser)
		})

		r.Route("/talent", func(r chi.Router) {
			r.Get("/donation_list", h.DonationHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(h.Auth)
				r.Get("/list", h.TalentHandler.List)
				r.Get("/my_requests", h.TalentHandler.MyRequests)
				r.Get("/completed", h.TalentHandler.Completed)
				r.Post("/req_donation", h.TalentHandler.Request)
				r.Post("/apply_donation", h.TalentHandler.Apply)
				r.Put("/donate_point", h.DonationHandler.Donate)
				r.Put("/{talent_id}", h.TalentHandler.Complete)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.Admin)
			r.Post("/places", h.DonationHandler.CreatePlace)
		})
	})

	return r
}
