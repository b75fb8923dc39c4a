package donation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/dto"
	"github.com/GlebRadaev/talentbank/internal/service/donationservice"
	"github.com/GlebRadaev/talentbank/pkg/auth"
	"github.com/GlebRadaev/talentbank/pkg/utils"
)

//go:generate mockgen -source=donation.go -destination=mock_donation.go -package=donation
type Service interface {
	ListOpen(ctx context.Context) ([]domain.DonationPlace, error)
	ListUserDonations(ctx context.Context, userID int) ([]domain.UserDonation, error)
	Donate(ctx context.Context, userID, placeID, points int) (*domain.Contribution, error)
	CreatePlace(ctx context.Context, place *domain.DonationPlace) (*domain.DonationPlace, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// List godoc
//
//	@Summary		Open donation places
//	@Description	Places whose due date has not passed and whose target is not reached yet.
//	@Tags			Donation
//	@Produce		json
//	@Success		200	{array}		dto.DonationPlaceResponseDTO	"Closest due date first"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/talent/donation_list [get]
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.donationService.ListOpen(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDonationPlaces(places))
}

// UserDonations godoc
//
//	@Summary	Places the current user donated to
//	@Tags		Donation
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.UserDonationResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/users/donations [get]
func (h *DonationHandler) UserDonations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	donations, err := h.donationService.ListUserDonations(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDonations(donations))
}

// Donate godoc
//
//	@Summary	Donate points to a place
//	@Tags		Donation
//	@Security	BearerAuth
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		place_id	formData	int	true	"Donation place id"
//	@Param		point		formData	int	true	"Points to donate"
//	@Success	200			{object}	dto.ContributionResponseDTO	"Accumulated contribution"
//	@Failure	400			{object}	utils.Response				"Invalid form or non-positive point"
//	@Failure	401			{object}	utils.Response				"User not authorized"
//	@Failure	404			{object}	utils.Response				"Place not found"
//	@Failure	422			{object}	utils.Response				"Insufficient point"
//	@Failure	500			{object}	utils.Response				"Internal server error"
//	@Router		/talent/donate_point [put]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	placeID, err := utils.FormInt(r, "place_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	points, err := utils.FormInt(r, "point")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	contribution, err := h.donationService.Donate(r.Context(), userID, placeID, points)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrInvalidPoint):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, donationservice.ErrPlaceNotFound), errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewContribution(contribution))
}

// CreatePlace godoc
//
//	@Summary	Create a donation place
//	@Tags		Admin
//	@Security	AdminKey
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		title			formData	string	true	"Title"
//	@Param		contents		formData	string	true	"Description"
//	@Param		due_date		formData	int		true	"Due date, unix seconds"
//	@Param		target_point	formData	int		false	"Target, defaults to 200"
//	@Param		picture			formData	string	false	"Picture path"
//	@Success	201				{object}	dto.DonationPlaceResponseDTO
//	@Failure	400				{object}	utils.Response	"Invalid form"
//	@Failure	403				{object}	utils.Response	"Admin key required"
//	@Failure	500				{object}	utils.Response	"Internal server error"
//	@Router		/admin/places [post]
func (h *DonationHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	title, err := utils.FormString(r, "title")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	contents, err := utils.FormString(r, "contents")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	dueDate, err := utils.FormInt64(r, "due_date")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	place := &domain.DonationPlace{
		Title:    title,
		Contents: contents,
		DueDate:  time.Unix(dueDate, 0),
	}
	if strings.TrimSpace(r.FormValue("target_point")) != "" {
		if place.TargetPoint, err = utils.FormInt(r, "target_point"); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if picture, err := utils.FormString(r, "picture"); err == nil {
		place.Picture = &picture
	}

	created, err := h.donationService.CreatePlace(r.Context(), place)
	if err != nil {
		if errors.Is(err, donationservice.ErrInvalidPlace) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDonationPlace(created))
}
