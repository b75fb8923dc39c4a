package talent

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/dto"
	"github.com/GlebRadaev/talentbank/internal/service/talentservice"
	"github.com/GlebRadaev/talentbank/pkg/auth"
	"github.com/GlebRadaev/talentbank/pkg/utils"
)

//go:generate mockgen -source=talent.go -destination=mock_talent.go -package=talent
type Service interface {
	Request(ctx context.Context, userID int, title, contents string, startAt, endAt time.Time) (*domain.Talent, error)
	ListOpen(ctx context.Context) ([]domain.TalentListing, error)
	ListMine(ctx context.Context, userID int) ([]domain.OwnedTalent, error)
	ListCompleted(ctx context.Context, contributorID int) ([]domain.CompletedApplication, error)
	Apply(ctx context.Context, talentID, contributorID int) (*domain.Application, error)
	Complete(ctx context.Context, talentID, completerID int) (*domain.Application, error)
}

type TalentHandler struct {
	talentService Service
}

func New(talentService Service) *TalentHandler {
	return &TalentHandler{
		talentService: talentService,
	}
}

// List godoc
//
//	@Summary	Open talent requests
//	@Tags		Talent
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TalentResponseDTO	"Newest first"
//	@Failure	401	{object}	utils.Response			"User not authorized"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/talent/list [get]
func (h *TalentHandler) List(w http.ResponseWriter, r *http.Request) {
	talents, err := h.talentService.ListOpen(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTalentListings(talents))
}

// MyRequests godoc
//
//	@Summary	Talent requests of the current user
//	@Tags		Talent
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.OwnedTalentResponseDTO	"Completed first, then newest"
//	@Failure	401	{object}	utils.Response				"User not authorized"
//	@Failure	500	{object}	utils.Response				"Internal server error"
//	@Router		/talent/my_requests [get]
func (h *TalentHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	talents, err := h.talentService.ListMine(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOwnedTalents(talents))
}

// Completed godoc
//
//	@Summary	Applications the current user finished
//	@Tags		Talent
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.CompletedApplicationResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/talent/completed [get]
func (h *TalentHandler) Completed(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	apps, err := h.talentService.ListCompleted(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCompletedApplications(apps))
}

// Request godoc
//
//	@Summary	Request a talent donation
//	@Tags		Talent
//	@Security	BearerAuth
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		title		formData	string	true	"Title"
//	@Param		contents	formData	string	true	"Description"
//	@Param		start_at	formData	int		true	"Start, unix seconds"
//	@Param		end_at		formData	int		true	"End, unix seconds"
//	@Success	201			{object}	dto.TalentResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid form"
//	@Failure	401			{object}	utils.Response	"User not authorized"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/talent/req_donation [post]
func (h *TalentHandler) Request(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

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
	startAt, err := utils.FormInt64(r, "start_at")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	endAt, err := utils.FormInt64(r, "end_at")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	talent, err := h.talentService.Request(r.Context(), userID, title, contents, time.Unix(startAt, 0), time.Unix(endAt, 0))
	if err != nil {
		if errors.Is(err, talentservice.ErrInvalidRange) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTalent(talent))
}

// Apply godoc
//
//	@Summary	Apply to fulfil a talent request
//	@Tags		Talent
//	@Security	BearerAuth
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		talent_id	formData	int	true	"Talent id"
//	@Success	201			{object}	dto.ApplicationResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid form"
//	@Failure	401			{object}	utils.Response	"User not authorized"
//	@Failure	404			{object}	utils.Response	"Talent not found"
//	@Failure	409			{object}	utils.Response	"Already applied"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/talent/apply_donation [post]
func (h *TalentHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	talentID, err := utils.FormInt(r, "talent_id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.talentService.Apply(r.Context(), talentID, userID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewApplication(app))
}

// Complete godoc
//
//	@Summary		Complete a talent
//	@Description	Marks the application finished and credits the contributor with the talent's points.
//	@Tags			Talent
//	@Security		BearerAuth
//	@Produce		json
//	@Param			talent_id	path		int	true	"Talent id"
//	@Success		200			{object}	dto.ApplicationResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Only the requester can complete"
//	@Failure		404			{object}	utils.Response	"Talent or application not found"
//	@Failure		409			{object}	utils.Response	"Already completed or self-dealing"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/talent/{talent_id} [put]
func (h *TalentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	talentID, err := strconv.Atoi(chi.URLParam(r, "talent_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid talent id")
		return
	}

	app, err := h.talentService.Complete(r.Context(), talentID, userID)
	if err != nil {
		respondSettlementError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewApplication(app))
}

func respondSettlementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, talentservice.ErrTalentNotFound),
		errors.Is(err, talentservice.ErrApplicationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, talentservice.ErrAlreadyApplied),
		errors.Is(err, talentservice.ErrAlreadyCompleted),
		errors.Is(err, talentservice.ErrSelfDealing):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, talentservice.ErrNotRequester):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
