package push

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/talentbank/internal/dto"
	"github.com/GlebRadaev/talentbank/internal/service/pushservice"
	"github.com/GlebRadaev/talentbank/pkg/utils"
)

//go:generate mockgen -source=push.go -destination=mock_push.go -package=push
type Service interface {
	Broadcast(ctx context.Context, title, body string, to []int) error
}

type PushHandler struct {
	pushService Service
}

func New(pushService Service) *PushHandler {
	return &PushHandler{
		pushService: pushService,
	}
}

// Send godoc
//
//	@Summary		Send a push notification
//	@Description	Every recipient must exist and have a push token, otherwise nothing is sent.
//	@Tags			Users
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			title	formData	string	true	"Title"
//	@Param			body	formData	string	true	"Body"
//	@Param			to		formData	[]int	true	"Recipient user ids"	collectionFormat(multi)
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid form"
//	@Failure		404		{object}	utils.Response	"Unknown recipient or missing token"
//	@Failure		408		{object}	utils.Response	"Delivery failed"
//	@Failure		503		{object}	utils.Response	"Push disabled"
//	@Router			/users/push_noti [post]
func (h *PushHandler) Send(w http.ResponseWriter, r *http.Request) {
	title, err := utils.FormString(r, "title")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	body, err := utils.FormString(r, "body")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := utils.FormInts(r, "to")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.pushService.Broadcast(r.Context(), title, body, to); err != nil {
		switch {
		case errors.Is(err, pushservice.ErrInvalidPush):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pushservice.ErrRecipientNotFound), errors.Is(err, pushservice.ErrNoPushToken):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, pushservice.ErrDeliveryFailed), errors.Is(err, context.DeadlineExceeded):
			utils.RespondWithError(w, http.StatusRequestTimeout, "push delivery failed")
		case errors.Is(err, pushservice.ErrPushDisabled):
			utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "sent"})
}
