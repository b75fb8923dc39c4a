package users

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/dto"
	"github.com/GlebRadaev/talentbank/internal/service/userservice"
	"github.com/GlebRadaev/talentbank/pkg/auth"
	"github.com/GlebRadaev/talentbank/pkg/utils"
)

const profileField = "profile"

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users
type Service interface {
	SignUp(ctx context.Context, uuid, name string) (*domain.User, bool, error)
	Login(ctx context.Context, uuid string) (*domain.User, error)
	IssueSession(userID int) (string, error)
	Me(ctx context.Context, userID int) (*domain.User, error)
	UploadProfile(ctx context.Context, userID int, filename string, data io.Reader) (string, error)
	OpenProfile(ctx context.Context, userID int) (io.ReadSeekCloser, string, error)
	UpdatePushToken(ctx context.Context, userID int, token string) error
	PointHistory(ctx context.Context, userID int) ([]domain.PointHistory, error)
	DeleteByUUID(ctx context.Context, uuid string) error
}

type UsersHandler struct {
	userService    Service
	sessionTTL     time.Duration
	maxUploadBytes int64
}

func New(userService Service, sessionTTL time.Duration, maxUploadBytes int64) *UsersHandler {
	return &UsersHandler{
		userService:    userService,
		sessionTTL:     sessionTTL,
		maxUploadBytes: maxUploadBytes,
	}
}

// SignUp godoc
//
//	@Summary		Register a device
//	@Description	Create a user for the device uuid. A known uuid is signed in instead.
//	@Tags			Users
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			uuid	formData	string	true	"Device identifier"
//	@Param			name	formData	string	true	"Display name"
//	@Success		201		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing uuid or name"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/sign_up [post]
func (h *UsersHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	uuid, err := utils.FormString(r, "uuid")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	name, err := utils.FormString(r, "name")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, _, err := h.userService.SignUp(r.Context(), uuid, name)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidUser) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.startSession(w, user, http.StatusCreated)
}

// Login godoc
//
//	@Summary		Sign in a device
//	@Tags			Users
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			uuid	formData	string	true	"Device identifier"
//	@Param			name	formData	string	false	"Display name, ignored"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing uuid"
//	@Failure		404		{object}	utils.Response	"Unknown uuid"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/login [post]
func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	uuid, err := utils.FormString(r, "uuid")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Login(r.Context(), uuid)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, userservice.ErrInvalidUser):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	h.startSession(w, user, http.StatusOK)
}

func (h *UsersHandler) startSession(w http.ResponseWriter, user *domain.User, status int) {
	token, err := h.userService.IssueSession(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, status, dto.SessionResponseDTO{
		UserResponseDTO: dto.NewUser(user),
		Token:           token,
	})
}

// Logout godoc
//
//	@Summary	Clear the session cookie
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	dto.MessageResponseDTO
//	@Router		/users/logout [post]
func (h *UsersHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "logged out"})
}

// Me godoc
//
//	@Summary	Current user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/users/me [get]
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.userService.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUser(user))
}

// UploadProfile godoc
//
//	@Summary		Upload a profile image
//	@Description	Accepts png, jpg, jpeg or gif. The previous image is removed.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			profile	formData	file	true	"Image file"
//	@Success		201		{object}	dto.ProfileResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing or unsupported file"
//	@Failure		413		{object}	utils.Response	"File too large"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/profile [post]
func (h *UsersHandler) UploadProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	file, header, err := r.FormFile(profileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondWithError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("profile file exceeds %d bytes", tooLarge.Limit))
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "profile file is required")
		return
	}
	defer file.Close()

	path, err := h.userService.UploadProfile(r.Context(), userID, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUnsupportedImage):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewProfile(path))
}

// GetProfile godoc
//
//	@Summary	Profile image of a user
//	@Tags		Users
//	@Produce	image/png,image/jpeg,image/gif
//	@Param		user_id	path	int	true	"User id"
//	@Success	200
//	@Failure	404	{object}	utils.Response	"No profile image"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/users/profile/{user_id} [get]
func (h *UsersHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "user_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, userservice.ErrProfileNotFound.Error())
		return
	}

	file, name, err := h.userService.OpenProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer file.Close()

	http.ServeContent(w, r, filepath.Base(name), time.Time{}, file)
}

// UpdateToken godoc
//
//	@Summary	Store the push token of the device
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		token	formData	string	true	"FCM registration token"
//	@Success	200		{object}	dto.MessageResponseDTO
//	@Failure	400		{object}	utils.Response	"Missing token"
//	@Failure	401		{object}	utils.Response	"User not authorized"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/users/token [put]
func (h *UsersHandler) UpdateToken(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	token, err := utils.FormString(r, "token")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.UpdatePushToken(r.Context(), userID, token); err != nil {
		switch {
		case errors.Is(err, userservice.ErrEmptyPushToken):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "token updated"})
}

// PointHistory godoc
//
//	@Summary	Point history of the current user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.PointHistoryResponseDTO	"Sorted by date ascending"
//	@Failure	401	{object}	utils.Response				"User not authorized"
//	@Failure	500	{object}	utils.Response				"Internal server error"
//	@Router		/users/point_history [get]
func (h *UsersHandler) PointHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	history, err := h.userService.PointHistory(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPointHistory(history))
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Removes the user and reopens talents it applied to but did not finish.
//	@Tags			Admin
//	@Security		AdminKey
//	@Produce		json
//	@Param			uuid	path		string	true	"Device identifier"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin key required"
//	@Failure		404		{object}	utils.Response	"Unknown uuid"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/user/{uuid} [delete]
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	uuid := chi.URLParam(r, "uuid")

	if err := h.userService.DeleteByUUID(r.Context(), uuid); err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "user deleted"})
}
