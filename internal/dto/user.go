package dto

import (
	"path/filepath"

	"github.com/GlebRadaev/talentbank/internal/domain"
)

type UserResponseDTO struct {
	ID        int      `json:"id" example:"1"`
	UUID      string   `json:"uuid" example:"5f1c2a9e-device"`
	Name      string   `json:"name" example:"Kim"`
	Point     int      `json:"point" example:"150"`
	Profile   *string  `json:"profile" example:"profile_202605010930_1a2b3c4d.png"`
	Roles     []string `json:"roles,omitempty" example:"user"`
	CreatedAt int64    `json:"created_at" example:"1777627800"`
}

// SessionResponseDTO is returned by sign up and login together with the session cookie.
type SessionResponseDTO struct {
	UserResponseDTO
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

type ProfileResponseDTO struct {
	Profile string `json:"profile" example:"profile_202605010930_1a2b3c4d.png"`
}

type PointHistoryResponseDTO struct {
	Date  int64 `json:"date" example:"1777627800"`
	Point int   `json:"point" example:"200"`
}

// NewProfile keeps only the file name of a stored image.
func NewProfile(path string) ProfileResponseDTO {
	return ProfileResponseDTO{Profile: filepath.Base(path)}
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"ok"`
}

func NewUser(u *domain.User) UserResponseDTO {
	var profile *string
	if u.Profile != nil {
		name := filepath.Base(*u.Profile)
		profile = &name
	}
	return UserResponseDTO{
		ID:        u.ID,
		UUID:      u.UUID,
		Name:      u.Name,
		Point:     u.Point,
		Profile:   profile,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt.Unix(),
	}
}

func NewPointHistory(entries []domain.PointHistory) []PointHistoryResponseDTO {
	response := make([]PointHistoryResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = PointHistoryResponseDTO{Date: e.Date.Unix(), Point: e.Point}
	}
	return response
}
