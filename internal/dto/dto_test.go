package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/talentbank/internal/domain"
)

func TestNewOwnedTalents(t *testing.T) {
	at := time.Unix(1778319000, 0)
	talents := []domain.OwnedTalent{
		{Talent: domain.Talent{ID: 1, Completed: true, ReqAt: time.Unix(100, 0)}, CompletedAt: &at},
		{Talent: domain.Talent{ID: 2, ReqAt: time.Unix(200, 0)}},
	}

	response := NewOwnedTalents(talents)
	require.Len(t, response, 2)
	require.NotNil(t, response[0].CompletedAt)
	assert.Equal(t, int64(1778319000), *response[0].CompletedAt)
	assert.Nil(t, response[1].CompletedAt)
	assert.Equal(t, int64(200), response[1].ReqAt)
}

func TestUserDonationJSON(t *testing.T) {
	donations := []domain.UserDonation{{
		DonationPlace: domain.DonationPlace{ID: 3, Title: "Shelter", DueDate: time.Unix(1798675200, 0), TargetPoint: 200, OwnedPoint: 60},
		ContriPoint:   60,
		Date:          time.Unix(1777627800, 0),
	}}

	raw, err := json.Marshal(NewUserDonations(donations))
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id": 3, "title": "Shelter", "contents": "", "due_date": 1798675200,
		"target_point": 200, "owned_point": 60, "picture": null,
		"contri_point": 60, "date": 1777627800
	}]`, string(raw))
}

func TestNewTalentListings(t *testing.T) {
	listings := []domain.TalentListing{{Talent: domain.Talent{ID: 7, UserID: 1}, Name: "Kim"}}

	response := NewTalentListings(listings)
	assert.Equal(t, "Kim", response[0].Name)
	assert.Equal(t, 7, response[0].ID)
}

func TestNewPointHistory(t *testing.T) {
	response := NewPointHistory([]domain.PointHistory{{Point: 100, Date: time.Unix(10, 0)}})
	assert.Equal(t, []PointHistoryResponseDTO{{Date: 10, Point: 100}}, response)
}

func TestProfileHidesUploadDir(t *testing.T) {
	stored := "/var/lib/talentbank/uploads/profile_202605010930_1a2b3c4d.png"

	assert.Equal(t, "profile_202605010930_1a2b3c4d.png", NewProfile(stored).Profile)

	user := NewUser(&domain.User{ID: 1, Profile: &stored, CreatedAt: time.Unix(0, 0)})
	require.NotNil(t, user.Profile)
	assert.Equal(t, "profile_202605010930_1a2b3c4d.png", *user.Profile)

	assert.Nil(t, NewUser(&domain.User{ID: 2, CreatedAt: time.Unix(0, 0)}).Profile)
}
