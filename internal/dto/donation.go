package dto

import "github.com/GlebRadaev/talentbank/internal/domain"

type DonationPlaceResponseDTO struct {
	ID          int     `json:"id" example:"3"`
	Title       string  `json:"title" example:"Animal shelter"`
	Contents    string  `json:"contents" example:"Food for the winter"`
	DueDate     int64   `json:"due_date" example:"1798675200"`
	TargetPoint int     `json:"target_point" example:"200"`
	OwnedPoint  int     `json:"owned_point" example:"60"`
	Picture     *string `json:"picture" example:"shelter.png"`
}

type UserDonationResponseDTO struct {
	DonationPlaceResponseDTO
	ContriPoint int   `json:"contri_point" example:"60"`
	Date        int64 `json:"date" example:"1777627800"`
}

type ContributionResponseDTO struct {
	PlaceID int   `json:"place_id" example:"3"`
	Point   int   `json:"point" example:"60"`
	Date    int64 `json:"date" example:"1777627800"`
}

func NewDonationPlace(p *domain.DonationPlace) DonationPlaceResponseDTO {
	return DonationPlaceResponseDTO{
		ID:          p.ID,
		Title:       p.Title,
		Contents:    p.Contents,
		DueDate:     p.DueDate.Unix(),
		TargetPoint: p.TargetPoint,
		OwnedPoint:  p.OwnedPoint,
		Picture:     p.Picture,
	}
}

func NewDonationPlaces(places []domain.DonationPlace) []DonationPlaceResponseDTO {
	response := make([]DonationPlaceResponseDTO, len(places))
	for i := range places {
		response[i] = NewDonationPlace(&places[i])
	}
	return response
}

func NewUserDonations(donations []domain.UserDonation) []UserDonationResponseDTO {
	response := make([]UserDonationResponseDTO, len(donations))
	for i := range donations {
		response[i] = UserDonationResponseDTO{
			DonationPlaceResponseDTO: NewDonationPlace(&donations[i].DonationPlace),
			ContriPoint:              donations[i].ContriPoint,
			Date:                     donations[i].Date.Unix(),
		}
	}
	return response
}

func NewContribution(c *domain.Contribution) ContributionResponseDTO {
	return ContributionResponseDTO{
		PlaceID: c.PlaceID,
		Point:   c.Point,
		Date:    c.Date.Unix(),
	}
}
