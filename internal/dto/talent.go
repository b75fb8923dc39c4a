package dto

import "github.com/GlebRadaev/talentbank/internal/domain"

type TalentResponseDTO struct {
	ID        int    `json:"id" example:"7"`
	UserID    int    `json:"user_id" example:"1"`
	Name      string `json:"name,omitempty" example:"Kim"`
	Title     string `json:"title" example:"Walk my dog"`
	Contents  string `json:"contents" example:"Two walks a day for a week"`
	Point     int    `json:"point" example:"100"`
	Completed bool   `json:"completed" example:"false"`
	ReqAt     int64  `json:"req_at" example:"1777627800"`
	StartAt   int64  `json:"start_at" example:"1777714200"`
	EndAt     int64  `json:"end_at" example:"1778319000"`
}

type OwnedTalentResponseDTO struct {
	TalentResponseDTO
	CompletedAt *int64 `json:"completed_at" example:"1778319000"`
}

type ApplicationResponseDTO struct {
	ID            int    `json:"id" example:"3"`
	TalentID      int    `json:"talent_id" example:"7"`
	ContributorID int    `json:"contributor_id" example:"2"`
	CompletedAt   *int64 `json:"completed_at" example:"1778319000"`
}

type CompletedApplicationResponseDTO struct {
	ApplicationResponseDTO
	Title    string `json:"title" example:"Walk my dog"`
	Contents string `json:"contents" example:"Two walks a day for a week"`
}

func NewTalent(t *domain.Talent) TalentResponseDTO {
	return TalentResponseDTO{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Contents:  t.Contents,
		Point:     t.Point,
		Completed: t.Completed,
		ReqAt:     t.ReqAt.Unix(),
		StartAt:   t.StartAt.Unix(),
		EndAt:     t.EndAt.Unix(),
	}
}

func NewTalentListings(listings []domain.TalentListing) []TalentResponseDTO {
	response := make([]TalentResponseDTO, len(listings))
	for i := range listings {
		response[i] = NewTalent(&listings[i].Talent)
		response[i].Name = listings[i].Name
	}
	return response
}

func NewOwnedTalents(talents []domain.OwnedTalent) []OwnedTalentResponseDTO {
	response := make([]OwnedTalentResponseDTO, len(talents))
	for i := range talents {
		response[i] = OwnedTalentResponseDTO{
			TalentResponseDTO: NewTalent(&talents[i].Talent),
		}
		if talents[i].CompletedAt != nil {
			at := talents[i].CompletedAt.Unix()
			response[i].CompletedAt = &at
		}
	}
	return response
}

func NewApplication(a *domain.Application) ApplicationResponseDTO {
	response := ApplicationResponseDTO{
		ID:            a.ID,
		TalentID:      a.TalentID,
		ContributorID: a.ContributorID,
	}
	if a.CompletedAt != nil {
		at := a.CompletedAt.Unix()
		response.CompletedAt = &at
	}
	return response
}

func NewCompletedApplications(apps []domain.CompletedApplication) []CompletedApplicationResponseDTO {
	response := make([]CompletedApplicationResponseDTO, len(apps))
	for i := range apps {
		response[i] = CompletedApplicationResponseDTO{
			ApplicationResponseDTO: NewApplication(&apps[i].Application),
			Title:                  apps[i].Title,
			Contents:               apps[i].Contents,
		}
	}
	return response
}
