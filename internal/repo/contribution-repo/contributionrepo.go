package contributionrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Accumulate adds points to the user's contribution to a place, creating the row on first donation.
func (repo *Repository) Accumulate(ctx context.Context, userID, placeID, points int, at time.Time) (*domain.Contribution, error) {
	query := `
		INSERT INTO user_places (user_id, place_id, point, date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, place_id)
		DO UPDATE SET point = user_places.point + EXCLUDED.point, date = EXCLUDED.date
		RETURNING id, point, date
	`
	c := &domain.Contribution{UserID: userID, PlaceID: placeID}
	err := repo.db.QueryRow(ctx, query, userID, placeID, points, at).Scan(&c.ID, &c.Point, &c.Date)
	if err != nil {
		zap.L().Error("can't save contribution", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (repo *Repository) ListByUser(ctx context.Context, userID int) ([]domain.UserDonation, error) {
	query := `
		SELECT p.id, p.title, p.contents, p.due_date, p.target_point, p.owned_point, p.picture, up.point, up.date
		FROM user_places up
		JOIN donation_places p ON p.id = up.place_id
		WHERE up.user_id = $1
		ORDER BY up.date DESC
	`
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list user donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.UserDonation
	for rows.Next() {
		var d domain.UserDonation
		if err := rows.Scan(
			&d.ID, &d.Title, &d.Contents, &d.DueDate, &d.TargetPoint, &d.OwnedPoint, &d.Picture, &d.ContriPoint, &d.Date,
		); err != nil {
			zap.L().Error("can't scan user donation", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return donations, nil
}
