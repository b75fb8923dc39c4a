package placerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/pg"
)

const placeColumns = "id, title, contents, due_date, target_point, owned_point, picture"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, place *domain.DonationPlace) (*domain.DonationPlace, error) {
	query := `
		INSERT INTO donation_places (title, contents, due_date, target_point, picture)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owned_point
	`
	err := repo.db.QueryRow(ctx, query,
		place.Title, place.Contents, place.DueDate, place.TargetPoint, place.Picture,
	).Scan(&place.ID, &place.OwnedPoint)
	if err != nil {
		zap.L().Error("can't save donation place", zap.Error(err))
		return nil, err
	}
	return place, nil
}

// CreateIfAbsent inserts the place unless one with the same title exists. Reports whether a row was added.
func (repo *Repository) CreateIfAbsent(ctx context.Context, place *domain.DonationPlace) (bool, error) {
	query := `
		INSERT INTO donation_places (title, contents, due_date, target_point, picture)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (title) DO NOTHING
	`
	tag, err := repo.db.Exec(ctx, query, place.Title, place.Contents, place.DueDate, place.TargetPoint, place.Picture)
	if err != nil {
		zap.L().Error("can't seed donation place", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindByIDForUpdate locks the place row. Returns nil when it does not exist.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.DonationPlace, error) {
	query := "SELECT " + placeColumns + " FROM donation_places WHERE id = $1 FOR UPDATE"
	var p domain.DonationPlace
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Contents, &p.DueDate, &p.TargetPoint, &p.OwnedPoint, &p.Picture,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock donation place", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// ListOpen returns places that are not yet due and have not reached their target.
func (repo *Repository) ListOpen(ctx context.Context, now time.Time) ([]domain.DonationPlace, error) {
	query := "SELECT " + placeColumns + `
		FROM donation_places
		WHERE due_date >= $1 AND owned_point < target_point
		ORDER BY due_date ASC
	`
	rows, err := repo.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't list donation places", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var places []domain.DonationPlace
	for rows.Next() {
		var p domain.DonationPlace
		if err := rows.Scan(&p.ID, &p.Title, &p.Contents, &p.DueDate, &p.TargetPoint, &p.OwnedPoint, &p.Picture); err != nil {
			zap.L().Error("can't scan donation place", zap.Error(err))
			return nil, err
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return places, nil
}

// AddOwned increases owned_point and returns the new total.
func (repo *Repository) AddOwned(ctx context.Context, placeID int, points int) (int, error) {
	var owned int
	err := repo.db.QueryRow(ctx,
		"UPDATE donation_places SET owned_point = owned_point + $1 WHERE id = $2 RETURNING owned_point",
		points, placeID,
	).Scan(&owned)
	if err != nil {
		zap.L().Error("can't update donation place", zap.Error(err))
		return 0, err
	}
	return owned, nil
}
