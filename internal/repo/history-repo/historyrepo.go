package historyrepo

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

func (repo *Repository) Append(ctx context.Context, userID int, point int, at time.Time) (*domain.PointHistory, error) {
	entry := &domain.PointHistory{UserID: userID, Point: point, Date: at}
	err := repo.db.QueryRow(ctx,
		"INSERT INTO point_histories (user_id, date, point) VALUES ($1, $2, $3) RETURNING id",
		userID, at, point,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't append point history", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (repo *Repository) ListByUser(ctx context.Context, userID int) ([]domain.PointHistory, error) {
	rows, err := repo.db.Query(ctx,
		"SELECT id, user_id, date, point FROM point_histories WHERE user_id = $1 ORDER BY date ASC, id ASC",
		userID,
	)
	if err != nil {
		zap.L().Error("can't list point history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PointHistory
	for rows.Next() {
		var e domain.PointHistory
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Point); err != nil {
			zap.L().Error("can't scan point history", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
