package applicationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/pg"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create records an application. A second application for the same talent yields ErrAlreadyApplied.
func (repo *Repository) Create(ctx context.Context, talentID, contributorID int) (*domain.Application, error) {
	app := &domain.Application{TalentID: talentID, ContributorID: contributorID}
	err := repo.db.QueryRow(ctx,
		"INSERT INTO apply_talents (talent_id, contributor_id) VALUES ($1, $2) RETURNING id",
		talentID, contributorID,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyApplied
		}
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (repo *Repository) ExistsForTalent(ctx context.Context, talentID int) (bool, error) {
	var exists bool
	err := repo.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM apply_talents WHERE talent_id = $1)", talentID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check application", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// FindByTalentIDForUpdate locks the application of a talent. Returns nil when there is none.
func (repo *Repository) FindByTalentIDForUpdate(ctx context.Context, talentID int) (*domain.Application, error) {
	query := `
		SELECT id, talent_id, contributor_id, completed_at
		FROM apply_talents
		WHERE talent_id = $1
		FOR UPDATE
	`
	var app domain.Application
	err := repo.db.QueryRow(ctx, query, talentID).Scan(&app.ID, &app.TalentID, &app.ContributorID, &app.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// MarkCompleted stamps completed_at once. A second call yields ErrAlreadyCompleted.
func (repo *Repository) MarkCompleted(ctx context.Context, id int, at time.Time) error {
	tag, err := repo.db.Exec(ctx,
		"UPDATE apply_talents SET completed_at = $1 WHERE id = $2 AND completed_at IS NULL",
		at, id,
	)
	if err != nil {
		zap.L().Error("can't complete application", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyCompleted
	}
	return nil
}

func (repo *Repository) ListCompletedByContributor(ctx context.Context, contributorID int) ([]domain.CompletedApplication, error) {
	query := `
		SELECT a.id, a.talent_id, a.contributor_id, a.completed_at, t.title, t.contents
		FROM apply_talents a
		JOIN talents t ON t.id = a.talent_id
		WHERE a.contributor_id = $1 AND a.completed_at IS NOT NULL
		ORDER BY a.completed_at DESC
	`
	rows, err := repo.db.Query(ctx, query, contributorID)
	if err != nil {
		zap.L().Error("can't list completed applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.CompletedApplication
	for rows.Next() {
		var a domain.CompletedApplication
		if err := rows.Scan(&a.ID, &a.TalentID, &a.ContributorID, &a.CompletedAt, &a.Title, &a.Contents); err != nil {
			zap.L().Error("can't scan application", zap.Error(err))
			return nil, err
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return apps, nil
}
