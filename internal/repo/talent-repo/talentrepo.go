package talentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (repo *Repository) Create(ctx context.Context, talent *domain.Talent) (*domain.Talent, error) {
	query := `
		INSERT INTO talents (user_id, title, contents, point, start_at, end_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, completed, req_at
	`
	err := repo.db.QueryRow(ctx, query,
		talent.UserID, talent.Title, talent.Contents, talent.Point, talent.StartAt, talent.EndAt,
	).Scan(&talent.ID, &talent.Completed, &talent.ReqAt)
	if err != nil {
		zap.L().Error("can't save talent", zap.Error(err))
		return nil, err
	}
	return talent, nil
}

// FindByIDForUpdate locks the talent row. Returns nil when it does not exist.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Talent, error) {
	query := `
		SELECT id, user_id, title, contents, point, completed, req_at, start_at, end_at
		FROM talents
		WHERE id = $1
		FOR UPDATE
	`
	var t domain.Talent
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Contents, &t.Point, &t.Completed, &t.ReqAt, &t.StartAt, &t.EndAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock talent", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (repo *Repository) ListOpen(ctx context.Context) ([]domain.TalentListing, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.contents, t.point, t.completed, t.req_at, t.start_at, t.end_at, u.name
		FROM talents t
		JOIN users u ON u.id = t.user_id
		WHERE t.completed = FALSE
		ORDER BY t.req_at DESC
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list open talents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var talents []domain.TalentListing
	for rows.Next() {
		var t domain.TalentListing
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Contents, &t.Point, &t.Completed, &t.ReqAt, &t.StartAt, &t.EndAt, &t.Name,
		); err != nil {
			zap.L().Error("can't scan talent", zap.Error(err))
			return nil, err
		}
		talents = append(talents, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return talents, nil
}

// ListByOwner returns the owner's talents, completed first, then newest first.
func (repo *Repository) ListByOwner(ctx context.Context, ownerID int) ([]domain.OwnedTalent, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.contents, t.point, t.completed, t.req_at, t.start_at, t.end_at, a.completed_at
		FROM talents t
		LEFT JOIN apply_talents a ON a.talent_id = t.id
		WHERE t.user_id = $1
		ORDER BY t.completed DESC, t.req_at DESC
	`
	rows, err := repo.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("can't list user talents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var talents []domain.OwnedTalent
	for rows.Next() {
		var t domain.OwnedTalent
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Contents, &t.Point, &t.Completed, &t.ReqAt, &t.StartAt, &t.EndAt, &t.CompletedAt,
		); err != nil {
			zap.L().Error("can't scan talent", zap.Error(err))
			return nil, err
		}
		talents = append(talents, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return talents, nil
}

// MarkApplied flips completed from false to true.
func (repo *Repository) MarkApplied(ctx context.Context, talentID int) error {
	tag, err := repo.db.Exec(ctx, "UPDATE talents SET completed = TRUE WHERE id = $1 AND completed = FALSE", talentID)
	if err != nil {
		zap.L().Error("can't mark talent applied", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyApplied
	}
	return nil
}

// ReopenAppliedBy makes talents the contributor applied to but never finished visible again.
func (repo *Repository) ReopenAppliedBy(ctx context.Context, contributorID int) (int64, error) {
	query := `
		UPDATE talents SET completed = FALSE
		WHERE id IN (
			SELECT talent_id FROM apply_talents
			WHERE contributor_id = $1 AND completed_at IS NULL
		)
	`
	tag, err := repo.db.Exec(ctx, query, contributorID)
	if err != nil {
		zap.L().Error("can't reopen talents", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
