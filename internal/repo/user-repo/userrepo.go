package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/internal/domain"
	"github.com/GlebRadaev/talentbank/internal/pg"
)

const DefaultRole = "user"

const selectUser = `
	SELECT u.id, u.uuid, u.name, u.point, u.profile, u.push_token, u.created_at,
		COALESCE(array_agg(r.name) FILTER (WHERE r.name IS NOT NULL), '{}') AS roles
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	query := selectUser + ` WHERE u.uuid = $1 GROUP BY u.id`
	user, err := scanUser(repo.db.QueryRow(ctx, query, uuid))
	if err != nil {
		zap.L().Error("can't find user by uuid", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := selectUser + ` WHERE u.id = $1 GROUP BY u.id`
	user, err := scanUser(repo.db.QueryRow(ctx, query, id))
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := repo.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check user existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Create inserts the user and links the default role. Callers wrap it in a transaction.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (uuid, name)
		VALUES ($1, $2)
		RETURNING id, point, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.UUID, user.Name).Scan(&user.ID, &user.Point, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}

	roleQuery := `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2
	`
	if _, err := repo.db.Exec(ctx, roleQuery, user.ID, DefaultRole); err != nil {
		zap.L().Error("can't link user role", zap.Error(err))
		return nil, err
	}
	user.Roles = []string{DefaultRole}
	return user, nil
}

// AdjustBalance locks the user row and applies delta, refusing to go below zero.
func (repo *Repository) AdjustBalance(ctx context.Context, userID int, delta int) (int, error) {
	var current int
	err := repo.db.QueryRow(ctx, "SELECT point FROM users WHERE id = $1 FOR UPDATE", userID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("can't lock user balance", zap.Error(err))
		return 0, err
	}

	if current+delta < 0 {
		return current, domain.ErrInsufficientBalance
	}

	var updated int
	err = repo.db.QueryRow(ctx, "UPDATE users SET point = $1 WHERE id = $2 RETURNING point", current+delta, userID).Scan(&updated)
	if err != nil {
		zap.L().Error("can't update user balance", zap.Error(err))
		return 0, err
	}
	return updated, nil
}

func (repo *Repository) UpdateProfile(ctx context.Context, userID int, profile string) error {
	return repo.updateOne(ctx, "UPDATE users SET profile = $1 WHERE id = $2", profile, userID)
}

func (repo *Repository) UpdatePushToken(ctx context.Context, userID int, token string) error {
	return repo.updateOne(ctx, "UPDATE users SET push_token = $1 WHERE id = $2", token, userID)
}

func (repo *Repository) Delete(ctx context.Context, userID int) error {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", userID)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (repo *Repository) updateOne(ctx context.Context, query string, value any, userID int) error {
	tag, err := repo.db.Exec(ctx, query, value, userID)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.UUID, &user.Name, &user.Point, &user.Profile, &user.PushToken, &user.CreatedAt, &user.Roles)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
