package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"platformone/internal/model"
	"platformone/pkg/tier"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
        SELECT id, name, email, password_hash, role, loyalty_tier, created_at
        FROM users
        WHERE email = $1
    `
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// FindByID returns user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	query := `
        SELECT id, name, email, password_hash, role, loyalty_tier, created_at
        FROM users
        WHERE id = $1
    `
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepository) scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	var loyaltyTier *string
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&loyaltyTier,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if loyaltyTier != nil {
		u.LoyaltyTier = tier.Tier(*loyaltyTier)
	}
	return &u, nil
}
