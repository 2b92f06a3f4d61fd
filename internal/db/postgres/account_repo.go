package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ReviewHub/internal/core/accounts"
)

type postgresAccountRepo struct {
	db *sql.DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *sql.DB) accounts.Repository {
	return &postgresAccountRepo{db: db}
}

// GetForUser returns the user's primary account via account_users
// (oldest membership wins)
func (r *postgresAccountRepo) GetForUser(ctx context.Context, userID string) (*accounts.Account, error) {
	account := &accounts.Account{}
	query := `
		SELECT a.id, a.name, a.created_at, a.updated_at
		FROM accounts a
		JOIN account_users au ON au.account_id = a.id
		WHERE au.user_id = $1
		ORDER BY au.created_at
		LIMIT 1`

	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&account.ID, &account.Name, &account.CreatedAt, &account.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, accounts.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account for user: %w", err)
	}

	return account, nil
}
