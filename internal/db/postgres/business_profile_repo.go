package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"ReviewHub/internal/core/platforms/googlebusiness"
	"ReviewHub/internal/core/publisher"
)

type postgresBusinessProfileRepo struct {
	db *sql.DB
}

// NewBusinessProfileRepository creates a new PostgreSQL store for
// Google Business Profile OAuth rows and locations
func NewBusinessProfileRepository(db *sql.DB) publisher.BusinessProfileStore {
	return &postgresBusinessProfileRepo{db: db}
}

// GetAuth returns the stored token row for an account
func (r *postgresBusinessProfileRepo) GetAuth(ctx context.Context, accountID string) (*googlebusiness.Auth, error) {
	auth := &googlebusiness.Auth{}
	query := `
		SELECT access_token, refresh_token, expires_at
		FROM google_business_profiles
		WHERE account_id = $1`

	var refreshToken sql.NullString
	var expiresAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, accountID).
		Scan(&auth.AccessToken, &refreshToken, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, publisher.ErrNoBusinessProfile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business profile tokens: %w", err)
	}

	auth.RefreshToken = refreshToken.String
	if expiresAt.Valid {
		t := expiresAt.Time
		auth.ExpiresAt = &t
	}

	return auth, nil
}

// GetLocation returns the account's business location resource name
func (r *postgresBusinessProfileRepo) GetLocation(ctx context.Context, accountID string) (string, error) {
	query := `
		SELECT location_id
		FROM google_business_locations
		WHERE account_id = $1
		ORDER BY created_at
		LIMIT 1`

	var locationID string
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&locationID)
	if err == sql.ErrNoRows {
		// No location stored; the adapter reports this at validation
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get business location: %w", err)
	}

	return locationID, nil
}
