package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"ReviewHub/internal/core/connections"
)

type postgresConnectionRepo struct {
	db *sql.DB
}

// NewConnectionRepository creates a new PostgreSQL repository for
// social platform connections
func NewConnectionRepository(db *sql.DB) connections.Repository {
	return &postgresConnectionRepo{db: db}
}

// GetActiveByPlatform returns the account's active connection for a platform
func (r *postgresConnectionRepo) GetActiveByPlatform(ctx context.Context, accountID, platform string) (*connections.Connection, error) {
	query := `
		SELECT id, account_id, platform, status, credentials, created_at, updated_at
		FROM social_platform_connections
		WHERE account_id = $1 AND platform = $2 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1`

	conn := &connections.Connection{}
	var credentialsJSON []byte
	err := r.db.QueryRowContext(ctx, query, accountID, platform).
		Scan(&conn.ID, &conn.AccountID, &conn.Platform, &conn.Status,
			&credentialsJSON, &conn.CreatedAt, &conn.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, connections.ErrConnectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform connection: %w", err)
	}

	if err := json.Unmarshal(credentialsJSON, &conn.Credentials); err != nil {
		return nil, fmt.Errorf("failed to parse connection credentials: %w", err)
	}

	return conn, nil
}

// ListByAccount returns all of the account's connections, newest first
func (r *postgresConnectionRepo) ListByAccount(ctx context.Context, accountID string) ([]*connections.Connection, error) {
	query := `
		SELECT id, account_id, platform, status, credentials, created_at, updated_at
		FROM social_platform_connections
		WHERE account_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list platform connections: %w", err)
	}
	defer rows.Close()

	var conns []*connections.Connection
	for rows.Next() {
		conn := &connections.Connection{}
		var credentialsJSON []byte
		if err := rows.Scan(&conn.ID, &conn.AccountID, &conn.Platform, &conn.Status,
			&credentialsJSON, &conn.CreatedAt, &conn.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan platform connection: %w", err)
		}
		if err := json.Unmarshal(credentialsJSON, &conn.Credentials); err != nil {
			return nil, fmt.Errorf("failed to parse connection credentials: %w", err)
		}
		conns = append(conns, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate platform connections: %w", err)
	}

	return conns, nil
}

// UpdateCredentials persists a new credentials snapshot for a connection
func (r *postgresConnectionRepo) UpdateCredentials(ctx context.Context, connectionID string, creds connections.Credentials) error {
	credentialsJSON, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	query := `
		UPDATE social_platform_connections
		SET credentials = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, connectionID, credentialsJSON)
	if err != nil {
		return fmt.Errorf("failed to update connection credentials: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return connections.ErrConnectionNotFound
	}

	return nil
}
