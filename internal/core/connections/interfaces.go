package connections

import "context"

// Repository is the data access interface for platform connections
type Repository interface {
	// GetActiveByPlatform returns the account's active connection for
	// a platform, or ErrConnectionNotFound
	GetActiveByPlatform(ctx context.Context, accountID, platform string) (*Connection, error)

	// ListByAccount returns all of the account's connections, newest first
	ListByAccount(ctx context.Context, accountID string) ([]*Connection, error)

	// UpdateCredentials persists a new credentials snapshot for a
	// connection (written after a token refresh, before any publish
	// attempt that uses it)
	UpdateCredentials(ctx context.Context, connectionID string, creds Credentials) error
}
