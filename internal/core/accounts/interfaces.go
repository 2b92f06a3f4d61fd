package accounts

import "context"

// Service resolves the acting account for authenticated users
type Service interface {
	// ResolveForUser returns the account the user acts under, or
	// ErrAccountNotFound when the user has no account membership
	ResolveForUser(ctx context.Context, userID string) (*Account, error)
}

// Repository is the data access interface for accounts
type Repository interface {
	// GetForUser returns the user's primary account (oldest membership
	// wins when the user belongs to several)
	GetForUser(ctx context.Context, userID string) (*Account, error)
}
