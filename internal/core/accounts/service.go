package accounts

import (
	"context"
	"fmt"
)

type accountService struct {
	repo Repository
}

// NewAccountService creates a new account service
func NewAccountService(repo Repository) Service {
	return &accountService{repo: repo}
}

func (s *accountService) ResolveForUser(ctx context.Context, userID string) (*Account, error) {
	if userID == "" {
		return nil, ErrAccountNotFound
	}

	account, err := s.repo.GetForUser(ctx, userID)
	if err != nil {
		if err == ErrAccountNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve account for user: %w", err)
	}

	return account, nil
}
