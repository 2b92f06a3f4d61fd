package accounts

import "time"

// Account is a billing tenant. Users are linked to accounts through
// account_users; most operations resolve the caller's account first.
type Account struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
