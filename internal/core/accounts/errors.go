package accounts

import "errors"

// ErrAccountNotFound is returned when a user has no resolvable account
var ErrAccountNotFound = errors.New("account not found")
