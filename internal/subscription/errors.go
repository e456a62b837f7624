package subscription

import "errors"

var (
	ErrInvalidRepository = errors.New("repository must be in format: owner/repo")
	ErrNotRegistered     = errors.New("chat is not registered for this repository")
	ErrNothingToDelete   = errors.New("no registrations found")
)
