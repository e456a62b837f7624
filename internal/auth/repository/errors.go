package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get user")
	ErrFailedToInsert = errors.New("failed to insert user")
	ErrFailedToUpdate = errors.New("failed to update user")
)
