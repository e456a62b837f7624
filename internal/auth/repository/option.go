package repository

// GetUserOptions holds filter parameters for fetching a single user.
// All non-empty fields are applied as AND conditions.
type GetUserOptions struct {
	ID       string
	Username string
}

// CreateUserOptions holds parameters for inserting a new user.
type CreateUserOptions struct {
	Username     string
	PasswordHash string
}
