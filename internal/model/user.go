package model

import "time"

// User is an API account able to manage projects and inspect webhook history.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Scope is the authenticated caller context propagated from middleware to use cases.
type Scope struct {
	UserID   string
	Username string
}

// Environment names for deployment modes.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
