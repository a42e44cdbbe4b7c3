package repository

import "heartrisk/models"

// UserRepository defines the interface for user operations
type UserRepository interface {
	// CreateUser hashes the plaintext password, enforces email uniqueness,
	// and inserts the user. Returns ErrEmailExists on a duplicate email.
	CreateUser(user *models.AppUser) error
	GetUserByEmail(email string) (*models.AppUser, error)
	GetUserByID(id string) (*models.AppUser, error)
}
