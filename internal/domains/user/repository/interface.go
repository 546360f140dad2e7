package repository

import (
	"context"

	"github.com/google/uuid"

	"karzone-backend/internal/domains/user/model"
)

type UserRepository interface {
	// Create creates new user
	Create(ctx context.Context, user *model.User) error

	// GetByID gets user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail gets user by email (for login)
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// ExistsByEmail checks whether an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns all registered users, newest first
	List(ctx context.Context) ([]*model.User, error)
}
