package service

import (
	"context"

	"github.com/google/uuid"

	"karzone-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}
