package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Password    string
	Role        string
	PhoneNumber string
	Address     string
}

// AuthService defines account and credential use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
	UpdatePhoneNumber(ctx context.Context, userID int64, phoneNumber string) error
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
