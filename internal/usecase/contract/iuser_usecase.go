package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Clipture/internal/domain/entity"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	LoginWithOAuth(ctx context.Context, name, email string) (string, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
