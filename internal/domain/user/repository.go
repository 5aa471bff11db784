package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	SetRole(ctx context.Context, userID string, role Role) (User, error)
	SetPasswordHash(ctx context.Context, userID, hash string) error
	List(ctx context.Context) ([]User, error)
}
