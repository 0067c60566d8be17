package interfaces

import (
	"context"

	"portfolio_studio/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for application users.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, id string) error
}
