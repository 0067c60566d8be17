package interfaces

import (
	"context"

	"portfolio_studio/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetBySlug(ctx context.Context, slug string) (entities.Project, error)
	List(ctx context.Context, onlyPublished bool) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	UpdateDisplayOrder(ctx context.Context, id string, order int) error
	Delete(ctx context.Context, id string) error
}

// IPostRepository abstracts DynamoDB persistence for Post.

type IPostRepository interface {
	Create(ctx context.Context, p entities.Post) (entities.Post, error)
	GetByID(ctx context.Context, id string) (entities.Post, error)
	GetBySlug(ctx context.Context, slug string) (entities.Post, error)
	List(ctx context.Context, onlyPublished bool) ([]entities.Post, error)
	Update(ctx context.Context, p entities.Post) (entities.Post, error)
	Delete(ctx context.Context, id string) error
}
