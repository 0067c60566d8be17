package interfaces

import (
	"context"
	"io"

	"portfolio_studio/internal/domain/entities"
)

// IFolderRepository abstracts DynamoDB persistence for ImageFolder.

type IFolderRepository interface {
	Create(ctx context.Context, f entities.ImageFolder) (entities.ImageFolder, error)
	GetByID(ctx context.Context, id string) (entities.ImageFolder, error)
	List(ctx context.Context) ([]entities.ImageFolder, error)
	ListChildren(ctx context.Context, parentID string) ([]entities.ImageFolder, error)
	Update(ctx context.Context, f entities.ImageFolder) (entities.ImageFolder, error)
	Delete(ctx context.Context, id string) error
}

// IImageRepository abstracts DynamoDB persistence for ImageAsset metadata.

type IImageRepository interface {
	Create(ctx context.Context, img entities.ImageAsset) (entities.ImageAsset, error)
	GetByID(ctx context.Context, id string) (entities.ImageAsset, error)
	ListByFolder(ctx context.Context, folderID string) ([]entities.ImageAsset, error)
	Update(ctx context.Context, img entities.ImageAsset) (entities.ImageAsset, error)
	UpdateDisplayOrder(ctx context.Context, id string, order int) error
	Delete(ctx context.Context, id string) error
}

// IObjectStorage abstracts the path-addressed blob store (S3 bucket) that
// holds the gallery image files.

type IObjectStorage interface {
	Upload(ctx context.Context, path string, body io.Reader, contentType string) error
	Copy(ctx context.Context, fromPath, toPath string) error
	Remove(ctx context.Context, path string) error
	PublicURL(path string) string
}
