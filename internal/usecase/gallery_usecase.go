package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFolderNotFound      = errors.New("folder not found")
	ErrImageNotFound       = errors.New("image not found")
	ErrInvalidGalleryInput = errors.New("invalid gallery input")
)

// UploadInput carries one image upload.

type UploadInput struct {
	FolderID    string
	FileName    string
	ContentType string
	SizeBytes   int64
	Width       int
	Height      int
	AltText     string
	Description string
	Body        io.Reader
}

// IGalleryUseCase manages the image gallery: the folder tree, blob storage
// and metadata rows. Folder deletion reassigns contents to the root instead
// of cascading; blob/metadata divergence after a move is logged for manual
// correction rather than compensated.

type IGalleryUseCase interface {
	CreateFolder(ctx context.Context, name, parentID string) (entities.ImageFolder, error)
	ListFolders(ctx context.Context) ([]entities.ImageFolder, error)
	DeleteFolder(ctx context.Context, id string) error

	Upload(ctx context.Context, in UploadInput) (entities.ImageAsset, error)
	GetImage(ctx context.Context, id string) (entities.ImageAsset, error)
	ListImages(ctx context.Context, folderID string) ([]entities.ImageAsset, error)
	UpdateImageMetadata(ctx context.Context, id, name, altText, description string) (entities.ImageAsset, error)
	MoveImage(ctx context.Context, id, targetFolderID string) (entities.ImageAsset, error)
	RenameImage(ctx context.Context, id, newFileName string) (entities.ImageAsset, error)
	DeleteImage(ctx context.Context, id string) error
	ReorderImages(ctx context.Context, folderID string, orderedIDs []string) error

	PublicURL(img entities.ImageAsset) string
}

type GalleryUseCase struct {
	folders interfaces.IFolderRepository
	images  interfaces.IImageRepository
	storage interfaces.IObjectStorage
}

var _ IGalleryUseCase = (*GalleryUseCase)(nil)

func NewGalleryUseCase(folders interfaces.IFolderRepository, images interfaces.IImageRepository, storage interfaces.IObjectStorage) *GalleryUseCase {
	return &GalleryUseCase{folders: folders, images: images, storage: storage}
}

func (u *GalleryUseCase) CreateFolder(ctx context.Context, name, parentID string) (entities.ImageFolder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ImageFolder{}, ErrInvalidGalleryInput
	}

	path := Slugify(name)
	parentID = strings.TrimSpace(parentID)
	if parentID != "" {
		parent, err := u.folders.GetByID(ctx, parentID)
		if err != nil {
			return entities.ImageFolder{}, err
		}
		if parent.ID == "" {
			return entities.ImageFolder{}, ErrFolderNotFound
		}
		path = parent.Path + "/" + path
	}

	f := entities.ImageFolder{
		ID:        uuid.NewString(),
		Name:      name,
		ParentID:  parentID,
		Path:      path,
		CreatedAt: time.Now().UTC(),
	}
	return u.folders.Create(ctx, f)
}

func (u *GalleryUseCase) ListFolders(ctx context.Context) ([]entities.ImageFolder, error) {
	return u.folders.List(ctx)
}

// DeleteFolder reassigns the folder's images and child folders to the root,
// then removes the folder record. Nothing is cascaded.
func (u *GalleryUseCase) DeleteFolder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidGalleryInput
	}
	f, err := u.folders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f.ID == "" {
		return ErrFolderNotFound
	}

	images, err := u.images.ListByFolder(ctx, f.ID)
	if err != nil {
		return err
	}
	for _, img := range images {
		img.FolderID = ""
		img.UpdatedAt = time.Now().UTC()
		if _, err := u.images.Update(ctx, img); err != nil {
			return err
		}
	}

	children, err := u.folders.ListChildren(ctx, f.ID)
	if err != nil {
		return err
	}
	for _, child := range children {
		child.ParentID = ""
		child.Path = Slugify(child.Name)
		if _, err := u.folders.Update(ctx, child); err != nil {
			return err
		}
		// The materialized path embeds every ancestor segment, so the whole
		// subtree under a reparented child needs rewriting too.
		if err := u.rewriteSubtreePaths(ctx, child); err != nil {
			return err
		}
	}

	return u.folders.Delete(ctx, f.ID)
}

func (u *GalleryUseCase) rewriteSubtreePaths(ctx context.Context, parent entities.ImageFolder) error {
	children, err := u.folders.ListChildren(ctx, parent.ID)
	if err != nil {
		return err
	}
	for _, child := range children {
		child.Path = parent.Path + "/" + Slugify(child.Name)
		if _, err := u.folders.Update(ctx, child); err != nil {
			return err
		}
		if err := u.rewriteSubtreePaths(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

func (u *GalleryUseCase) Upload(ctx context.Context, in UploadInput) (entities.ImageAsset, error) {
	fileName := strings.TrimSpace(in.FileName)
	if fileName == "" || in.Body == nil {
		return entities.ImageAsset{}, ErrInvalidGalleryInput
	}

	prefix := ""
	folderID := strings.TrimSpace(in.FolderID)
	if folderID != "" {
		folder, err := u.folders.GetByID(ctx, folderID)
		if err != nil {
			return entities.ImageAsset{}, err
		}
		if folder.ID == "" {
			return entities.ImageAsset{}, ErrFolderNotFound
		}
		prefix = folder.Path + "/"
	}
	storagePath := prefix + fileName

	if err := u.storage.Upload(ctx, storagePath, in.Body, in.ContentType); err != nil {
		return entities.ImageAsset{}, err
	}

	now := time.Now().UTC()
	img := entities.ImageAsset{
		ID:          uuid.NewString(),
		FolderID:    folderID,
		Name:        fileName,
		AltText:     in.AltText,
		Description: in.Description,
		StoragePath: storagePath,
		ContentType: in.ContentType,
		Width:       in.Width,
		Height:      in.Height,
		SizeBytes:   in.SizeBytes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.images.Create(ctx, img)
	if err != nil {
		// Best-effort cleanup: the blob without a metadata row is invisible
		// to every listing.
		if rmErr := u.storage.Remove(ctx, storagePath); rmErr != nil {
			log.Printf("[gallery][usecase] orphan blob cleanup failed path=%s err=%v", storagePath, rmErr)
		}
		return entities.ImageAsset{}, err
	}
	return created, nil
}

func (u *GalleryUseCase) GetImage(ctx context.Context, id string) (entities.ImageAsset, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ImageAsset{}, ErrInvalidGalleryInput
	}
	img, err := u.images.GetByID(ctx, id)
	if err != nil {
		return entities.ImageAsset{}, err
	}
	if img.ID == "" {
		return entities.ImageAsset{}, ErrImageNotFound
	}
	return img, nil
}

func (u *GalleryUseCase) ListImages(ctx context.Context, folderID string) ([]entities.ImageAsset, error) {
	return u.images.ListByFolder(ctx, strings.TrimSpace(folderID))
}

func (u *GalleryUseCase) UpdateImageMetadata(ctx context.Context, id, name, altText, description string) (entities.ImageAsset, error) {
	img, err := u.GetImage(ctx, id)
	if err != nil {
		return entities.ImageAsset{}, err
	}
	if n := strings.TrimSpace(name); n != "" && n != img.Name {
		return u.RenameImage(ctx, id, n)
	}
	img.AltText = altText
	img.Description = description
	img.UpdatedAt = time.Now().UTC()
	return u.images.Update(ctx, img)
}

// MoveImage rewrites the blob path for the target folder: copy, update
// metadata, delete the old blob. A metadata failure after a successful copy
// leaves storage and metadata divergent; that is logged as a warning and left
// for manual correction.
func (u *GalleryUseCase) MoveImage(ctx context.Context, id, targetFolderID string) (entities.ImageAsset, error) {
	img, err := u.GetImage(ctx, id)
	if err != nil {
		return entities.ImageAsset{}, err
	}

	prefix := ""
	targetFolderID = strings.TrimSpace(targetFolderID)
	if targetFolderID != "" {
		target, err := u.folders.GetByID(ctx, targetFolderID)
		if err != nil {
			return entities.ImageAsset{}, err
		}
		if target.ID == "" {
			return entities.ImageAsset{}, ErrFolderNotFound
		}
		prefix = target.Path + "/"
	}

	oldPath := img.StoragePath
	newPath := prefix + img.Name
	if newPath == oldPath && targetFolderID == img.FolderID {
		return img, nil
	}

	return u.relocate(ctx, img, targetFolderID, oldPath, newPath)
}

func (u *GalleryUseCase) RenameImage(ctx context.Context, id, newFileName string) (entities.ImageAsset, error) {
	newFileName = strings.TrimSpace(newFileName)
	if newFileName == "" {
		return entities.ImageAsset{}, ErrInvalidGalleryInput
	}
	img, err := u.GetImage(ctx, id)
	if err != nil {
		return entities.ImageAsset{}, err
	}

	oldPath := img.StoragePath
	prefix := strings.TrimSuffix(oldPath, img.Name)
	newPath := prefix + newFileName
	if newPath == oldPath {
		return img, nil
	}

	img.Name = newFileName
	return u.relocate(ctx, img, img.FolderID, oldPath, newPath)
}

func (u *GalleryUseCase) relocate(ctx context.Context, img entities.ImageAsset, folderID, oldPath, newPath string) (entities.ImageAsset, error) {
	if err := u.storage.Copy(ctx, oldPath, newPath); err != nil {
		return entities.ImageAsset{}, err
	}

	img.FolderID = folderID
	img.StoragePath = newPath
	img.UpdatedAt = time.Now().UTC()
	updated, err := u.images.Update(ctx, img)
	if err != nil {
		log.Printf("[gallery][usecase] WARNING blob copied but metadata update failed image_id=%s old=%s new=%s err=%v", img.ID, oldPath, newPath, err)
		return entities.ImageAsset{}, err
	}

	if err := u.storage.Remove(ctx, oldPath); err != nil {
		log.Printf("[gallery][usecase] stale blob removal failed path=%s err=%v", oldPath, err)
	}
	return updated, nil
}

func (u *GalleryUseCase) DeleteImage(ctx context.Context, id string) error {
	img, err := u.GetImage(ctx, id)
	if err != nil {
		return err
	}
	if err := u.storage.Remove(ctx, img.StoragePath); err != nil {
		return err
	}
	return u.images.Delete(ctx, img.ID)
}

// ReorderImages applies display orders per item; the first failure is
// returned untouched so the caller re-fetches the authoritative order.
func (u *GalleryUseCase) ReorderImages(ctx context.Context, folderID string, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return ErrInvalidGalleryInput
	}
	for order, id := range orderedIDs {
		if err := u.images.UpdateDisplayOrder(ctx, id, order); err != nil {
			return err
		}
	}
	return nil
}

func (u *GalleryUseCase) PublicURL(img entities.ImageAsset) string {
	return u.storage.PublicURL(img.StoragePath)
}
