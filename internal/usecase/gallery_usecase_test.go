package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"portfolio_studio/internal/domain/entities"
	mock_interfaces "portfolio_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGalleryUseCase_CreateFolder(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewGalleryUseCase(nil, nil, nil)
		_, err := uc.CreateFolder(context.Background(), "   ", "")
		if !errors.Is(err, ErrInvalidGalleryInput) {
			t.Fatalf("expected ErrInvalidGalleryInput, got %v", err)
		}
	})

	t.Run("unknown parent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		uc := NewGalleryUseCase(folders, nil, nil)

		folders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ImageFolder{}, nil)

		_, err := uc.CreateFolder(context.Background(), "Portraits", "missing")
		if !errors.Is(err, ErrFolderNotFound) {
			t.Fatalf("expected ErrFolderNotFound, got %v", err)
		}
	})

	t.Run("nested folder extends the parent path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		uc := NewGalleryUseCase(folders, nil, nil)

		folders.EXPECT().GetByID(gomock.Any(), "parent-1").Return(entities.ImageFolder{ID: "parent-1", Path: "events"}, nil)
		folders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ImageFolder{})).DoAndReturn(
			func(_ context.Context, f entities.ImageFolder) (entities.ImageFolder, error) {
				if f.ID == "" || f.ParentID != "parent-1" {
					t.Fatalf("unexpected folder: %+v", f)
				}
				if f.Path != "events/casamentos-2026" {
					t.Fatalf("expected nested path, got %q", f.Path)
				}
				return f, nil
			},
		)

		res, err := uc.CreateFolder(context.Background(), "Casamentos 2026", "parent-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Casamentos 2026" {
			t.Fatalf("unexpected folder: %+v", res)
		}
	})
}

func TestGalleryUseCase_DeleteFolder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		uc := NewGalleryUseCase(folders, nil, nil)

		folders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ImageFolder{}, nil)

		err := uc.DeleteFolder(context.Background(), "missing")
		if !errors.Is(err, ErrFolderNotFound) {
			t.Fatalf("expected ErrFolderNotFound, got %v", err)
		}
	})

	t.Run("contents are reassigned to the root", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		uc := NewGalleryUseCase(folders, images, nil)

		folders.EXPECT().GetByID(gomock.Any(), "fold-1").Return(entities.ImageFolder{ID: "fold-1", Name: "Events", Path: "events"}, nil)
		images.EXPECT().ListByFolder(gomock.Any(), "fold-1").Return([]entities.ImageAsset{
			{ID: "img-1", FolderID: "fold-1"},
			{ID: "img-2", FolderID: "fold-1"},
		}, nil)
		images.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, img entities.ImageAsset) (entities.ImageAsset, error) {
				if img.FolderID != "" {
					t.Fatalf("expected image reassigned to root, got %+v", img)
				}
				return img, nil
			},
		).Times(2)
		folders.EXPECT().ListChildren(gomock.Any(), "fold-1").Return([]entities.ImageFolder{
			{ID: "child-1", Name: "Weddings", ParentID: "fold-1", Path: "events/weddings"},
		}, nil)
		folders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.ImageFolder) (entities.ImageFolder, error) {
				if f.ParentID != "" || f.Path != "weddings" {
					t.Fatalf("expected child reparented to root, got %+v", f)
				}
				return f, nil
			},
		)
		folders.EXPECT().ListChildren(gomock.Any(), "child-1").Return(nil, nil)
		folders.EXPECT().Delete(gomock.Any(), "fold-1").Return(nil)

		if err := uc.DeleteFolder(context.Background(), "fold-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("grandchild paths lose the deleted ancestor segment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		uc := NewGalleryUseCase(folders, images, nil)

		folders.EXPECT().GetByID(gomock.Any(), "fold-1").Return(entities.ImageFolder{ID: "fold-1", Name: "Events", Path: "events"}, nil)
		images.EXPECT().ListByFolder(gomock.Any(), "fold-1").Return(nil, nil)
		folders.EXPECT().ListChildren(gomock.Any(), "fold-1").Return([]entities.ImageFolder{
			{ID: "child-1", Name: "Weddings", ParentID: "fold-1", Path: "events/weddings"},
		}, nil)
		gomock.InOrder(
			folders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, f entities.ImageFolder) (entities.ImageFolder, error) {
					if f.ID != "child-1" || f.Path != "weddings" {
						t.Fatalf("unexpected child update: %+v", f)
					}
					return f, nil
				},
			),
			folders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, f entities.ImageFolder) (entities.ImageFolder, error) {
					if f.ID != "grand-1" || f.Path != "weddings/2026" {
						t.Fatalf("expected grandchild path rewritten, got %+v", f)
					}
					if f.ParentID != "child-1" {
						t.Fatalf("grandchild must keep its parent, got %+v", f)
					}
					return f, nil
				},
			),
		)
		folders.EXPECT().ListChildren(gomock.Any(), "child-1").Return([]entities.ImageFolder{
			{ID: "grand-1", Name: "2026", ParentID: "child-1", Path: "events/weddings/2026"},
		}, nil)
		folders.EXPECT().ListChildren(gomock.Any(), "grand-1").Return(nil, nil)
		folders.EXPECT().Delete(gomock.Any(), "fold-1").Return(nil)

		if err := uc.DeleteFolder(context.Background(), "fold-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestGalleryUseCase_Upload(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewGalleryUseCase(nil, nil, nil)
		_, err := uc.Upload(context.Background(), UploadInput{FileName: ""})
		if !errors.Is(err, ErrInvalidGalleryInput) {
			t.Fatalf("expected ErrInvalidGalleryInput, got %v", err)
		}
	})

	t.Run("upload into folder prefixes the storage path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewGalleryUseCase(folders, images, storage)

		folders.EXPECT().GetByID(gomock.Any(), "fold-1").Return(entities.ImageFolder{ID: "fold-1", Path: "events"}, nil)
		storage.EXPECT().Upload(gomock.Any(), "events/photo.jpg", gomock.Any(), "image/jpeg").Return(nil)
		images.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ImageAsset{})).DoAndReturn(
			func(_ context.Context, img entities.ImageAsset) (entities.ImageAsset, error) {
				if img.StoragePath != "events/photo.jpg" || img.FolderID != "fold-1" {
					t.Fatalf("unexpected image: %+v", img)
				}
				return img, nil
			},
		)

		res, err := uc.Upload(context.Background(), UploadInput{
			FolderID:    "fold-1",
			FileName:    "photo.jpg",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("jpegdata"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("metadata failure removes the orphan blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewGalleryUseCase(nil, images, storage)

		storage.EXPECT().Upload(gomock.Any(), "photo.jpg", gomock.Any(), gomock.Any()).Return(nil)
		images.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ImageAsset{}, errors.New("dynamo down"))
		storage.EXPECT().Remove(gomock.Any(), "photo.jpg").Return(nil)

		_, err := uc.Upload(context.Background(), UploadInput{
			FileName: "photo.jpg",
			Body:     strings.NewReader("jpegdata"),
		})
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo error, got %v", err)
		}
	})
}

func TestGalleryUseCase_MoveImage(t *testing.T) {
	img := entities.ImageAsset{
		ID:          "img-1",
		FolderID:    "fold-1",
		Name:        "photo.jpg",
		StoragePath: "events/photo.jpg",
	}

	t.Run("move copies then removes the old blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewGalleryUseCase(folders, images, storage)

		images.EXPECT().GetByID(gomock.Any(), "img-1").Return(img, nil)
		folders.EXPECT().GetByID(gomock.Any(), "fold-2").Return(entities.ImageFolder{ID: "fold-2", Path: "portraits"}, nil)
		storage.EXPECT().Copy(gomock.Any(), "events/photo.jpg", "portraits/photo.jpg").Return(nil)
		images.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated entities.ImageAsset) (entities.ImageAsset, error) {
				if updated.FolderID != "fold-2" || updated.StoragePath != "portraits/photo.jpg" {
					t.Fatalf("unexpected image: %+v", updated)
				}
				return updated, nil
			},
		)
		storage.EXPECT().Remove(gomock.Any(), "events/photo.jpg").Return(nil)

		res, err := uc.MoveImage(context.Background(), "img-1", "fold-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StoragePath != "portraits/photo.jpg" {
			t.Fatalf("unexpected path: %q", res.StoragePath)
		}
	})

	t.Run("move to root strips the prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewGalleryUseCase(nil, images, storage)

		images.EXPECT().GetByID(gomock.Any(), "img-1").Return(img, nil)
		storage.EXPECT().Copy(gomock.Any(), "events/photo.jpg", "photo.jpg").Return(nil)
		images.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated entities.ImageAsset) (entities.ImageAsset, error) { return updated, nil },
		)
		storage.EXPECT().Remove(gomock.Any(), "events/photo.jpg").Return(nil)

		res, err := uc.MoveImage(context.Background(), "img-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StoragePath != "photo.jpg" || res.FolderID != "" {
			t.Fatalf("unexpected image: %+v", res)
		}
	})

	t.Run("metadata failure after copy is surfaced, old blob kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewGalleryUseCase(folders, images, storage)

		images.EXPECT().GetByID(gomock.Any(), "img-1").Return(img, nil)
		folders.EXPECT().GetByID(gomock.Any(), "fold-2").Return(entities.ImageFolder{ID: "fold-2", Path: "portraits"}, nil)
		storage.EXPECT().Copy(gomock.Any(), "events/photo.jpg", "portraits/photo.jpg").Return(nil)
		images.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.ImageAsset{}, errors.New("dynamo down"))

		_, err := uc.MoveImage(context.Background(), "img-1", "fold-2")
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo error, got %v", err)
		}
	})

	t.Run("same target folder is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		folders := mock_interfaces.NewMockIFolderRepository(ctrl)
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		uc := NewGalleryUseCase(folders, images, nil)

		images.EXPECT().GetByID(gomock.Any(), "img-1").Return(img, nil)
		folders.EXPECT().GetByID(gomock.Any(), "fold-1").Return(entities.ImageFolder{ID: "fold-1", Path: "events"}, nil)

		res, err := uc.MoveImage(context.Background(), "img-1", "fold-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.StoragePath != "events/photo.jpg" {
			t.Fatalf("unexpected path: %q", res.StoragePath)
		}
	})
}

func TestGalleryUseCase_RenameImage(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewGalleryUseCase(nil, nil, nil)
		_, err := uc.RenameImage(context.Background(), "img-1", "  ")
		if !errors.Is(err, ErrInvalidGalleryInput) {
			t.Fatalf("expected ErrInvalidGalleryInput, got %v", err)
		}
	})

	t.Run("rename keeps the folder prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewGalleryUseCase(nil, images, storage)

		images.EXPECT().GetByID(gomock.Any(), "img-1").Return(entities.ImageAsset{
			ID:          "img-1",
			FolderID:    "fold-1",
			Name:        "photo.jpg",
			StoragePath: "events/photo.jpg",
		}, nil)
		storage.EXPECT().Copy(gomock.Any(), "events/photo.jpg", "events/cover.jpg").Return(nil)
		images.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated entities.ImageAsset) (entities.ImageAsset, error) {
				if updated.Name != "cover.jpg" || updated.StoragePath != "events/cover.jpg" {
					t.Fatalf("unexpected image: %+v", updated)
				}
				return updated, nil
			},
		)
		storage.EXPECT().Remove(gomock.Any(), "events/photo.jpg").Return(nil)

		res, err := uc.RenameImage(context.Background(), "img-1", "cover.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "cover.jpg" {
			t.Fatalf("unexpected name: %q", res.Name)
		}
	})
}

func TestGalleryUseCase_DeleteImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	images := mock_interfaces.NewMockIImageRepository(ctrl)
	storage := mock_interfaces.NewMockIObjectStorage(ctrl)
	uc := NewGalleryUseCase(nil, images, storage)

	images.EXPECT().GetByID(gomock.Any(), "img-1").Return(entities.ImageAsset{ID: "img-1", StoragePath: "events/photo.jpg"}, nil)
	storage.EXPECT().Remove(gomock.Any(), "events/photo.jpg").Return(nil)
	images.EXPECT().Delete(gomock.Any(), "img-1").Return(nil)

	if err := uc.DeleteImage(context.Background(), "img-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGalleryUseCase_ReorderImages(t *testing.T) {
	t.Run("empty order", func(t *testing.T) {
		uc := NewGalleryUseCase(nil, nil, nil)
		err := uc.ReorderImages(context.Background(), "fold-1", nil)
		if !errors.Is(err, ErrInvalidGalleryInput) {
			t.Fatalf("expected ErrInvalidGalleryInput, got %v", err)
		}
	})

	t.Run("applies positional order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		uc := NewGalleryUseCase(nil, images, nil)

		gomock.InOrder(
			images.EXPECT().UpdateDisplayOrder(gomock.Any(), "img-2", 0).Return(nil),
			images.EXPECT().UpdateDisplayOrder(gomock.Any(), "img-1", 1).Return(nil),
			images.EXPECT().UpdateDisplayOrder(gomock.Any(), "img-3", 2).Return(nil),
		)

		if err := uc.ReorderImages(context.Background(), "fold-1", []string{"img-2", "img-1", "img-3"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("first failure stops the walk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		images := mock_interfaces.NewMockIImageRepository(ctrl)
		uc := NewGalleryUseCase(nil, images, nil)

		gomock.InOrder(
			images.EXPECT().UpdateDisplayOrder(gomock.Any(), "img-2", 0).Return(nil),
			images.EXPECT().UpdateDisplayOrder(gomock.Any(), "img-1", 1).Return(errors.New("dynamo down")),
		)

		err := uc.ReorderImages(context.Background(), "fold-1", []string{"img-2", "img-1", "img-3"})
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo error, got %v", err)
		}
	})
}
