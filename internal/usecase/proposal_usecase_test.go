package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio_studio/internal/domain/entities"
	mock_interfaces "portfolio_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func validProposalInput() ProposalInput {
	return ProposalInput{
		ClientName:      "Acme Ltda",
		Title:           "Institutional Website",
		Objective:       "Redesign the institutional site",
		ScopeItems:      []string{"design", "development"},
		InvestmentValue: 12000,
		DeliveryDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		PaymentTerms:    []string{"50% upfront"},
	}
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		in.ClientName = "   "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidProposalInput) {
			t.Fatalf("expected ErrInvalidProposalInput, got %v", err)
		}
	})

	t.Run("non positive value", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		in := validProposalInput()
		in.InvestmentValue = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidProposalInput) {
			t.Fatalf("expected ErrInvalidProposalInput, got %v", err)
		}
	})

	t.Run("slug taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		in := validProposalInput()
		in.Slug = "acme-site"
		repo.EXPECT().GetBySlug(gomock.Any(), "acme-site").Return(entities.Proposal{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrProposalSlugTaken) {
			t.Fatalf("expected ErrProposalSlugTaken, got %v", err)
		}
	})

	t.Run("create success with derived slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetBySlug(gomock.Any(), "institutional-website").Return(entities.Proposal{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" || p.Slug != "institutional-website" {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if p.Version != 1 {
					t.Fatalf("expected version 1, got %d", p.Version)
				}
				if p.PasswordHash != "" {
					t.Fatalf("expected no password hash for open proposal")
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), validProposalInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("create hashes password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		in := validProposalInput()
		in.Password = "segredo"

		repo.EXPECT().GetBySlug(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.PasswordHash == "" || p.PasswordHash == "segredo" {
					t.Fatalf("expected bcrypt hash, got %q", p.PasswordHash)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("segredo")); err != nil {
					t.Fatalf("hash does not match password: %v", err)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Update(t *testing.T) {
	current := entities.Proposal{
		ID:              "prop-1",
		Slug:            "acme-site",
		ClientName:      "Acme Ltda",
		Title:           "Institutional Website",
		InvestmentValue: 12000,
		Version:         3,
		CreatedAt:       time.Now().UTC().Add(-24 * time.Hour),
	}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "   ", 0, validProposalInput())
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		_, err := uc.Update(context.Background(), "prop-1", 0, validProposalInput())
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("stale expected version rejected before snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		snaps := mock_interfaces.NewMockIProposalSnapshotRepository(ctrl)
		uc := NewProposalUseCase(repo, snaps)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(current, nil)

		_, err := uc.Update(context.Background(), "prop-1", 2, validProposalInput())
		if !errors.Is(err, ErrProposalVersionConflict) {
			t.Fatalf("expected ErrProposalVersionConflict, got %v", err)
		}
	})

	t.Run("snapshot failure aborts the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		snaps := mock_interfaces.NewMockIProposalSnapshotRepository(ctrl)
		uc := NewProposalUseCase(repo, snaps)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(current, nil)
		snaps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProposalSnapshot{}, errors.New("dynamo down"))

		_, err := uc.Update(context.Background(), "prop-1", 3, validProposalInput())
		if !errors.Is(err, ErrSnapshotFailed) {
			t.Fatalf("expected ErrSnapshotFailed, got %v", err)
		}
	})

	t.Run("snapshot archives the pre-edit content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		snaps := mock_interfaces.NewMockIProposalSnapshotRepository(ctrl)
		uc := NewProposalUseCase(repo, snaps)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(current, nil)
		snaps.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.ProposalSnapshot) (entities.ProposalSnapshot, error) {
				if s.ProposalID != "prop-1" || s.Version != 3 {
					t.Fatalf("unexpected snapshot: %+v", s)
				}
				want, _ := current.ContentJSON()
				if string(s.Content) != string(want) {
					t.Fatalf("snapshot content is not the pre-edit content")
				}
				return s, nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), 3).DoAndReturn(
			func(_ context.Context, p entities.Proposal, _ int) (entities.Proposal, error) {
				if p.Version != 4 {
					t.Fatalf("expected version bump to 4, got %d", p.Version)
				}
				if p.Slug != "acme-site" {
					t.Fatalf("slug must not change on update, got %q", p.Slug)
				}
				return p, nil
			},
		)

		res, err := uc.Update(context.Background(), "prop-1", 3, validProposalInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Version != 4 {
			t.Fatalf("expected version 4, got %d", res.Version)
		}
	})

	t.Run("lost write surfaces as version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		snaps := mock_interfaces.NewMockIProposalSnapshotRepository(ctrl)
		uc := NewProposalUseCase(repo, snaps)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(current, nil)
		snaps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProposalSnapshot{ID: "snap-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), 3).Return(entities.Proposal{}, nil)

		_, err := uc.Update(context.Background(), "prop-1", 3, validProposalInput())
		if !errors.Is(err, ErrProposalVersionConflict) {
			t.Fatalf("expected ErrProposalVersionConflict, got %v", err)
		}
	})
}

func TestProposalUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Proposal{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)

		res, err := uc.GetByID(context.Background(), " prop-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "prop-1" {
			t.Fatalf("unexpected proposal: %+v", res)
		}
	})
}

func TestProposalUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Proposal{}, nil)

		err := uc.Delete(context.Background(), "missing")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "prop-1").Return(nil)

		if err := uc.Delete(context.Background(), "prop-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_ListSnapshots(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil)
		_, err := uc.ListSnapshots(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("lists by proposal id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snaps := mock_interfaces.NewMockIProposalSnapshotRepository(ctrl)
		uc := NewProposalUseCase(nil, snaps)

		snaps.EXPECT().ListByProposalID(gomock.Any(), "prop-1").Return([]entities.ProposalSnapshot{{ID: "snap-1"}}, nil)

		res, err := uc.ListSnapshots(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "snap-1" {
			t.Fatalf("unexpected snapshots: %+v", res)
		}
	})
}
