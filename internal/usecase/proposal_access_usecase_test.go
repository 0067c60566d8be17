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

func activeProposal(t *testing.T) entities.Proposal {
	t.Helper()
	return entities.Proposal{
		ID:              "prop-1",
		Slug:            "acme-site",
		ClientName:      "Acme Ltda",
		Title:           "Institutional Website",
		InvestmentValue: 12000,
		Version:         2,
		CreatedAt:       time.Now().UTC().Add(-24 * time.Hour),
	}
}

func validAcceptance() AcceptanceInput {
	return AcceptanceInput{
		ClientName: "Joana Prado",
		Document:   "12345678901",
		Email:      "joana@acme.com",
		Role:       "CEO",
		HasConsent: true,
		IP:         "203.0.113.9",
		UserAgent:  "Mozilla/5.0",
	}
}

func TestProposalAccessUseCase_View(t *testing.T) {
	t.Run("blank slug", func(t *testing.T) {
		uc := NewProposalAccessUseCase(nil, nil, nil)
		_, err := uc.View(context.Background(), "  ")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalAccessUseCase(proposals, nil, nil)

		proposals.EXPECT().GetBySlug(gomock.Any(), "missing").Return(entities.Proposal{}, nil)

		_, err := uc.View(context.Background(), "missing")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestProposalAccessUseCase_CreateSession(t *testing.T) {
	t.Run("open proposal mints without password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(proposals, nil, tokens)

		p := activeProposal(t)
		proposals.EXPECT().GetBySlug(gomock.Any(), "acme-site").Return(p, nil)
		tokens.EXPECT().MintProposalToken("prop-1", DefaultSessionTTL).Return("token-1", nil)

		token, got, err := uc.CreateSession(context.Background(), "acme-site", "", "203.0.113.9", "Mozilla/5.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "token-1" || got.ID != "prop-1" {
			t.Fatalf("unexpected session: token=%q proposal=%+v", token, got)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalAccessUseCase(proposals, nil, nil)

		hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("bcrypt: %v", err)
		}
		p := activeProposal(t)
		p.PasswordHash = string(hash)
		proposals.EXPECT().GetBySlug(gomock.Any(), "acme-site").Return(p, nil)

		_, _, err = uc.CreateSession(context.Background(), "acme-site", "errado", "", "")
		if !errors.Is(err, ErrIncorrectPassword) {
			t.Fatalf("expected ErrIncorrectPassword, got %v", err)
		}
	})

	t.Run("correct password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(proposals, nil, tokens)

		hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("bcrypt: %v", err)
		}
		p := activeProposal(t)
		p.PasswordHash = string(hash)
		proposals.EXPECT().GetBySlug(gomock.Any(), "acme-site").Return(p, nil)
		tokens.EXPECT().MintProposalToken("prop-1", DefaultSessionTTL).Return("token-1", nil)

		token, _, err := uc.CreateSession(context.Background(), "acme-site", "segredo", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "token-1" {
			t.Fatalf("expected token-1, got %q", token)
		}
	})

	t.Run("expired proposal still gets a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(proposals, nil, tokens)

		p := activeProposal(t)
		p.CreatedAt = time.Now().UTC().AddDate(0, 0, -(entities.ProposalValidityDays + 5))
		proposals.EXPECT().GetBySlug(gomock.Any(), "acme-site").Return(p, nil)
		tokens.EXPECT().MintProposalToken("prop-1", DefaultSessionTTL).Return("token-1", nil)

		if _, _, err := uc.CreateSession(context.Background(), "acme-site", "", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalAccessUseCase_Accept(t *testing.T) {
	t.Run("consent required before anything else", func(t *testing.T) {
		uc := NewProposalAccessUseCase(nil, nil, nil)
		in := validAcceptance()
		in.HasConsent = false
		_, err := uc.Accept(context.Background(), "token-1", in)
		if !errors.Is(err, ErrConsentRequired) {
			t.Fatalf("expected ErrConsentRequired, got %v", err)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(nil, nil, tokens)

		tokens.EXPECT().ParseProposalToken("garbage").Return("", errors.New("bad signature"))

		_, err := uc.Accept(context.Background(), "garbage", validAcceptance())
		if !errors.Is(err, ErrInvalidSessionToken) {
			t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
		}
	})

	t.Run("missing identity fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(nil, nil, tokens)

		tokens.EXPECT().ParseProposalToken("token-1").Return("prop-1", nil)

		in := validAcceptance()
		in.Document = "  "
		_, err := uc.Accept(context.Background(), "token-1", in)
		if !errors.Is(err, ErrInvalidAcceptanceInput) {
			t.Fatalf("expected ErrInvalidAcceptanceInput, got %v", err)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(proposals, nil, tokens)

		tokens.EXPECT().ParseProposalToken("token-1").Return("prop-1", nil)
		p := activeProposal(t)
		p.Accepted = true
		proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

		_, err := uc.Accept(context.Background(), "token-1", validAcceptance())
		if !errors.Is(err, ErrProposalAlreadyAccepted) {
			t.Fatalf("expected ErrProposalAlreadyAccepted, got %v", err)
		}
	})

	t.Run("expired proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(proposals, nil, tokens)

		tokens.EXPECT().ParseProposalToken("token-1").Return("prop-1", nil)
		p := activeProposal(t)
		p.CreatedAt = time.Now().UTC().AddDate(0, 0, -(entities.ProposalValidityDays + 1))
		proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)

		_, err := uc.Accept(context.Background(), "token-1", validAcceptance())
		if !errors.Is(err, ErrProposalExpired) {
			t.Fatalf("expected ErrProposalExpired, got %v", err)
		}
	})

	t.Run("accept success records hash and version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		acceptances := mock_interfaces.NewMockIAcceptanceRepository(ctrl)
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(proposals, acceptances, tokens)

		p := activeProposal(t)
		wantHash, err := p.ContentHash()
		if err != nil {
			t.Fatalf("content hash: %v", err)
		}

		tokens.EXPECT().ParseProposalToken("token-1").Return("prop-1", nil)
		proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		acceptances.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProposalAcceptance{})).DoAndReturn(
			func(_ context.Context, a entities.ProposalAcceptance) (entities.ProposalAcceptance, error) {
				if a.ProposalID != "prop-1" || a.ProposalVersion != 2 {
					t.Fatalf("unexpected acceptance: %+v", a)
				}
				if a.ContentHash != wantHash {
					t.Fatalf("expected content hash %q, got %q", wantHash, a.ContentHash)
				}
				if a.IP != "203.0.113.9" || a.UserAgent == "" {
					t.Fatalf("expected audit metadata, got %+v", a)
				}
				return a, nil
			},
		)
		proposals.EXPECT().SetAccepted(gomock.Any(), "prop-1", gomock.Any()).Return(p, nil)

		res, err := uc.Accept(context.Background(), "token-1", validAcceptance())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated acceptance id")
		}
	})

	t.Run("lost race reads as already accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		acceptances := mock_interfaces.NewMockIAcceptanceRepository(ctrl)
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(proposals, acceptances, tokens)

		tokens.EXPECT().ParseProposalToken("token-1").Return("prop-1", nil)
		proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(activeProposal(t), nil)
		acceptances.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProposalAcceptance{}, errors.New("conditional check failed"))
		acceptances.EXPECT().GetByProposalID(gomock.Any(), "prop-1").Return(entities.ProposalAcceptance{ID: "acc-1"}, nil)

		_, err := uc.Accept(context.Background(), "token-1", validAcceptance())
		if !errors.Is(err, ErrProposalAlreadyAccepted) {
			t.Fatalf("expected ErrProposalAlreadyAccepted, got %v", err)
		}
	})

	t.Run("flag update failure does not fail the accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposals := mock_interfaces.NewMockIProposalRepository(ctrl)
		acceptances := mock_interfaces.NewMockIAcceptanceRepository(ctrl)
		tokens := mock_interfaces.NewMockISessionTokens(ctrl)
		uc := NewProposalAccessUseCase(proposals, acceptances, tokens)

		tokens.EXPECT().ParseProposalToken("token-1").Return("prop-1", nil)
		proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(activeProposal(t), nil)
		acceptances.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.ProposalAcceptance) (entities.ProposalAcceptance, error) { return a, nil },
		)
		proposals.EXPECT().SetAccepted(gomock.Any(), "prop-1", gomock.Any()).Return(entities.Proposal{}, errors.New("dynamo down"))

		if _, err := uc.Accept(context.Background(), "token-1", validAcceptance()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalAccessUseCase_GetAcceptance(t *testing.T) {
	t.Run("none recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		acceptances := mock_interfaces.NewMockIAcceptanceRepository(ctrl)
		uc := NewProposalAccessUseCase(nil, acceptances, nil)

		acceptances.EXPECT().GetByProposalID(gomock.Any(), "prop-1").Return(entities.ProposalAcceptance{}, nil)

		_, err := uc.GetAcceptance(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}
