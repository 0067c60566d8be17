package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio_studio/internal/adapter/http/handlers/mocks"
	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProposalAccessHandler_ViewProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.GET("/v1/p/:slug", h.ViewProposal)

		uc.EXPECT().View(gomock.Any(), "missing").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/p/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("view success flags password and expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.GET("/v1/p/:slug", h.ViewProposal)

		uc.EXPECT().View(gomock.Any(), "acme-site").Return(entities.Proposal{
			ID:           "prop-1",
			Slug:         "acme-site",
			Title:        "Institutional Website",
			PasswordHash: "$2a$10$hash",
			Version:      2,
			CreatedAt:    time.Now().UTC().Add(-time.Hour),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/p/acme-site", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["requires_password"] != true {
			t.Fatalf("expected requires_password=true, got %v", body["requires_password"])
		}
		if body["expired"] != false {
			t.Fatalf("expected expired=false, got %v", body["expired"])
		}
		if _, ok := body["password_hash"]; ok {
			t.Fatalf("password hash must never be serialized")
		}
	})
}

func TestProposalAccessHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/sessions", h.CreateSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/sessions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/sessions", h.CreateSession)

		uc.EXPECT().CreateSession(gomock.Any(), "acme-site", "errado", gomock.Any(), gomock.Any()).
			Return("", entities.Proposal{}, usecase.ErrIncorrectPassword)

		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/sessions", bytes.NewBufferString(`{"password":"errado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("session created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/sessions", h.CreateSession)

		uc.EXPECT().CreateSession(gomock.Any(), "acme-site", "", gomock.Any(), gomock.Any()).
			Return("token-1", entities.Proposal{ID: "prop-1", Slug: "acme-site", CreatedAt: time.Now().UTC()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/sessions", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["token"] != "token-1" {
			t.Fatalf("expected token, got %v", body["token"])
		}
	})
}

func TestProposalAccessHandler_AcceptProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	acceptBody := `{"client_name":"Joana Prado","document":"12345678901","email":"joana@acme.com","role":"CEO","has_consent":true}`

	t.Run("missing session token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/accept", h.AcceptProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/accept", bytes.NewBufferString(acceptBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/accept", h.AcceptProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/accept", bytes.NewBufferString(`{"client_name":"Joana"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("consent refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/accept", h.AcceptProposal)

		uc.EXPECT().Accept(gomock.Any(), "token-1", gomock.Any()).
			Return(entities.ProposalAcceptance{}, usecase.ErrConsentRequired)

		body := `{"client_name":"Joana Prado","document":"12345678901","email":"joana@acme.com","has_consent":false}`
		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/accept", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/accept", h.AcceptProposal)

		uc.EXPECT().Accept(gomock.Any(), "token-1", gomock.Any()).
			Return(entities.ProposalAcceptance{}, usecase.ErrProposalAlreadyAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/accept", bytes.NewBufferString(acceptBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("expired proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/accept", h.AcceptProposal)

		uc.EXPECT().Accept(gomock.Any(), "token-1", gomock.Any()).
			Return(entities.ProposalAcceptance{}, usecase.ErrProposalExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/accept", bytes.NewBufferString(acceptBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalAccessUseCase(ctrl)
		h := NewProposalAccessHandler(uc)

		r := gin.New()
		r.POST("/v1/p/:slug/accept", h.AcceptProposal)

		uc.EXPECT().Accept(gomock.Any(), "token-1", gomock.AssignableToTypeOf(usecase.AcceptanceInput{})).DoAndReturn(
			func(_ context.Context, _ string, in usecase.AcceptanceInput) (entities.ProposalAcceptance, error) {
				if in.ClientName != "Joana Prado" || !in.HasConsent {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ProposalAcceptance{
					ID:          "acc-1",
					ProposalID:  "prop-1",
					ClientName:  in.ClientName,
					ContentHash: "abc123",
					AcceptedAt:  time.Now().UTC(),
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/p/acme-site/accept", bytes.NewBufferString(acceptBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["content_hash"] != "abc123" {
			t.Fatalf("expected content hash, got %v", body["content_hash"])
		}
	})
}
