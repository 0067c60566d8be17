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
	"portfolio_studio/internal/domain/pricing"
	"portfolio_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/checkouts", h.CreateCheckout)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/checkouts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/checkouts", h.CreateCheckout)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/checkouts", bytes.NewBufferString(`{"value":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/checkouts", h.CreateCheckout)

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CheckoutInput{})).Return(entities.Checkout{
			ID:           "chk-1",
			Description:  "Website maintenance",
			Value:        1500,
			CustomerName: "Acme Ltda",
			Status:       entities.CheckoutStatusPendente,
			CreatedAt:    time.Now().UTC(),
		}, nil)

		body := `{"description":"Website maintenance","value":1500,"customer_name":"Acme Ltda","customer_document":"12345678000199","customer_email":"financeiro@acme.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/checkouts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCheckoutHandler_GetCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.GET("/v1/checkout/:id", h.GetCheckout)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Checkout{}, usecase.ErrCheckoutNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_ListInstallments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	h := NewCheckoutHandler(uc)

	r := gin.New()
	r.GET("/v1/checkout/:id/installments", h.ListInstallments)

	uc.EXPECT().Installments(gomock.Any(), "chk-1").Return(pricing.Installments(1500), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/checkout/chk-1/installments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != pricing.MaxInstallments {
		t.Fatalf("expected %d options, got %d", pricing.MaxInstallments, len(body))
	}
	if body[0]["interest_free"] != true {
		t.Fatalf("expected 1x interest free, got %v", body[0])
	}
}

func TestCheckoutHandler_PayCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:id/pay", h.PayCheckout)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/chk-1/pay", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:id/pay", h.PayCheckout)

		uc.EXPECT().Pay(gomock.Any(), "chk-1", gomock.Any()).Return(entities.Charge{}, usecase.ErrCheckoutAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/chk-1/pay", bytes.NewBufferString(`{"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:id/pay", h.PayCheckout)

		uc.EXPECT().Pay(gomock.Any(), "chk-1", gomock.Any()).Return(entities.Charge{}, usecase.ErrGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/chk-1/pay", bytes.NewBufferString(`{"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("rejected by provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:id/pay", h.PayCheckout)

		uc.EXPECT().Pay(gomock.Any(), "chk-1", gomock.Any()).
			Return(entities.Charge{Status: entities.ChargeStatusNegado}, usecase.ErrPaymentGatewayRejected)

		body := `{"method":"credit_card","installments":3,"card_token":"tok_abc","card_brand":"visa"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/chk-1/pay", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("pix charge returns qr payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:id/pay", h.PayCheckout)

		uc.EXPECT().Pay(gomock.Any(), "chk-1", gomock.AssignableToTypeOf(usecase.PayInput{})).DoAndReturn(
			func(_ context.Context, _ string, in usecase.PayInput) (entities.Charge, error) {
				if in.Method != entities.PaymentMethodPix {
					t.Fatalf("unexpected method: %s", in.Method)
				}
				return entities.Charge{
					ID:         "987654",
					CheckoutID: "chk-1",
					Method:     entities.PaymentMethodPix,
					Amount:     1500,
					Status:     entities.ChargeStatusPendente,
					QRCode:     "00020126...copiaecola",
					Date:       time.Now().UTC(),
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/chk-1/pay", bytes.NewBufferString(`{"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["qr_code"] != "00020126...copiaecola" {
			t.Fatalf("expected qr code, got %v", body["qr_code"])
		}
	})
}

func TestCheckoutHandler_ListCharges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICheckoutUseCase(ctrl)
	h := NewCheckoutHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/checkouts/:id/charges", h.ListCharges)

	uc.EXPECT().ListCharges(gomock.Any(), "chk-1").Return([]entities.Charge{
		{ID: "987", CheckoutID: "chk-1", Method: entities.PaymentMethodPix, Status: entities.ChargeStatusAprovado},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/checkouts/chk-1/charges", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "987" {
		t.Fatalf("unexpected charges: %v", body)
	}
}
