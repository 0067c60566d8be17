package handlers

import (
	"errors"
	"net/http"

	request "portfolio_studio/internal/adapter/http/dto/request"
	response "portfolio_studio/internal/adapter/http/dto/response"
	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase"
	"portfolio_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler handles payment-link management (admin) and the public
// checkout flow: installment simulation and charge creation.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	checkout, err := h.usecase.Create(c.Request.Context(), usecase.CheckoutInput{
		Description:      payload.Description,
		Value:            payload.Value,
		DueDate:          payload.DueDate,
		CustomerName:     payload.CustomerName,
		CustomerDocument: payload.CustomerDocument,
		CustomerEmail:    payload.CustomerEmail,
	})
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckout(checkout))
}

func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	checkout, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckout(checkout))
}

func (h *CheckoutHandler) ListCheckouts(c *gin.Context) {
	checkouts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckouts(checkouts))
}

func (h *CheckoutHandler) DeleteCheckout(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListInstallments returns the 1..12 installment simulation for a checkout,
// already including interest and the per-installment issuer fee.
func (h *CheckoutHandler) ListInstallments(c *gin.Context) {
	options, err := h.usecase.Installments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallmentOptions(options))
}

func (h *CheckoutHandler) PayCheckout(c *gin.Context) {
	var payload request.PayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	charge, err := h.usecase.Pay(c.Request.Context(), c.Param("id"), usecase.PayInput{
		Method:       entities.PaymentMethod(payload.Method),
		Installments: payload.Installments,
		CardToken:    payload.CardToken,
		CardBrand:    payload.CardBrand,
		PayerEmail:   payload.PayerEmail,
		PayerName:    payload.PayerName,
		PayerDoc:     payload.PayerDoc,
	})
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCharge(charge))
}

func (h *CheckoutHandler) ListCharges(c *gin.Context) {
	charges, err := h.usecase.ListCharges(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharges(charges))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutID), errors.Is(err, usecase.ErrInvalidCheckoutInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unsupported payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInstallments):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLMENTS", "Installments must be between 1 and 12", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutAlreadyPaid):
		return pkg.NewDomainErrorSimple("CHECKOUT_ALREADY_PAID", "Checkout has already been paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment was rejected by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway is not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
