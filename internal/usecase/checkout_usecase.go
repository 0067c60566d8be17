package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/domain/pricing"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

var (
	ErrCheckoutNotFound       = errors.New("checkout not found")
	ErrInvalidCheckoutID      = errors.New("invalid checkout id")
	ErrInvalidCheckoutInput   = errors.New("invalid checkout input")
	ErrCheckoutAlreadyPaid    = errors.New("checkout already paid")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrInvalidInstallments    = errors.New("invalid installment count")
	ErrPaymentGatewayRejected = errors.New("payment rejected by provider")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

// CheckoutInput carries the admin-entered payment link fields.

type CheckoutInput struct {
	Description      string
	Value            float64
	DueDate          time.Time
	CustomerName     string
	CustomerDocument string
	CustomerEmail    string
}

// PayInput carries the public checkout form selection.

type PayInput struct {
	Method       entities.PaymentMethod
	Installments int
	CardToken    string
	CardBrand    string // provider payment_method_id for cards, e.g. "visa"
	PayerEmail   string
	PayerName    string
	PayerDoc     string
}

// ICheckoutUseCase exposes payment-link creation and settlement.

type ICheckoutUseCase interface {
	Create(ctx context.Context, in CheckoutInput) (entities.Checkout, error)
	GetByID(ctx context.Context, id string) (entities.Checkout, error)
	List(ctx context.Context) ([]entities.Checkout, error)
	Delete(ctx context.Context, id string) error
	Installments(ctx context.Context, checkoutID string) ([]pricing.Option, error)
	Pay(ctx context.Context, checkoutID string, in PayInput) (entities.Charge, error)
	ListCharges(ctx context.Context, checkoutID string) ([]entities.Charge, error)
}

type CheckoutUseCase struct {
	checkouts interfaces.ICheckoutRepository
	charges   interfaces.IChargeRepository
	gateway   interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(checkouts interfaces.ICheckoutRepository, charges interfaces.IChargeRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{checkouts: checkouts, charges: charges, gateway: gateway}
}

func (u *CheckoutUseCase) Create(ctx context.Context, in CheckoutInput) (entities.Checkout, error) {
	if in.Value <= 0 || strings.TrimSpace(in.CustomerName) == "" {
		return entities.Checkout{}, ErrInvalidCheckoutInput
	}

	now := time.Now().UTC()
	c := entities.Checkout{
		ID:               uuid.NewString(),
		Description:      strings.TrimSpace(in.Description),
		Value:            in.Value,
		DueDate:          in.DueDate,
		CustomerName:     strings.TrimSpace(in.CustomerName),
		CustomerDocument: strings.TrimSpace(in.CustomerDocument),
		CustomerEmail:    strings.TrimSpace(in.CustomerEmail),
		Status:           entities.CheckoutStatusPendente,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.checkouts.Create(ctx, c)
}

func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.Checkout, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Checkout{}, ErrInvalidCheckoutID
	}
	c, err := u.checkouts.GetByID(ctx, id)
	if err != nil {
		return entities.Checkout{}, err
	}
	if c.ID == "" {
		return entities.Checkout{}, ErrCheckoutNotFound
	}
	return c, nil
}

func (u *CheckoutUseCase) List(ctx context.Context) ([]entities.Checkout, error) {
	return u.checkouts.List(ctx)
}

func (u *CheckoutUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return u.checkouts.Delete(ctx, c.ID)
}

// Installments returns the card installment table for a checkout's value.
func (u *CheckoutUseCase) Installments(ctx context.Context, checkoutID string) ([]pricing.Option, error) {
	c, err := u.GetByID(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	return pricing.Installments(c.Value), nil
}

// Pay charges a pending checkout through the provider. Credit-card payments
// charge the selected installment option's total (interest included); PIX and
// boleto charge the base value and surface the provider artifacts needed to
// settle (QR payload, digitable line).
func (u *CheckoutUseCase) Pay(ctx context.Context, checkoutID string, in PayInput) (entities.Charge, error) {
	c, err := u.GetByID(ctx, checkoutID)
	if err != nil {
		return entities.Charge{}, err
	}
	if c.Status == entities.CheckoutStatusPago {
		return entities.Charge{}, ErrCheckoutAlreadyPaid
	}
	if !in.Method.IsValid() {
		return entities.Charge{}, ErrInvalidPaymentMethod
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured checkout_id=%s", c.ID)
		return entities.Charge{}, ErrGatewayNotConfigured
	}

	amount := c.Value
	installments := 0
	if in.Method == entities.PaymentMethodCreditCard {
		if in.Installments < 1 || in.Installments > pricing.MaxInstallments {
			return entities.Charge{}, ErrInvalidInstallments
		}
		installments = in.Installments
		amount = pricing.Installments(c.Value)[installments-1].TotalValue
	}

	payload, err := buildChargePayload(c, in, amount, installments)
	if err != nil {
		return entities.Charge{}, err
	}

	log.Printf("[checkout][usecase] charging checkout_id=%s method=%s amount=%.2f installments=%d", c.ID, in.Method, amount, installments)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[checkout][usecase] gateway failed checkout_id=%s err=%v", c.ID, err)
		return entities.Charge{}, err
	}

	status := entities.ChargeStatusPendente
	switch providerStatus {
	case "approved":
		status = entities.ChargeStatusAprovado
	case "rejected", "cancelled":
		status = entities.ChargeStatusNegado
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[checkout][usecase] provider response unmarshal failed checkout_id=%s err=%v", c.ID, err)
	}

	charge := entities.Charge{
		ID:                 providerID,
		CheckoutID:         c.ID,
		Method:             in.Method,
		Installments:       installments,
		Amount:             amount,
		Status:             status,
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	switch in.Method {
	case entities.PaymentMethodPix:
		charge.QRCode = gjson.GetBytes(providerResp, "point_of_interaction.transaction_data.qr_code").String()
		charge.QRCodeBase64 = gjson.GetBytes(providerResp, "point_of_interaction.transaction_data.qr_code_base64").String()
	case entities.PaymentMethodBoleto:
		charge.DigitableLine = gjson.GetBytes(providerResp, "transaction_details.digitable_line").String()
		if charge.DigitableLine == "" {
			charge.DigitableLine = gjson.GetBytes(providerResp, "barcode.content").String()
		}
	}

	created, err := u.charges.Create(ctx, charge)
	if err != nil {
		log.Printf("[checkout][usecase] charge persist failed checkout_id=%s charge_id=%s err=%v", c.ID, charge.ID, err)
		return entities.Charge{}, err
	}

	if status == entities.ChargeStatusAprovado {
		if _, err := u.checkouts.UpdateStatus(ctx, c.ID, entities.CheckoutStatusPago); err != nil {
			log.Printf("[checkout][usecase] status update failed checkout_id=%s err=%v", c.ID, err)
		}
	}

	if status == entities.ChargeStatusNegado {
		// The charge is persisted for audit even when the provider declines.
		return created, ErrPaymentGatewayRejected
	}

	log.Printf("[checkout][usecase] charge created checkout_id=%s charge_id=%s status=%s", c.ID, created.ID, created.Status)
	return created, nil
}

func (u *CheckoutUseCase) ListCharges(ctx context.Context, checkoutID string) ([]entities.Charge, error) {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return nil, ErrInvalidCheckoutID
	}
	return u.charges.ListByCheckoutID(ctx, checkoutID)
}

func buildChargePayload(c entities.Checkout, in PayInput, amount float64, installments int) (json.RawMessage, error) {
	payerEmail := strings.TrimSpace(in.PayerEmail)
	if payerEmail == "" {
		payerEmail = c.CustomerEmail
	}
	payerName := strings.TrimSpace(in.PayerName)
	if payerName == "" {
		payerName = c.CustomerName
	}
	payerDoc := strings.TrimSpace(in.PayerDoc)
	if payerDoc == "" {
		payerDoc = c.CustomerDocument
	}

	req := map[string]any{
		"transaction_amount": amount,
		"description":        chargeDescription(c),
		"external_reference": c.ID,
		"payer": map[string]any{
			"email":      payerEmail,
			"first_name": payerName,
			"identification": map[string]any{
				"type":   documentType(payerDoc),
				"number": payerDoc,
			},
		},
	}

	switch in.Method {
	case entities.PaymentMethodPix:
		req["payment_method_id"] = "pix"
	case entities.PaymentMethodBoleto:
		req["payment_method_id"] = "bolbradesco"
		if !c.DueDate.IsZero() {
			req["date_of_expiration"] = c.DueDate.UTC().Format(time.RFC3339)
		}
	case entities.PaymentMethodCreditCard:
		if strings.TrimSpace(in.CardToken) == "" || strings.TrimSpace(in.CardBrand) == "" {
			return nil, ErrInvalidCheckoutInput
		}
		req["payment_method_id"] = in.CardBrand
		req["token"] = in.CardToken
		req["installments"] = installments
	}

	return json.Marshal(req)
}

func chargeDescription(c entities.Checkout) string {
	if c.Description != "" {
		return c.Description
	}
	return "Checkout " + c.ID
}

// documentType distinguishes CPF (11 digits) from CNPJ (14 digits).
func documentType(doc string) string {
	digits := 0
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > 11 {
		return "CNPJ"
	}
	return "CPF"
}
