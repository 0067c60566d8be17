package entities

import (
	"encoding/json"
	"time"
)

// PaymentMethod is the closed set of methods a checkout can be paid with.

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBoleto     PaymentMethod = "boleto"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodBoleto, PaymentMethodCreditCard:
		return true
	}
	return false
}

// CheckoutStatus tracks whether a payment link has been settled.

type CheckoutStatus string

const (
	CheckoutStatusPendente CheckoutStatus = "pendente"
	CheckoutStatusPago     CheckoutStatus = "pago"
)

// Checkout is an admin-created payment link: a value, a due date and the
// customer it is addressed to. The public checkout page loads it by id and
// pays it through one of the supported methods.
//
// Storage model (DynamoDB):
//   - PK: id

type Checkout struct {
	ID               string         `json:"id"`
	Description      string         `json:"description"`
	Value            float64        `json:"value"`
	DueDate          time.Time      `json:"due_date"`
	CustomerName     string         `json:"customer_name"`
	CustomerDocument string         `json:"customer_document"`
	CustomerEmail    string         `json:"customer_email"`
	Status           CheckoutStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ChargeStatus mirrors the provider outcome for a charge.

type ChargeStatus string

const (
	ChargeStatusPendente ChargeStatus = "pendente"
	ChargeStatusAprovado ChargeStatus = "aprovado"
	ChargeStatusNegado   ChargeStatus = "negado"
)

// Charge is one payment attempt against a checkout, persisted with the raw
// provider payload for traceability/audit.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (checkout_id-index): checkout_id
//
// Method-specific fields:
//   - pix charges carry the QR payload (copy-paste code + base64 image)
//   - boleto charges carry the digitable line

type Charge struct {
	ID           string        `json:"id"`
	CheckoutID   string        `json:"checkout_id"`
	Method       PaymentMethod `json:"method"`
	Installments int           `json:"installments,omitempty"`
	Amount       float64       `json:"amount"`
	Status       ChargeStatus  `json:"status"`
	Date         time.Time     `json:"date"`

	QRCode        string `json:"qr_code,omitempty"`
	QRCodeBase64  string `json:"qr_code_base64,omitempty"`
	DigitableLine string `json:"digitable_line,omitempty"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
