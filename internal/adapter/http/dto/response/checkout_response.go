package response

import (
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/domain/pricing"
)

type CheckoutResponse struct {
	ID               string    `json:"id"`
	Description      string    `json:"description"`
	Value            float64   `json:"value"`
	DueDate          time.Time `json:"due_date,omitzero"`
	CustomerName     string    `json:"customer_name"`
	CustomerDocument string    `json:"customer_document"`
	CustomerEmail    string    `json:"customer_email"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromCheckout(c entities.Checkout) CheckoutResponse {
	return CheckoutResponse{
		ID:               c.ID,
		Description:      c.Description,
		Value:            c.Value,
		DueDate:          c.DueDate,
		CustomerName:     c.CustomerName,
		CustomerDocument: c.CustomerDocument,
		CustomerEmail:    c.CustomerEmail,
		Status:           string(c.Status),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromCheckouts(cs []entities.Checkout) []CheckoutResponse {
	out := make([]CheckoutResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCheckout(c))
	}
	return out
}

type InstallmentOptionResponse struct {
	Count          int     `json:"count"`
	Value          float64 `json:"value"`
	TotalValue     float64 `json:"total_value"`
	InterestFree   bool    `json:"interest_free"`
	InterestRate   float64 `json:"interest_rate"`
	InterestAmount float64 `json:"interest_amount"`
}

func FromInstallmentOptions(opts []pricing.Option) []InstallmentOptionResponse {
	out := make([]InstallmentOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, InstallmentOptionResponse{
			Count:          o.Count,
			Value:          o.Value,
			TotalValue:     o.TotalValue,
			InterestFree:   o.InterestFree,
			InterestRate:   o.InterestRate,
			InterestAmount: o.InterestAmount,
		})
	}
	return out
}

// ChargeResponse carries the method-specific settlement artifacts: QR payload
// for pix, digitable line for boleto.
type ChargeResponse struct {
	ID            string    `json:"id"`
	CheckoutID    string    `json:"checkout_id"`
	Method        string    `json:"method"`
	Installments  int       `json:"installments,omitempty"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
	QRCode        string    `json:"qr_code,omitempty"`
	QRCodeBase64  string    `json:"qr_code_base64,omitempty"`
	DigitableLine string    `json:"digitable_line,omitempty"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		ID:            c.ID,
		CheckoutID:    c.CheckoutID,
		Method:        string(c.Method),
		Installments:  c.Installments,
		Amount:        c.Amount,
		Status:        string(c.Status),
		Date:          c.Date,
		QRCode:        c.QRCode,
		QRCodeBase64:  c.QRCodeBase64,
		DigitableLine: c.DigitableLine,
	}
}

func FromCharges(cs []entities.Charge) []ChargeResponse {
	out := make([]ChargeResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCharge(c))
	}
	return out
}
