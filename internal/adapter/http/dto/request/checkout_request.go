package request

import "time"

type CheckoutRequest struct {
	Description      string    `json:"description" binding:"required"`
	Value            float64   `json:"value" binding:"required"`
	DueDate          time.Time `json:"due_date"`
	CustomerName     string    `json:"customer_name" binding:"required"`
	CustomerDocument string    `json:"customer_document" binding:"required"`
	CustomerEmail    string    `json:"customer_email" binding:"required"`
}

// PayRequest is the public checkout form submission. Card fields are only
// required when method is credit_card; the provider token stands in for the
// card number, which never reaches this API.
type PayRequest struct {
	Method       string `json:"method" binding:"required"`
	Installments int    `json:"installments"`
	CardToken    string `json:"card_token"`
	CardBrand    string `json:"card_brand"`
	PayerEmail   string `json:"payer_email"`
	PayerName    string `json:"payer_name"`
	PayerDoc     string `json:"payer_document"`
}
