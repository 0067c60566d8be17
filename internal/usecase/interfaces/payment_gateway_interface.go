package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// The checkout flow builds the provider payload, sends it as raw JSON and
// persists the provider response payload for traceability. Method-specific
// artifacts (PIX QR payload, boleto digitable line) are picked out of the
// returned response by the caller.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
