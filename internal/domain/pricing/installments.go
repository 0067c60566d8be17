// Package pricing holds the credit-card installment table used by checkout.
package pricing

// Card installment tiers. Interest and the issuer fee are applied once over
// the base amount, not compounded per installment. Rounding to the currency
// minor unit happens at display time only, so repeated computation is stable.
const (
	MaxInstallments = 12

	interestFreeMax = 3
	lowTierMax      = 6

	lowTierRate  = 0.0349
	highTierRate = 0.0399
	issuerFee    = 0.49
)

// Option is one entry of the installment table.

type Option struct {
	Count          int     `json:"count"`
	Value          float64 `json:"value"`
	TotalValue     float64 `json:"total_value"`
	InterestFree   bool    `json:"interest_free"`
	InterestRate   float64 `json:"interest_rate,omitempty"`
	InterestAmount float64 `json:"interest_amount,omitempty"`
}

// Installments returns the canonical 12-entry installment table for a base
// amount, ordered by count 1..12.
//
//   - 1..3: interest free, total == base
//   - 4..6: total = base*(1+lowTierRate) + issuerFee
//   - 7..12: total = base*(1+highTierRate) + issuerFee
//
// Pure function; the caller validates that base is positive.
func Installments(base float64) []Option {
	options := make([]Option, 0, MaxInstallments)
	for count := 1; count <= MaxInstallments; count++ {
		var rate float64
		switch {
		case count <= interestFreeMax:
			rate = 0
		case count <= lowTierMax:
			rate = lowTierRate
		default:
			rate = highTierRate
		}

		total := base
		interest := 0.0
		if rate > 0 {
			total = base*(1+rate) + issuerFee
			interest = total - base
		}

		options = append(options, Option{
			Count:          count,
			Value:          total / float64(count),
			TotalValue:     total,
			InterestFree:   rate == 0,
			InterestRate:   rate,
			InterestAmount: interest,
		})
	}
	return options
}
