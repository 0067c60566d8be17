package request

import "time"

type TimelineStepRequest struct {
	Label  string `json:"label" binding:"required"`
	Period string `json:"period"`
}

// ProposalRequest is the admin payload for creating or editing a proposal.
// Slug is optional on create; a blank slug is derived from the title.
type ProposalRequest struct {
	ClientName       string                `json:"client_name" binding:"required"`
	Title            string                `json:"title" binding:"required"`
	Slug             string                `json:"slug"`
	Objective        string                `json:"objective"`
	ScopeItems       []string              `json:"scope_items"`
	Timeline         []TimelineStepRequest `json:"timeline"`
	InvestmentValue  float64               `json:"investment_value" binding:"required"`
	DeliveryDate     time.Time             `json:"delivery_date"`
	PaymentTerms     []string              `json:"payment_terms"`
	RescissionPolicy string                `json:"rescission_policy"`
	Password         string                `json:"password"`
}

// ProposalUpdateRequest carries the version the editor loaded so concurrent
// edits are rejected instead of silently overwritten.
type ProposalUpdateRequest struct {
	ProposalRequest
	ExpectedVersion int `json:"expected_version" binding:"required"`
}

type ProposalSessionRequest struct {
	Password string `json:"password"`
}

type ProposalAcceptRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Document   string `json:"document" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Role       string `json:"role"`
	HasConsent bool   `json:"has_consent"`
}
