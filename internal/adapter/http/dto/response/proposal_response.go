package response

import (
	"encoding/json"
	"time"

	"portfolio_studio/internal/domain/entities"
)

// ProposalResponse is the admin-facing view. The password hash never leaves
// the entity; RequiresPassword tells clients whether a session needs one.
type ProposalResponse struct {
	ID               string                  `json:"id"`
	Slug             string                  `json:"slug"`
	ClientName       string                  `json:"client_name"`
	Title            string                  `json:"title"`
	Objective        string                  `json:"objective,omitempty"`
	ScopeItems       []string                `json:"scope_items,omitempty"`
	Timeline         []entities.TimelineStep `json:"timeline,omitempty"`
	InvestmentValue  float64                 `json:"investment_value"`
	DeliveryDate     time.Time               `json:"delivery_date,omitzero"`
	PaymentTerms     []string                `json:"payment_terms,omitempty"`
	RescissionPolicy string                  `json:"rescission_policy,omitempty"`
	RequiresPassword bool                    `json:"requires_password"`
	Accepted         bool                    `json:"accepted"`
	AcceptedAt       *time.Time              `json:"accepted_at,omitempty"`
	Expired          bool                    `json:"expired"`
	ExpiresAt        time.Time               `json:"expires_at"`
	Version          int                     `json:"version"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:               p.ID,
		Slug:             p.Slug,
		ClientName:       p.ClientName,
		Title:            p.Title,
		Objective:        p.Objective,
		ScopeItems:       p.ScopeItems,
		Timeline:         p.Timeline,
		InvestmentValue:  p.InvestmentValue,
		DeliveryDate:     p.DeliveryDate,
		PaymentTerms:     p.PaymentTerms,
		RescissionPolicy: p.RescissionPolicy,
		RequiresPassword: p.RequiresPassword(),
		Accepted:         p.Accepted,
		AcceptedAt:       p.AcceptedAt,
		Expired:          p.IsExpired(time.Now()),
		ExpiresAt:        p.CreatedAt.AddDate(0, 0, entities.ProposalValidityDays),
		Version:          p.Version,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

type ProposalSessionResponse struct {
	Token    string           `json:"token"`
	Proposal ProposalResponse `json:"proposal"`
}

type SnapshotResponse struct {
	ID         string          `json:"id"`
	ProposalID string          `json:"proposal_id"`
	Version    int             `json:"version"`
	Content    json.RawMessage `json:"content"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FromSnapshot(s entities.ProposalSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:         s.ID,
		ProposalID: s.ProposalID,
		Version:    s.Version,
		Content:    s.Content,
		CreatedAt:  s.CreatedAt,
	}
}

func FromSnapshots(ss []entities.ProposalSnapshot) []SnapshotResponse {
	out := make([]SnapshotResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSnapshot(s))
	}
	return out
}

type AcceptanceResponse struct {
	ID              string    `json:"id"`
	ProposalID      string    `json:"proposal_id"`
	ClientName      string    `json:"client_name"`
	Document        string    `json:"document"`
	Email           string    `json:"email"`
	Role            string    `json:"role,omitempty"`
	ContentHash     string    `json:"content_hash"`
	IP              string    `json:"ip,omitempty"`
	UserAgent       string    `json:"user_agent,omitempty"`
	ProposalVersion int       `json:"proposal_version"`
	AcceptedAt      time.Time `json:"accepted_at"`
}

func FromAcceptance(a entities.ProposalAcceptance) AcceptanceResponse {
	return AcceptanceResponse{
		ID:              a.ID,
		ProposalID:      a.ProposalID,
		ClientName:      a.ClientName,
		Document:        a.Document,
		Email:           a.Email,
		Role:            a.Role,
		ContentHash:     a.ContentHash,
		IP:              a.IP,
		UserAgent:       a.UserAgent,
		ProposalVersion: a.ProposalVersion,
		AcceptedAt:      a.AcceptedAt,
	}
}
