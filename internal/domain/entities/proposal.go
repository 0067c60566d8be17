package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// ProposalValidityDays is how long a proposal stays active after creation.
// Expiry is always computed from CreatedAt; it is never persisted.
const ProposalValidityDays = 10

// TimelineStep is one ordered entry of a proposal's execution timeline.
type TimelineStep struct {
	Label  string `json:"label"`
	Period string `json:"period"`
}

// Proposal is the commercial proposal persisted by the back-office.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug
//
// Lifecycle notes:
//   - Version starts at 1 and increments on every admin edit; the pre-edit
//     content is archived as a ProposalSnapshot before the write.
//   - Accepted is set exactly once, by the acceptance flow.
//   - PasswordHash is a bcrypt hash of the optional access password; empty
//     means the proposal is open and sessions are minted without a prompt.

type Proposal struct {
	ID               string         `json:"id"`
	Slug             string         `json:"slug"`
	ClientName       string         `json:"client_name"`
	Title            string         `json:"title"`
	Objective        string         `json:"objective"`
	ScopeItems       []string       `json:"scope_items"`
	Timeline         []TimelineStep `json:"timeline"`
	InvestmentValue  float64        `json:"investment_value"`
	DeliveryDate     time.Time      `json:"delivery_date"`
	PaymentTerms     []string       `json:"payment_terms"`
	RescissionPolicy string         `json:"rescission_policy"`
	PasswordHash     string         `json:"-"`
	Accepted         bool           `json:"accepted"`
	AcceptedAt       *time.Time     `json:"accepted_at,omitempty"`
	Version          int            `json:"version"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// RequiresPassword reports whether a session can only be created with the
// proposal's access password.
func (p Proposal) RequiresPassword() bool {
	return p.PasswordHash != ""
}

// IsExpired reports whether the proposal passed its validity window at the
// given instant. Pure wall-clock arithmetic, no backend round-trip.
func (p Proposal) IsExpired(now time.Time) bool {
	return now.After(p.CreatedAt.AddDate(0, 0, ProposalValidityDays))
}

// proposalContent is the portion of a proposal that clients actually sign.
// Identity, audit and lifecycle fields stay out so the hash is stable across
// acceptance and version bumps of unrelated metadata.
type proposalContent struct {
	ClientName       string         `json:"client_name"`
	Title            string         `json:"title"`
	Objective        string         `json:"objective"`
	ScopeItems       []string       `json:"scope_items"`
	Timeline         []TimelineStep `json:"timeline"`
	InvestmentValue  float64        `json:"investment_value"`
	DeliveryDate     time.Time      `json:"delivery_date"`
	PaymentTerms     []string       `json:"payment_terms"`
	RescissionPolicy string         `json:"rescission_policy"`
}

// ContentJSON serializes the signable content, used both for snapshots and
// for the acceptance content hash.
func (p Proposal) ContentJSON() (json.RawMessage, error) {
	return json.Marshal(proposalContent{
		ClientName:       p.ClientName,
		Title:            p.Title,
		Objective:        p.Objective,
		ScopeItems:       p.ScopeItems,
		Timeline:         p.Timeline,
		InvestmentValue:  p.InvestmentValue,
		DeliveryDate:     p.DeliveryDate,
		PaymentTerms:     p.PaymentTerms,
		RescissionPolicy: p.RescissionPolicy,
	})
}

// ContentHash returns the hex SHA-256 of the signable content.
func (p Proposal) ContentHash() (string, error) {
	b, err := p.ContentJSON()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// ProposalSnapshot is the immutable pre-edit copy archived before every
// overwriting update of an already-created proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id

type ProposalSnapshot struct {
	ID         string          `json:"id"`
	ProposalID string          `json:"proposal_id"`
	Version    int             `json:"version"`
	Content    json.RawMessage `json:"content"`
	CreatedAt  time.Time       `json:"created_at"`
}
