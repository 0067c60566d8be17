package entities

import "time"

// ProposalAcceptance is the signed snapshot captured when a client accepts a
// proposal. Created exactly once per proposal and immutable thereafter; the
// uniqueness is enforced with a conditional write keyed by proposal_id.
//
// Storage model (DynamoDB):
//   - PK: proposal_id (one acceptance per proposal)

type ProposalAcceptance struct {
	ID              string    `json:"id"`
	ProposalID      string    `json:"proposal_id"`
	ClientName      string    `json:"client_name"`
	Document        string    `json:"document"` // CPF or CNPJ
	Email           string    `json:"email"`
	Role            string    `json:"role,omitempty"`
	ContentHash     string    `json:"content_hash"`
	IP              string    `json:"ip,omitempty"`
	UserAgent       string    `json:"user_agent,omitempty"`
	ProposalVersion int       `json:"proposal_version"`
	AcceptedAt      time.Time `json:"accepted_at"`
}
