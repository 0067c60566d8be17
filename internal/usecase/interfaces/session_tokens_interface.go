package interfaces

import (
	"time"

	"portfolio_studio/internal/domain/entities"
)

// ISessionTokens mints and parses the opaque credentials used by the service:
// proposal session tokens (read/accept rights to one proposal) and admin user
// tokens (role-gated back-office access).

type ISessionTokens interface {
	MintProposalToken(proposalID string, ttl time.Duration) (string, error)
	ParseProposalToken(token string) (proposalID string, err error)

	MintUserToken(u entities.User, ttl time.Duration) (string, error)
	ParseUserToken(token string) (userID string, roles []entities.Role, err error)
}
