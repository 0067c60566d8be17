package interfaces

import (
	"context"

	"portfolio_studio/internal/domain/entities"
)

// IAcceptanceRepository abstracts DynamoDB persistence for ProposalAcceptance.
//
// Create must be conditional on no existing record for the proposal so that
// the accept-once rule holds even when two accept calls race.

type IAcceptanceRepository interface {
	Create(ctx context.Context, a entities.ProposalAcceptance) (entities.ProposalAcceptance, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.ProposalAcceptance, error)
}
