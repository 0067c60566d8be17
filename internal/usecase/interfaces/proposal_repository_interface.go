package interfaces

import (
	"context"
	"time"

	"portfolio_studio/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Uniqueness of slug is the repository's job (slug-index lookup before a
// conditional put); optimistic concurrency on Update uses the version the
// editor loaded as a condition, so a stale write surfaces as a zero-value
// result instead of silently winning.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetBySlug(ctx context.Context, slug string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal, expectedVersion int) (entities.Proposal, error)
	SetAccepted(ctx context.Context, id string, at time.Time) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}

// IProposalSnapshotRepository archives pre-edit proposal content.

type IProposalSnapshotRepository interface {
	Create(ctx context.Context, s entities.ProposalSnapshot) (entities.ProposalSnapshot, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalSnapshot, error)
}
