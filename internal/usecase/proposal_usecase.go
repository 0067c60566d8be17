package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrProposalNotFound        = errors.New("proposal not found")
	ErrInvalidProposalID       = errors.New("invalid proposal id")
	ErrInvalidProposalInput    = errors.New("invalid proposal input")
	ErrProposalSlugTaken       = errors.New("proposal slug already exists")
	ErrProposalVersionConflict = errors.New("proposal was modified by another session")
	ErrSnapshotFailed          = errors.New("proposal snapshot failed")
)

// ProposalInput carries the editable proposal content from the admin forms.

type ProposalInput struct {
	ClientName       string
	Title            string
	Slug             string
	Objective        string
	ScopeItems       []string
	Timeline         []entities.TimelineStep
	InvestmentValue  float64
	DeliveryDate     time.Time
	PaymentTerms     []string
	RescissionPolicy string
	Password         string
}

// IProposalUseCase exposes the admin-side proposal operations.
//
// Editing an already-created proposal is snapshot-then-mutate: the pre-edit
// content is archived first and the update is not attempted when archiving
// fails, so version history can never be lost silently.

type IProposalUseCase interface {
	Create(ctx context.Context, in ProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetBySlug(ctx context.Context, slug string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	Update(ctx context.Context, id string, expectedVersion int, in ProposalInput) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
	ListSnapshots(ctx context.Context, proposalID string) ([]entities.ProposalSnapshot, error)
}

type ProposalUseCase struct {
	repo      interfaces.IProposalRepository
	snapshots interfaces.IProposalSnapshotRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, snapshots interfaces.IProposalSnapshotRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, snapshots: snapshots}
}

func (u *ProposalUseCase) Create(ctx context.Context, in ProposalInput) (entities.Proposal, error) {
	if err := validateProposalInput(in); err != nil {
		return entities.Proposal{}, err
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		return entities.Proposal{}, ErrInvalidProposalInput
	}

	if existing, err := u.repo.GetBySlug(ctx, slug); err != nil {
		return entities.Proposal{}, err
	} else if existing.ID != "" {
		return entities.Proposal{}, ErrProposalSlugTaken
	}

	passwordHash := ""
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.Proposal{}, err
		}
		passwordHash = string(h)
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:               uuid.NewString(),
		Slug:             slug,
		ClientName:       strings.TrimSpace(in.ClientName),
		Title:            strings.TrimSpace(in.Title),
		Objective:        in.Objective,
		ScopeItems:       in.ScopeItems,
		Timeline:         in.Timeline,
		InvestmentValue:  in.InvestmentValue,
		DeliveryDate:     in.DeliveryDate,
		PaymentTerms:     in.PaymentTerms,
		RescissionPolicy: in.RescissionPolicy,
		PasswordHash:     passwordHash,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, p)
}

// Update archives the current content, then writes the new content with the
// version counter bumped by one. The write carries the version the editor
// loaded; a concurrent edit makes it fail with ErrProposalVersionConflict.
func (u *ProposalUseCase) Update(ctx context.Context, id string, expectedVersion int, in ProposalInput) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	if err := validateProposalInput(in); err != nil {
		return entities.Proposal{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if current.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	if expectedVersion != 0 && expectedVersion != current.Version {
		return entities.Proposal{}, ErrProposalVersionConflict
	}

	// Snapshot first. If archiving the pre-edit content fails the update is
	// aborted; losing history silently is worse than failing the edit.
	content, err := current.ContentJSON()
	if err != nil {
		return entities.Proposal{}, err
	}
	snap := entities.ProposalSnapshot{
		ID:         uuid.NewString(),
		ProposalID: current.ID,
		Version:    current.Version,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := u.snapshots.Create(ctx, snap); err != nil {
		log.Printf("[proposal][usecase] snapshot failed proposal_id=%s version=%d err=%v", current.ID, current.Version, err)
		return entities.Proposal{}, ErrSnapshotFailed
	}

	updated := current
	updated.ClientName = strings.TrimSpace(in.ClientName)
	updated.Title = strings.TrimSpace(in.Title)
	updated.Objective = in.Objective
	updated.ScopeItems = in.ScopeItems
	updated.Timeline = in.Timeline
	updated.InvestmentValue = in.InvestmentValue
	updated.DeliveryDate = in.DeliveryDate
	updated.PaymentTerms = in.PaymentTerms
	updated.RescissionPolicy = in.RescissionPolicy
	updated.Version = current.Version + 1
	updated.UpdatedAt = time.Now().UTC()

	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.Proposal{}, err
		}
		updated.PasswordHash = string(h)
	}

	res, err := u.repo.Update(ctx, updated, current.Version)
	if err != nil {
		return entities.Proposal{}, err
	}
	if res.ID == "" {
		return entities.Proposal{}, ErrProposalVersionConflict
	}
	log.Printf("[proposal][usecase] updated proposal_id=%s version=%d", res.ID, res.Version)
	return res, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) GetBySlug(ctx context.Context, slug string) (entities.Proposal, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	return u.repo.List(ctx)
}

func (u *ProposalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProposalNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *ProposalUseCase) ListSnapshots(ctx context.Context, proposalID string) ([]entities.ProposalSnapshot, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidProposalID
	}
	return u.snapshots.ListByProposalID(ctx, proposalID)
}

func validateProposalInput(in ProposalInput) error {
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.Title) == "" {
		return ErrInvalidProposalInput
	}
	if in.InvestmentValue <= 0 {
		return ErrInvalidProposalInput
	}
	return nil
}
