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
	ErrIncorrectPassword       = errors.New("incorrect proposal password")
	ErrConsentRequired         = errors.New("acceptance consent is required")
	ErrInvalidSessionToken     = errors.New("invalid proposal session token")
	ErrProposalExpired         = errors.New("proposal expired")
	ErrProposalAlreadyAccepted = errors.New("proposal already accepted")
	ErrInvalidAcceptanceInput  = errors.New("invalid acceptance input")
)

// DefaultSessionTTL bounds how long a minted session token stays valid. The
// browser keeps it in per-tab storage, so the TTL only caps abandoned tabs.
const DefaultSessionTTL = 24 * time.Hour

// AcceptanceInput carries the legal identity fields from the acceptance form.

type AcceptanceInput struct {
	ClientName string
	Document   string
	Email      string
	Role       string
	HasConsent bool
	IP         string
	UserAgent  string
}

// IProposalAccessUseCase drives the client-facing proposal lifecycle:
// unauthenticated view -> session established -> accepted (terminal).

type IProposalAccessUseCase interface {
	View(ctx context.Context, slug string) (entities.Proposal, error)
	CreateSession(ctx context.Context, slug, password, ip, userAgent string) (string, entities.Proposal, error)
	Accept(ctx context.Context, token string, in AcceptanceInput) (entities.ProposalAcceptance, error)
	GetAcceptance(ctx context.Context, proposalID string) (entities.ProposalAcceptance, error)
}

type ProposalAccessUseCase struct {
	proposals   interfaces.IProposalRepository
	acceptances interfaces.IAcceptanceRepository
	tokens      interfaces.ISessionTokens
	sessionTTL  time.Duration
}

var _ IProposalAccessUseCase = (*ProposalAccessUseCase)(nil)

func NewProposalAccessUseCase(
	proposals interfaces.IProposalRepository,
	acceptances interfaces.IAcceptanceRepository,
	tokens interfaces.ISessionTokens,
) *ProposalAccessUseCase {
	return &ProposalAccessUseCase{
		proposals:   proposals,
		acceptances: acceptances,
		tokens:      tokens,
		sessionTTL:  DefaultSessionTTL,
	}
}

func (u *ProposalAccessUseCase) View(ctx context.Context, slug string) (entities.Proposal, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	p, err := u.proposals.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// CreateSession mints a session token for one proposal. Proposals without an
// access password establish the session silently; protected ones require the
// matching password. A wrong password is reported without further detail.
// Expiry never blocks session creation, only new acceptances.
func (u *ProposalAccessUseCase) CreateSession(ctx context.Context, slug, password, ip, userAgent string) (string, entities.Proposal, error) {
	p, err := u.View(ctx, slug)
	if err != nil {
		return "", entities.Proposal{}, err
	}

	if p.RequiresPassword() {
		if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
			log.Printf("[proposal][access] incorrect password proposal_id=%s", p.ID)
			return "", entities.Proposal{}, ErrIncorrectPassword
		}
	}

	token, err := u.tokens.MintProposalToken(p.ID, u.sessionTTL)
	if err != nil {
		return "", entities.Proposal{}, err
	}
	// IP and user agent are audit metadata only; both may be empty.
	log.Printf("[proposal][access] session established proposal_id=%s ip=%q ua_len=%d", p.ID, ip, len(userAgent))
	return token, p, nil
}

// Accept registers the acceptance record and flags the proposal as accepted.
// Consent is checked before anything else touches the network or storage.
func (u *ProposalAccessUseCase) Accept(ctx context.Context, token string, in AcceptanceInput) (entities.ProposalAcceptance, error) {
	if !in.HasConsent {
		return entities.ProposalAcceptance{}, ErrConsentRequired
	}

	proposalID, err := u.tokens.ParseProposalToken(strings.TrimSpace(token))
	if err != nil {
		return entities.ProposalAcceptance{}, ErrInvalidSessionToken
	}

	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.Document) == "" || strings.TrimSpace(in.Email) == "" {
		return entities.ProposalAcceptance{}, ErrInvalidAcceptanceInput
	}

	p, err := u.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return entities.ProposalAcceptance{}, err
	}
	if p.ID == "" {
		return entities.ProposalAcceptance{}, ErrProposalNotFound
	}
	if p.Accepted {
		return entities.ProposalAcceptance{}, ErrProposalAlreadyAccepted
	}
	if p.IsExpired(time.Now().UTC()) {
		return entities.ProposalAcceptance{}, ErrProposalExpired
	}

	hash, err := p.ContentHash()
	if err != nil {
		return entities.ProposalAcceptance{}, err
	}

	now := time.Now().UTC()
	record := entities.ProposalAcceptance{
		ID:              uuid.NewString(),
		ProposalID:      p.ID,
		ClientName:      strings.TrimSpace(in.ClientName),
		Document:        strings.TrimSpace(in.Document),
		Email:           strings.TrimSpace(in.Email),
		Role:            strings.TrimSpace(in.Role),
		ContentHash:     hash,
		IP:              in.IP,
		UserAgent:       in.UserAgent,
		ProposalVersion: p.Version,
		AcceptedAt:      now,
	}

	created, err := u.acceptances.Create(ctx, record)
	if err != nil {
		// The conditional write is the final accept-once arbiter; a lost race
		// reads exactly like a repeat submission.
		existing, getErr := u.acceptances.GetByProposalID(ctx, p.ID)
		if getErr == nil && existing.ID != "" {
			return entities.ProposalAcceptance{}, ErrProposalAlreadyAccepted
		}
		return entities.ProposalAcceptance{}, err
	}

	if _, err := u.proposals.SetAccepted(ctx, p.ID, now); err != nil {
		// The acceptance record is the source of truth; the flag is derived.
		log.Printf("[proposal][access] accepted flag update failed proposal_id=%s err=%v", p.ID, err)
	}

	log.Printf("[proposal][access] accepted proposal_id=%s version=%d", p.ID, p.Version)
	return created, nil
}

func (u *ProposalAccessUseCase) GetAcceptance(ctx context.Context, proposalID string) (entities.ProposalAcceptance, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.ProposalAcceptance{}, ErrInvalidProposalID
	}
	a, err := u.acceptances.GetByProposalID(ctx, proposalID)
	if err != nil {
		return entities.ProposalAcceptance{}, err
	}
	if a.ID == "" {
		return entities.ProposalAcceptance{}, ErrProposalNotFound
	}
	return a, nil
}
