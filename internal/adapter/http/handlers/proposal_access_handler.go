package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "portfolio_studio/internal/adapter/http/dto/request"
	response "portfolio_studio/internal/adapter/http/dto/response"
	"portfolio_studio/internal/usecase"
	"portfolio_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAccessPayload = pkg.NewDomainErrorSimple("INVALID_ACCESS_INPUT", "Invalid payload", http.StatusBadRequest)
	errMissingSessionToken  = pkg.NewDomainErrorSimple("MISSING_SESSION_TOKEN", "Missing session token", http.StatusUnauthorized)
)

// ProposalAccessHandler handles the client-facing proposal lifecycle: viewing
// a proposal by its shared link, opening a session and signing acceptance.

type ProposalAccessHandler struct {
	usecase usecase.IProposalAccessUseCase
}

func NewProposalAccessHandler(uc usecase.IProposalAccessUseCase) *ProposalAccessHandler {
	return &ProposalAccessHandler{usecase: uc}
}

func (h *ProposalAccessHandler) ViewProposal(c *gin.Context) {
	proposal, err := h.usecase.View(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapProposalAccessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// CreateSession exchanges the proposal password (when one is set) for a
// short-lived session token scoped to this proposal.
func (h *ProposalAccessHandler) CreateSession(c *gin.Context) {
	var payload request.ProposalSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccessPayload.HTTPStatus, errInvalidAccessPayload.ToHTTPError())
		return
	}

	token, proposal, err := h.usecase.CreateSession(c.Request.Context(), c.Param("slug"), payload.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		appErr := mapProposalAccessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ProposalSessionResponse{
		Token:    token,
		Proposal: response.FromProposal(proposal),
	})
}

func (h *ProposalAccessHandler) AcceptProposal(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(errMissingSessionToken.HTTPStatus, errMissingSessionToken.ToHTTPError())
		return
	}

	var payload request.ProposalAcceptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccessPayload.HTTPStatus, errInvalidAccessPayload.ToHTTPError())
		return
	}

	acceptance, err := h.usecase.Accept(c.Request.Context(), token, usecase.AcceptanceInput{
		ClientName: payload.ClientName,
		Document:   payload.Document,
		Email:      payload.Email,
		Role:       payload.Role,
		HasConsent: payload.HasConsent,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	if err != nil {
		appErr := mapProposalAccessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAcceptance(acceptance))
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func mapProposalAccessError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAcceptanceInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncorrectPassword):
		return pkg.NewDomainErrorSimple("INCORRECT_PASSWORD", "Incorrect password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidSessionToken):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_TOKEN", "Invalid or expired session token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrConsentRequired):
		return pkg.NewDomainErrorSimple("CONSENT_REQUIRED", "Explicit consent is required to accept", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProposalExpired):
		return pkg.NewDomainErrorSimple("PROPOSAL_EXPIRED", "Proposal validity has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrProposalAlreadyAccepted):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_ACCEPTED", "Proposal has already been accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
