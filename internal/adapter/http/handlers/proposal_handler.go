package handlers

import (
	"errors"
	"net/http"

	request "portfolio_studio/internal/adapter/http/dto/request"
	response "portfolio_studio/internal/adapter/http/dto/response"
	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase"
	"portfolio_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
)

// ProposalHandler handles the admin-side proposal operations: CRUD, version
// history and the acceptance record lookup.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
	access  usecase.IProposalAccessUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase, access usecase.IProposalAccessUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc, access: access}
}

func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), toProposalInput(payload))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	proposals, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// UpdateProposal requires the version the editor loaded; a stale version is
// rejected with 409 so concurrent edits never overwrite each other.
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ExpectedVersion, toProposalInput(payload.ProposalRequest))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProposalHandler) ListSnapshots(c *gin.Context) {
	snapshots, err := h.usecase.ListSnapshots(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshots(snapshots))
}

func (h *ProposalHandler) GetAcceptance(c *gin.Context) {
	acceptance, err := h.access.GetAcceptance(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalAccessError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAcceptance(acceptance))
}

func toProposalInput(payload request.ProposalRequest) usecase.ProposalInput {
	timeline := make([]entities.TimelineStep, 0, len(payload.Timeline))
	for _, step := range payload.Timeline {
		timeline = append(timeline, entities.TimelineStep{Label: step.Label, Period: step.Period})
	}
	return usecase.ProposalInput{
		ClientName:       payload.ClientName,
		Title:            payload.Title,
		Slug:             payload.Slug,
		Objective:        payload.Objective,
		ScopeItems:       payload.ScopeItems,
		Timeline:         timeline,
		InvestmentValue:  payload.InvestmentValue,
		DeliveryDate:     payload.DeliveryDate,
		PaymentTerms:     payload.PaymentTerms,
		RescissionPolicy: payload.RescissionPolicy,
		Password:         payload.Password,
	}
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidProposalInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalSlugTaken):
		return pkg.NewDomainErrorSimple("PROPOSAL_SLUG_TAKEN", "A proposal with this slug already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalVersionConflict):
		return pkg.NewDomainErrorSimple("PROPOSAL_VERSION_CONFLICT", "Proposal was modified by someone else, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrSnapshotFailed):
		return pkg.NewDomainError("SNAPSHOT_FAILED", "Could not archive the current proposal version", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
