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
	errInvalidContentPayload = pkg.NewDomainErrorSimple("INVALID_CONTENT_INPUT", "Invalid payload", http.StatusBadRequest)
)

// ContentHandler handles portfolio projects and blog posts. Public reads are
// localized: an explicit ?locale= wins, otherwise the visitor's IP and
// Accept-Language decide.

type ContentHandler struct {
	usecase     usecase.IContentUseCase
	translation usecase.ITranslationUseCase
}

func NewContentHandler(uc usecase.IContentUseCase, translation usecase.ITranslationUseCase) *ContentHandler {
	return &ContentHandler{usecase: uc, translation: translation}
}

func (h *ContentHandler) resolveLocale(c *gin.Context) string {
	if locale := c.Query("locale"); locale == entities.LocalePTBR || locale == entities.LocaleENUS {
		return locale
	}
	return h.translation.DetectLocale(c.Request.Context(), c.ClientIP(), c.GetHeader("Accept-Language"))
}

func (h *ContentHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.CreateProject(c.Request.Context(), toProjectInput(payload))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project, entities.LocalePTBR))
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project, entities.LocalePTBR))
}

// GetPublishedProject is the public, localized read by slug.
func (h *ContentHandler) GetPublishedProject(c *gin.Context) {
	project, err := h.usecase.GetProjectBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil || !project.Published {
		appErr := mapContentError(usecase.ErrContentNotFound)
		if err != nil {
			appErr = mapContentError(err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project, h.resolveLocale(c)))
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context(), false)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects, entities.LocalePTBR))
}

func (h *ContentHandler) ListPublishedProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context(), true)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects, h.resolveLocale(c)))
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateProject(c.Request.Context(), c.Param("id"), toProjectInput(payload))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project, entities.LocalePTBR))
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ReorderProjects(c *gin.Context) {
	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ReorderProjects(c.Request.Context(), payload.OrderedIDs); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	var payload request.PostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	post, err := h.usecase.CreatePost(c.Request.Context(), toPostInput(payload))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPost(post, entities.LocalePTBR))
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	post, err := h.usecase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPost(post, entities.LocalePTBR))
}

func (h *ContentHandler) GetPublishedPost(c *gin.Context) {
	post, err := h.usecase.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil || !post.Published {
		appErr := mapContentError(usecase.ErrContentNotFound)
		if err != nil {
			appErr = mapContentError(err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPost(post, h.resolveLocale(c)))
}

func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.usecase.ListPosts(c.Request.Context(), false)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPosts(posts, entities.LocalePTBR))
}

func (h *ContentHandler) ListPublishedPosts(c *gin.Context) {
	posts, err := h.usecase.ListPosts(c.Request.Context(), true)
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPosts(posts, h.resolveLocale(c)))
}

func (h *ContentHandler) UpdatePost(c *gin.Context) {
	var payload request.PostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContentPayload.HTTPStatus, errInvalidContentPayload.ToHTTPError())
		return
	}

	post, err := h.usecase.UpdatePost(c.Request.Context(), c.Param("id"), toPostInput(payload))
	if err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPost(post, entities.LocalePTBR))
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	if err := h.usecase.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func toProjectInput(payload request.ProjectRequest) usecase.ProjectInput {
	return usecase.ProjectInput{
		Title:                   payload.Title,
		Slug:                    payload.Slug,
		TitleTranslations:       payload.TitleTranslations,
		Description:             payload.Description,
		DescriptionTranslations: payload.DescriptionTranslations,
		CoverImagePath:          payload.CoverImagePath,
		Tags:                    payload.Tags,
		Published:               payload.Published,
	}
}

func toPostInput(payload request.PostRequest) usecase.PostInput {
	return usecase.PostInput{
		Title:             payload.Title,
		Slug:              payload.Slug,
		TitleTranslations: payload.TitleTranslations,
		Body:              payload.Body,
		BodyTranslations:  payload.BodyTranslations,
		CoverImagePath:    payload.CoverImagePath,
		Published:         payload.Published,
	}
}

func mapContentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContentID), errors.Is(err, usecase.ErrInvalidContentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContentSlugTaken):
		return pkg.NewDomainErrorSimple("SLUG_TAKEN", "An entry with this slug already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrContentNotFound):
		return pkg.NewDomainErrorSimple("CONTENT_NOT_FOUND", "Content not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
