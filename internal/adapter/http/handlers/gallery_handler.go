package handlers

import (
	"errors"
	"net/http"

	request "portfolio_studio/internal/adapter/http/dto/request"
	response "portfolio_studio/internal/adapter/http/dto/response"
	"portfolio_studio/internal/usecase"
	"portfolio_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGalleryPayload = pkg.NewDomainErrorSimple("INVALID_GALLERY_INPUT", "Invalid payload", http.StatusBadRequest)
	errMissingImageFile      = pkg.NewDomainErrorSimple("MISSING_IMAGE_FILE", "Multipart field 'file' is required", http.StatusBadRequest)
)

// GalleryHandler handles the admin image gallery: folder tree management and
// image upload, metadata, move, rename, delete and reorder.

type GalleryHandler struct {
	usecase usecase.IGalleryUseCase
}

func NewGalleryHandler(uc usecase.IGalleryUseCase) *GalleryHandler {
	return &GalleryHandler{usecase: uc}
}

func (h *GalleryHandler) CreateFolder(c *gin.Context) {
	var payload request.FolderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}

	folder, err := h.usecase.CreateFolder(c.Request.Context(), payload.Name, payload.ParentID)
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, folder)
}

func (h *GalleryHandler) ListFolders(c *gin.Context) {
	folders, err := h.usecase.ListFolders(c.Request.Context())
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BuildFolderTree(folders))
}

func (h *GalleryHandler) DeleteFolder(c *gin.Context) {
	if err := h.usecase.DeleteFolder(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage accepts a multipart form: the blob under 'file' plus optional
// folder_id, alt_text and description fields.
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingImageFile.HTTPStatus, errMissingImageFile.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errMissingImageFile.HTTPStatus, errMissingImageFile.ToHTTPError())
		return
	}
	defer file.Close()

	img, err := h.usecase.Upload(c.Request.Context(), usecase.UploadInput{
		FolderID:    c.PostForm("folder_id"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		AltText:     c.PostForm("alt_text"),
		Description: c.PostForm("description"),
		Body:        file,
	})
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromImage(img, h.usecase.PublicURL(img)))
}

func (h *GalleryHandler) GetImage(c *gin.Context) {
	img, err := h.usecase.GetImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImage(img, h.usecase.PublicURL(img)))
}

// ListImages lists a folder's images; no folder_id means the root.
func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.usecase.ListImages(c.Request.Context(), c.Query("folder_id"))
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, response.FromImage(img, h.usecase.PublicURL(img)))
	}
	c.JSON(http.StatusOK, out)
}

func (h *GalleryHandler) UpdateImageMetadata(c *gin.Context) {
	var payload request.ImageMetadataRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}

	img, err := h.usecase.UpdateImageMetadata(c.Request.Context(), c.Param("id"), payload.Name, payload.AltText, payload.Description)
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImage(img, h.usecase.PublicURL(img)))
}

func (h *GalleryHandler) MoveImage(c *gin.Context) {
	var payload request.ImageMoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}

	img, err := h.usecase.MoveImage(c.Request.Context(), c.Param("id"), payload.TargetFolderID)
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImage(img, h.usecase.PublicURL(img)))
}

func (h *GalleryHandler) RenameImage(c *gin.Context) {
	var payload request.ImageRenameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}

	img, err := h.usecase.RenameImage(c.Request.Context(), c.Param("id"), payload.FileName)
	if err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImage(img, h.usecase.PublicURL(img)))
}

func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	if err := h.usecase.DeleteImage(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GalleryHandler) ReorderImages(c *gin.Context) {
	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGalleryPayload.HTTPStatus, errInvalidGalleryPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ReorderImages(c.Request.Context(), c.Query("folder_id"), payload.OrderedIDs); err != nil {
		appErr := mapGalleryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapGalleryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGalleryInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFolderNotFound):
		return pkg.NewDomainErrorSimple("FOLDER_NOT_FOUND", "Folder not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImageNotFound):
		return pkg.NewDomainErrorSimple("IMAGE_NOT_FOUND", "Image not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
