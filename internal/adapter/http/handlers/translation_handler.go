package handlers

import (
	"net/http"

	request "portfolio_studio/internal/adapter/http/dto/request"
	response "portfolio_studio/internal/adapter/http/dto/response"
	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase"
	"portfolio_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTranslatePayload = pkg.NewDomainErrorSimple("INVALID_TRANSLATE_INPUT", "Invalid payload", http.StatusBadRequest)
)

// TranslationHandler exposes on-demand translation (cached) and visitor
// locale detection. Translation is best-effort: a provider failure returns
// the source text, never an error.

type TranslationHandler struct {
	usecase usecase.ITranslationUseCase
}

func NewTranslationHandler(uc usecase.ITranslationUseCase) *TranslationHandler {
	return &TranslationHandler{usecase: uc}
}

func (h *TranslationHandler) Translate(c *gin.Context) {
	var payload request.TranslateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTranslatePayload.HTTPStatus, errInvalidTranslatePayload.ToHTTPError())
		return
	}

	source := payload.SourceLocale
	if source == "" {
		source = entities.LocalePTBR
	}

	text := h.usecase.Translate(c.Request.Context(), payload.Text, source, payload.TargetLocale)
	c.JSON(http.StatusOK, response.TranslateResponse{
		Text:         text,
		SourceLocale: source,
		TargetLocale: payload.TargetLocale,
	})
}

func (h *TranslationHandler) DetectLocale(c *gin.Context) {
	locale := h.usecase.DetectLocale(c.Request.Context(), c.ClientIP(), c.GetHeader("Accept-Language"))
	c.JSON(http.StatusOK, response.LocaleResponse{Locale: locale})
}
