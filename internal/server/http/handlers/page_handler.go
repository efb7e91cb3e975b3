package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/server/http/dto"
)

// PageHandler serves exact PDF page counts.
type PageHandler struct {
	facade PageFacade
	logger *slog.Logger
}

// NewPageHandler constructs PageHandler.
func NewPageHandler(facade PageFacade, logger *slog.Logger) *PageHandler {
	return &PageHandler{facade: facade, logger: logger}
}

// Count handles POST /count-pages with the document in form field "pdf".
func (h *PageHandler) Count(c *gin.Context) {
	header, err := c.FormFile("pdf")
	if tooLarge(err) {
		uploadTooLarge(c)
		return
	}
	if err != nil {
		badRequest(c, "No file uploaded")
		return
	}
	f, err := header.Open()
	if err != nil {
		badRequest(c, "No file uploaded")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		badRequest(c, "No file uploaded")
		return
	}

	pages, err := h.facade.CountPages(data)
	if errors.Is(err, domainErrors.ErrUnsupportedDocument) {
		respondError(c, err)
		return
	}
	if err != nil {
		h.logger.Error("count pages failed",
			slog.String("file", header.Filename),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to process PDF"})
		return
	}

	c.JSON(http.StatusOK, dto.PageCountResponse{PageCount: pages})
}
