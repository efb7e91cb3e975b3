package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/server/http/dto"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidShop),
		errors.Is(err, domainErrors.ErrInvalidFile),
		errors.Is(err, domainErrors.ErrInvalidCode),
		errors.Is(err, domainErrors.ErrUnsupportedDocument):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrEmptyOrder),
		errors.Is(err, domainErrors.ErrOrderFinalized),
		errors.Is(err, domainErrors.ErrOrderNotFinalized),
		errors.Is(err, domainErrors.ErrPaymentInProgress),
		errors.Is(err, domainErrors.ErrAlreadyPaid),
		errors.Is(err, domainErrors.ErrNotVerifying):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrCodeMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status. Internal errors are recorded on
// the context for the request logger and never echoed to the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}

// tooLarge reports whether err came from a body read past the upload cap.
func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func uploadTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "upload too large"})
}
