package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/server/http/dto"
)

// AdminHandler serves the shop owner's queue.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Queue handles GET /admin/queue?search=Q.
func (h *AdminHandler) Queue(c *gin.Context) {
	entries, stats, err := h.facade.AdminQueue(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.QueueResponse{
		Entries: make([]dto.QueueEntryResponse, 0, len(entries)),
		Stats: dto.QueueStatsResponse{
			PendingEntries: stats.PendingEntries,
			TotalDocuments: stats.TotalDocuments,
		},
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toQueueEntryResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

// Complete handles POST /admin/queue/:id/complete.
func (h *AdminHandler) Complete(c *gin.Context) {
	if err := h.facade.CompleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Verify handles POST /admin/queue/:id/verify. A mismatch answers 422
// without revealing the stored code.
func (h *AdminHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == nil {
		respondError(c, domainErrors.ErrInvalidCode)
		return
	}

	result, err := h.facade.VerifyEntry(c.Request.Context(), c.Param("id"), *req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	if result != model.VerifyResultVerified {
		c.JSON(http.StatusUnprocessableEntity, dto.VerifyResponse{Verified: false, Result: string(result)})
		return
	}
	c.JSON(http.StatusOK, dto.VerifyResponse{Verified: true, Result: string(result)})
}

// Reject handles POST /admin/queue/:id/reject.
func (h *AdminHandler) Reject(c *gin.Context) {
	if err := h.facade.RejectEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toQueueEntryResponse(e model.QueueEntry) dto.QueueEntryResponse {
	docs := make([]dto.DocumentResponse, 0, len(e.Documents))
	for _, d := range e.Documents {
		docs = append(docs, dto.DocumentResponse{
			ID:          d.ID,
			Name:        d.Name,
			Type:        string(d.Type),
			Amount:      d.Amount,
			Copies:      d.Copies,
			Description: d.Description,
		})
	}
	return dto.QueueEntryResponse{
		ID:           e.ID,
		DisplayLabel: e.DisplayLabel,
		QueueNumber:  e.QueueNumber,
		ShopID:       e.ShopID,
		State:        string(e.State),
		Documents:    docs,
		TotalAmount:  e.TotalAmount(),
	}
}
