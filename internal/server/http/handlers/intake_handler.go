package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/server/http/dto"
	"github.com/polkiloo/printdesk/internal/usecase"
)

// IdempotencyHeader lets clients deduplicate retried submissions.
const IdempotencyHeader = "Idempotency-Key"

// IntakeHandler exposes the shared intake store.
type IntakeHandler struct {
	facade IntakeFacade
}

// NewIntakeHandler constructs IntakeHandler.
func NewIntakeHandler(facade IntakeFacade) *IntakeHandler {
	return &IntakeHandler{facade: facade}
}

// Submit handles POST /send-to-admin. The payload is stored as received.
func (h *IntakeHandler) Submit(c *gin.Context) {
	var req dto.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed submission payload")
		return
	}

	key := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
	if key == "" {
		key = req.IdempotencyKey
	}

	files := make([]model.SubmittedFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, model.SubmittedFile{
			ID:          string(f.ID),
			Name:        f.Name,
			Color:       model.ColorMode(f.Color),
			Copies:      f.Copies,
			Description: f.Description,
			ExactPages:  f.ExactPages,
		})
	}

	sub, created, err := h.facade.SubmitToIntake(c.Request.Context(), usecase.SubmissionInput{
		Files:            files,
		ShopID:           req.ShopID,
		VerificationCode: req.VerificationCode,
		IdempotencyKey:   key,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionResponse{Success: true, ID: sub.ID, Created: created})
}

// List handles GET /send-to-admin.
func (h *IntakeHandler) List(c *gin.Context) {
	subs, err := h.facade.IntakeDocuments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.IntakeDocumentsResponse{Documents: make([]dto.IntakeDocument, 0, len(subs))}
	for _, s := range subs {
		resp.Documents = append(resp.Documents, toIntakeDocument(s))
	}
	c.JSON(http.StatusOK, resp)
}

func toIntakeDocument(s model.Submission) dto.IntakeDocument {
	files := make([]dto.SubmittedFile, 0, len(s.Files))
	for _, f := range s.Files {
		files = append(files, dto.SubmittedFile{
			ID:          dto.FileID(f.ID),
			Name:        f.Name,
			Color:       string(f.Color),
			Copies:      f.Copies,
			Description: f.Description,
			ExactPages:  f.ExactPages,
		})
	}
	return dto.IntakeDocument{
		ID:               s.ID,
		Seq:              s.Seq,
		Files:            files,
		ShopID:           s.ShopID,
		VerificationCode: s.VerificationCode,
		State:            string(s.State),
		Timestamp:        s.Timestamp,
	}
}
