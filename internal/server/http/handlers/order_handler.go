package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/server/http/dto"
	"github.com/polkiloo/printdesk/internal/usecase"
)

// OrderHandler manages order drafts from upload to payment.
type OrderHandler struct {
	facade       OrderFacade
	pricePerPage int
}

// NewOrderHandler constructs OrderHandler. pricePerPage is used to render
// per-file costs.
func NewOrderHandler(facade OrderFacade, pricePerPage int) *OrderHandler {
	return &OrderHandler{facade: facade, pricePerPage: pricePerPage}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ShopID) == "" {
		badRequest(c, "shopId is required")
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req.ShopID)
	h.respond(c, http.StatusCreated, order, err)
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, order, err)
}

// AddFiles handles POST /orders/:id/files. Every "files" part gets the
// same colorMode and copies.
func (h *OrderHandler) AddFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if tooLarge(err) {
		uploadTooLarge(c)
		return
	}
	if err != nil {
		badRequest(c, "multipart form expected")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		badRequest(c, "no files uploaded")
		return
	}

	copies, err := dto.ParseCopies(c.PostForm("copies"))
	if err != nil {
		badRequest(c, "copies must be a number")
		return
	}
	mode := model.ColorMode(c.DefaultPostForm("colorMode", string(model.ColorModeColor)))

	uploads := make([]usecase.FileUpload, 0, len(headers))
	for _, fh := range headers {
		upload, err := readUpload(fh)
		if tooLarge(err) {
			uploadTooLarge(c)
			return
		}
		if err != nil {
			badRequest(c, "unreadable upload "+fh.Filename)
			return
		}
		uploads = append(uploads, upload)
	}

	order, err := h.facade.AddFiles(c.Request.Context(), c.Param("id"), uploads, mode, copies)
	h.respond(c, http.StatusOK, order, err)
}

// RemoveFile handles DELETE /orders/:id/files/:fileId.
func (h *OrderHandler) RemoveFile(c *gin.Context) {
	h.fileAction(c, h.facade.RemoveFile)
}

// SelectFile handles POST /orders/:id/files/:fileId/select.
func (h *OrderHandler) SelectFile(c *gin.Context) {
	h.fileAction(c, h.facade.SelectFile)
}

// AttachDescription handles PUT /orders/:id/files/:fileId/description.
func (h *OrderHandler) AttachDescription(c *gin.Context) {
	var req dto.DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed description payload")
		return
	}
	order, err := h.facade.AttachDescription(c.Request.Context(), c.Param("id"), c.Param("fileId"), req.Description)
	h.respond(c, http.StatusOK, order, err)
}

// UpdateCopies handles PUT /orders/:id/files/:fileId/copies.
func (h *OrderHandler) UpdateCopies(c *gin.Context) {
	var req dto.CopiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed copies payload")
		return
	}
	order, err := h.facade.UpdateCopies(c.Request.Context(), c.Param("id"), c.Param("fileId"), req.Copies)
	h.respond(c, http.StatusOK, order, err)
}

// Finalize handles POST /orders/:id/finalize.
func (h *OrderHandler) Finalize(c *gin.Context) {
	order, err := h.facade.FinalizeOrder(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, order, err)
}

// Pay handles POST /orders/:id/pay. The code is issued asynchronously;
// clients poll GET /orders/:id until the status is paid.
func (h *OrderHandler) Pay(c *gin.Context) {
	order, err := h.facade.PayOrder(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusAccepted, order, err)
}

func (h *OrderHandler) fileAction(c *gin.Context, fn func(ctx context.Context, orderID, fileID string) (*model.Order, error)) {
	order, err := fn(c.Request.Context(), c.Param("id"), c.Param("fileId"))
	h.respond(c, http.StatusOK, order, err)
}

func (h *OrderHandler) respond(c *gin.Context, status int, order *model.Order, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, h.toOrderResponse(*order))
}

func (h *OrderHandler) toOrderResponse(o model.Order) dto.OrderResponse {
	files := make([]dto.FileResponse, 0, len(o.Files))
	for _, f := range o.Files {
		files = append(files, dto.FileResponse{
			ID:          f.ID,
			Name:        f.Name,
			MediaType:   f.MediaType,
			ColorMode:   string(f.ColorMode),
			Copies:      f.Copies,
			PageCount:   f.PageCount,
			Description: f.Description,
			Cost:        f.Cost(h.pricePerPage),
		})
	}
	return dto.OrderResponse{
		ID:               o.ID,
		ShopID:           o.ShopID,
		Files:            files,
		TotalCost:        o.TotalCost,
		SelectedFileID:   o.SelectedFileID,
		Status:           string(o.Status),
		VerificationCode: o.VerificationCode,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func readUpload(fh *multipart.FileHeader) (usecase.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return usecase.FileUpload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return usecase.FileUpload{}, err
	}
	return usecase.FileUpload{
		Name:      fh.Filename,
		MediaType: fh.Header.Get("Content-Type"),
		Data:      data,
	}, nil
}
