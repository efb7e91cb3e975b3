package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/server/http/dto"
	"github.com/polkiloo/printdesk/internal/usecase"
)

// ShopHandler manages the shop directory endpoints.
type ShopHandler struct {
	facade ShopFacade
}

// NewShopHandler constructs ShopHandler.
func NewShopHandler(facade ShopFacade) *ShopHandler {
	return &ShopHandler{facade: facade}
}

// Register handles POST /shops.
func (h *ShopHandler) Register(c *gin.Context) {
	var req dto.ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed shop payload")
		return
	}

	shop, err := h.facade.RegisterShop(c.Request.Context(), usecase.ShopInput{
		OwnerName:   req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ShopName:    req.ShopName,
		ShopAddress: req.ShopAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterShopResponse{Success: true, Shop: toShopResponse(*shop)})
}

// Search handles GET /shops?search=Q.
func (h *ShopHandler) Search(c *gin.Context) {
	shops, err := h.facade.SearchShops(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ShopsResponse{Shops: make([]dto.ShopResponse, 0, len(shops))}
	for _, s := range shops {
		resp.Shops = append(resp.Shops, toShopResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

func toShopResponse(s model.Shop) dto.ShopResponse {
	return dto.ShopResponse{
		ID:          s.ID,
		Name:        s.OwnerName,
		Email:       s.Email,
		Phone:       s.Phone,
		ShopName:    s.ShopName,
		ShopAddress: s.ShopAddress,
	}
}
