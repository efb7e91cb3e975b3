package dto

import (
	"strconv"
	"time"
)

// CreateOrderRequest binds a new order to a shop.
type CreateOrderRequest struct {
	ShopID string `json:"shopId"`
}

// DescriptionRequest replaces a file description.
type DescriptionRequest struct {
	Description string `json:"description"`
}

// CopiesRequest changes the copy count of a file.
type CopiesRequest struct {
	Copies int `json:"copies"`
}

// FileResponse is a priced file inside an order.
type FileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MediaType   string `json:"mediaType"`
	ColorMode   string `json:"colorMode"`
	Copies      int    `json:"copies"`
	PageCount   int    `json:"pageCount"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
}

// OrderResponse is the server-held order draft.
type OrderResponse struct {
	ID               string         `json:"id"`
	ShopID           string         `json:"shopId"`
	Files            []FileResponse `json:"files"`
	TotalCost        int            `json:"totalCost"`
	SelectedFileID   string         `json:"selectedFileId,omitempty"`
	Status           string         `json:"status"`
	VerificationCode string         `json:"verificationCode,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ParseCopies reads the copies form value; empty means one copy.
func ParseCopies(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	return strconv.Atoi(raw)
}
