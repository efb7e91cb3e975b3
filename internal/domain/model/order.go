package model

import "time"

// ColorMode selects color or monochrome printing for a file.
type ColorMode string

const (
	ColorModeColor         ColorMode = "Color"
	ColorModeBlackAndWhite ColorMode = "Black & White"
)

// Valid reports whether the mode is one of the known print modes.
func (m ColorMode) Valid() bool {
	return m == ColorModeColor || m == ColorModeBlackAndWhite
}

// OrderStatus describes order lifecycle from upload to payment.
type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusFinalized  OrderStatus = "finalized"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
)

// UploadedFile is a document attached to an order. Copies and color mode are
// captured at upload time.
type UploadedFile struct {
	ID          string
	Name        string
	MediaType   string
	ColorMode   ColorMode
	Copies      int
	PageCount   int
	Description string
}

// Cost returns pages x rate x copies.
func (f UploadedFile) Cost(pricePerPage int) int {
	return f.PageCount * pricePerPage * f.Copies
}

// Order is a user's batch of documents for a single shop.
type Order struct {
	ID               string
	ShopID           string
	Files            []UploadedFile
	TotalCost        int
	SelectedFileID   string
	Status           OrderStatus
	VerificationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Mutable reports whether files may still be added, removed or annotated.
func (o *Order) Mutable() bool {
	return o.Status == "" || o.Status == OrderStatusDraft
}

// FileIndex returns position of file with given id or -1.
func (o *Order) FileIndex(fileID string) int {
	for i := range o.Files {
		if o.Files[i].ID == fileID {
			return i
		}
	}
	return -1
}
