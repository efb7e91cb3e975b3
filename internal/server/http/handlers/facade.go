package handlers

import (
	"context"

	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/usecase"
)

// ShopFacade exposes the shop directory.
type ShopFacade interface {
	RegisterShop(ctx context.Context, in usecase.ShopInput) (*model.Shop, error)
	SearchShops(ctx context.Context, query string) ([]model.Shop, error)
}

// PageFacade counts PDF pages.
type PageFacade interface {
	CountPages(data []byte) (int, error)
}

// IntakeFacade is the shared intake store between users and shop owners.
type IntakeFacade interface {
	SubmitToIntake(ctx context.Context, in usecase.SubmissionInput) (*model.Submission, bool, error)
	IntakeDocuments(ctx context.Context) ([]model.Submission, error)
}

// OrderFacade builds and pays for orders.
type OrderFacade interface {
	CreateOrder(ctx context.Context, shopID string) (*model.Order, error)
	Order(ctx context.Context, orderID string) (*model.Order, error)
	AddFiles(ctx context.Context, orderID string, uploads []usecase.FileUpload, mode model.ColorMode, copies int) (*model.Order, error)
	RemoveFile(ctx context.Context, orderID, fileID string) (*model.Order, error)
	SelectFile(ctx context.Context, orderID, fileID string) (*model.Order, error)
	AttachDescription(ctx context.Context, orderID, fileID, text string) (*model.Order, error)
	UpdateCopies(ctx context.Context, orderID, fileID string, copies int) (*model.Order, error)
	FinalizeOrder(ctx context.Context, orderID string) (*model.Order, error)
	PayOrder(ctx context.Context, orderID string) (*model.Order, error)
}

// AdminFacade drives the shop owner's queue.
type AdminFacade interface {
	AdminQueue(ctx context.Context, search string) ([]model.QueueEntry, model.QueueStats, error)
	CompleteEntry(ctx context.Context, entryID string) error
	VerifyEntry(ctx context.Context, entryID, code string) (model.VerifyResult, error)
	RejectEntry(ctx context.Context, entryID string) error
}

// HealthFacade checks storage.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// PrintDesk aggregates the full set of operations used across handlers.
type PrintDesk interface {
	ShopFacade
	PageFacade
	IntakeFacade
	OrderFacade
	AdminFacade
	HealthFacade
}
