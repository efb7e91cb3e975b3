package repository

import (
	"context"

	"github.com/polkiloo/printdesk/internal/domain/model"
)

// ShopRepository describes the shop directory store.
type ShopRepository interface {
	Create(ctx context.Context, shop model.Shop) (*model.Shop, error)
	Search(ctx context.Context, query string) ([]model.Shop, error)
	GetByID(ctx context.Context, id string) (*model.Shop, error)
}
