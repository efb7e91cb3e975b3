package repository

import (
	"context"

	"github.com/polkiloo/printdesk/internal/domain/model"
)

// OrderRepository keeps orders that are still being assembled or paid.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	Save(ctx context.Context, order model.Order) error
}
