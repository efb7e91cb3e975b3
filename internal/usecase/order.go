package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/polkiloo/printdesk/internal/config"
	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/domain/repository"
	"github.com/polkiloo/printdesk/internal/pkg/pagecount"
)

// FileUpload is a raw document received from the client. Bytes are used for
// page estimation only and are never stored.
type FileUpload struct {
	Name      string
	MediaType string
	Data      []byte
}

// OrderUseCase builds priced orders from uploaded files.
type OrderUseCase struct {
	mu           sync.Mutex
	orders       repository.OrderRepository
	shops        repository.ShopRepository
	counter      pagecount.Counter
	pricePerPage int
	logger       *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, shops repository.ShopRepository, counter pagecount.Counter, cfg *config.Config, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:       orders,
		shops:        shops,
		counter:      counter,
		pricePerPage: cfg.PricePerPage,
		logger:       logger,
	}
}

// Create opens an empty draft order for an existing shop.
func (u *OrderUseCase) Create(ctx context.Context, shopID string) (*model.Order, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, domainErrors.ErrInvalidShop
	}
	if _, err := u.shops.GetByID(ctx, shopID); err != nil {
		return nil, err
	}

	return u.orders.Create(ctx, model.Order{
		ID:     newID(),
		ShopID: shopID,
		Status: model.OrderStatusDraft,
	})
}

// Get returns order by id.
func (u *OrderUseCase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.Get(ctx, orderID)
}

// AddFiles estimates and appends uploads. Copies and color mode apply to
// this batch only.
func (u *OrderUseCase) AddFiles(ctx context.Context, orderID string, uploads []FileUpload, mode model.ColorMode, copies int) (*model.Order, error) {
	if len(uploads) == 0 || !mode.Valid() || copies < 1 {
		return nil, domainErrors.ErrInvalidFile
	}
	for _, up := range uploads {
		if strings.TrimSpace(up.Name) == "" {
			return nil, domainErrors.ErrInvalidFile
		}
	}

	return u.mutate(ctx, orderID, func(o *model.Order) error {
		for _, up := range uploads {
			pages := u.counter.Estimate(up.Name, up.MediaType, up.Data)
			o.Files = append(o.Files, model.UploadedFile{
				ID:        newID(),
				Name:      up.Name,
				MediaType: up.MediaType,
				ColorMode: mode,
				Copies:    copies,
				PageCount: pages,
			})
			u.logger.Debug("file added",
				slog.String("order_id", o.ID),
				slog.String("file", up.Name),
				slog.Int("pages", pages),
			)
		}
		return nil
	})
}

// RemoveFile deletes a file and clears the description selection if it
// pointed at it.
func (u *OrderUseCase) RemoveFile(ctx context.Context, orderID, fileID string) (*model.Order, error) {
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		idx := o.FileIndex(fileID)
		if idx < 0 {
			return domainErrors.ErrNotFound
		}
		o.Files = append(o.Files[:idx], o.Files[idx+1:]...)
		if o.SelectedFileID == fileID {
			o.SelectedFileID = ""
		}
		return nil
	})
}

// SelectFile marks the file whose description is being edited.
func (u *OrderUseCase) SelectFile(ctx context.Context, orderID, fileID string) (*model.Order, error) {
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		if o.FileIndex(fileID) < 0 {
			return domainErrors.ErrNotFound
		}
		o.SelectedFileID = fileID
		return nil
	})
}

// AttachDescription replaces a file's description. Cost is unaffected.
func (u *OrderUseCase) AttachDescription(ctx context.Context, orderID, fileID, text string) (*model.Order, error) {
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		idx := o.FileIndex(fileID)
		if idx < 0 {
			return domainErrors.ErrNotFound
		}
		o.Files[idx].Description = text
		return nil
	})
}

// UpdateCopies changes the copy count of a single file.
func (u *OrderUseCase) UpdateCopies(ctx context.Context, orderID, fileID string, copies int) (*model.Order, error) {
	if copies < 1 {
		return nil, domainErrors.ErrInvalidFile
	}
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		idx := o.FileIndex(fileID)
		if idx < 0 {
			return domainErrors.ErrNotFound
		}
		o.Files[idx].Copies = copies
		return nil
	})
}

// Finalize freezes files and total cost for payment.
func (u *OrderUseCase) Finalize(ctx context.Context, orderID string) (*model.Order, error) {
	return u.mutate(ctx, orderID, func(o *model.Order) error {
		if len(o.Files) == 0 {
			return domainErrors.ErrEmptyOrder
		}
		o.Status = model.OrderStatusFinalized
		o.SelectedFileID = ""
		return nil
	})
}

// mutate applies fn to a draft order and persists it with a fresh total.
func (u *OrderUseCase) mutate(ctx context.Context, orderID string, fn func(*model.Order) error) (*model.Order, error) {
	return u.Update(ctx, orderID, func(o *model.Order) error {
		if !o.Mutable() {
			return domainErrors.ErrOrderFinalized
		}
		if err := fn(o); err != nil {
			return err
		}
		u.recompute(o)
		return nil
	})
}

// Update runs fn on the stored order under the builder lock and saves the
// result. No changes are saved when fn fails.
func (u *OrderUseCase) Update(ctx context.Context, orderID string, fn func(*model.Order) error) (*model.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	order, err := u.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := fn(order); err != nil {
		return nil, err
	}
	if err := u.orders.Save(ctx, *order); err != nil {
		return nil, err
	}
	return order, nil
}

func (u *OrderUseCase) recompute(o *model.Order) {
	total := 0
	for _, f := range o.Files {
		total += f.Cost(u.pricePerPage)
	}
	o.TotalCost = total
}
