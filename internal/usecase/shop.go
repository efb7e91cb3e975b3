package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	"github.com/polkiloo/printdesk/internal/domain/model"
	"github.com/polkiloo/printdesk/internal/domain/repository"
)

// ShopInput carries registration form fields.
type ShopInput struct {
	OwnerName   string
	Email       string
	Phone       string
	ShopName    string
	ShopAddress string
}

// ShopUseCase manages the shop directory.
type ShopUseCase struct {
	shops  repository.ShopRepository
	logger *slog.Logger
}

// NewShopUseCase constructs ShopUseCase.
func NewShopUseCase(shops repository.ShopRepository, logger *slog.Logger) *ShopUseCase {
	return &ShopUseCase{shops: shops, logger: logger}
}

// Register appends a shop with a fresh id. All fields are required.
func (u *ShopUseCase) Register(ctx context.Context, in ShopInput) (*model.Shop, error) {
	shop := model.Shop{
		ID:          "shop-" + newID(),
		OwnerName:   strings.TrimSpace(in.OwnerName),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		ShopName:    strings.TrimSpace(in.ShopName),
		ShopAddress: strings.TrimSpace(in.ShopAddress),
	}
	if shop.OwnerName == "" || shop.Email == "" || shop.Phone == "" || shop.ShopName == "" || shop.ShopAddress == "" {
		return nil, domainErrors.ErrInvalidShop
	}

	created, err := u.shops.Create(ctx, shop)
	if err != nil {
		return nil, err
	}
	u.logger.Info("shop registered", slog.String("shop_id", created.ID), slog.String("shop_name", created.ShopName))
	return created, nil
}

// Search matches query against shop names. An empty query yields no shops.
func (u *ShopUseCase) Search(ctx context.Context, query string) ([]model.Shop, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Shop{}, nil
	}
	shops, err := u.shops.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if shops == nil {
		shops = []model.Shop{}
	}
	return shops, nil
}

// Get returns a shop by id.
func (u *ShopUseCase) Get(ctx context.Context, id string) (*model.Shop, error) {
	return u.shops.GetByID(ctx, id)
}

// DemoShops are registered at startup when seeding is enabled.
var DemoShops = []model.Shop{
	{
		ID:          "shop-1",
		OwnerName:   "John Doe",
		Email:       "john@example.com",
		Phone:       "1234567890",
		ShopName:    "Quick Print Center",
		ShopAddress: "123 Main Street, City",
	},
	{
		ID:          "shop-2",
		OwnerName:   "Jane Smith",
		Email:       "jane@example.com",
		Phone:       "0987654321",
		ShopName:    "Copy Express",
		ShopAddress: "456 Oak Avenue, Town",
	},
}

// SeedDemo registers DemoShops, skipping ones already present.
func (u *ShopUseCase) SeedDemo(ctx context.Context) error {
	for _, shop := range DemoShops {
		_, err := u.shops.GetByID(ctx, shop.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		if _, err := u.shops.Create(ctx, shop); err != nil && !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return err
		}
	}
	u.logger.Info("demo shops seeded", slog.Int("count", len(DemoShops)))
	return nil
}
