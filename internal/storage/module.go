// Package storage selects the repository backend from configuration.
package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/printdesk/internal/config"
	"github.com/polkiloo/printdesk/internal/domain/repository"
	"github.com/polkiloo/printdesk/internal/storage/memory"
	"github.com/polkiloo/printdesk/internal/storage/postgres"
)

// Backend is the durable part of storage: the shop directory and the intake store.
type Backend interface {
	repository.Factory
	HealthCheck(ctx context.Context) error
	Close()
}

// Module wires the configured backend and repository adapters.
var Module = fx.Options(
	fx.Provide(newRepositories),
	fx.Invoke(registerLifecycle),
)

var openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
	return postgres.New(ctx, dsn, logger)
}

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type Repositories struct {
	fx.Out

	Backend     Backend
	Shops       repository.ShopRepository
	Submissions repository.SubmissionRepository
	Orders      repository.OrderRepository
}

func newRepositories(p storageParams) (Repositories, error) {
	mem := memory.New()

	var backend Backend = mem
	if !p.Config.UsesMemory() {
		pg, err := openPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return Repositories{}, err
		}
		backend = pg
		p.Logger.Info("using postgres storage")
	} else {
		p.Logger.Info("using in-memory storage")
	}

	return Repositories{
		Backend:     backend,
		Shops:       backend.Shops(),
		Submissions: backend.Submissions(),
		Orders:      mem.Orders(),
	}, nil
}

func registerLifecycle(lc fx.Lifecycle, backend Backend) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			backend.Close()
			return nil
		},
	})
}
