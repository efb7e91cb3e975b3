package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/printdesk/internal/app"
	"github.com/polkiloo/printdesk/internal/config"
	"github.com/polkiloo/printdesk/internal/logger"
	"github.com/polkiloo/printdesk/internal/pkg/pagecount"
	"github.com/polkiloo/printdesk/internal/pkg/vcode"
	"github.com/polkiloo/printdesk/internal/server/http/router"
	"github.com/polkiloo/printdesk/internal/storage"
	"github.com/polkiloo/printdesk/internal/usecase"
)

// Module assembles the service graph. Extra options are appended last so
// tests can fx.Replace or fx.Decorate any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		pagecount.Module,
		vcode.Module,
		storage.Module,
		fx.Provide(func(b storage.Backend) app.HealthChecker { return b }),
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
