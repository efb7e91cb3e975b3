package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/printdesk/internal/app"
	"github.com/polkiloo/printdesk/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	Setup,
	func(f *app.PrintDeskFacade) handlers.PrintDesk { return f },
)
