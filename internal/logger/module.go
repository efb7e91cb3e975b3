package logger

import "go.uber.org/fx"

// Module builds the service logger from configuration.
var Module = fx.Module("logger", fx.Provide(New))
