package config

import "go.uber.org/fx"

// Module loads the service configuration from the process environment and
// command line. Tests swap it with fx.Replace.
var Module = fx.Module("config", fx.Provide(Load))
