package pagecount

import "go.uber.org/fx"

// Module provides the page counter.
var Module = fx.Provide(
	fx.Annotate(NewEstimator, fx.As(new(Counter))),
)
