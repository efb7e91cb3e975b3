package vcode

import "go.uber.org/fx"

// Module provides the verification code generator.
var Module = fx.Provide(
	fx.Annotate(NewRandomGenerator, fx.As(new(Generator))),
)
