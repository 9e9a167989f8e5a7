package controllers_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
	"tripmate/internal/api/functions"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSuggestionController),
	fx.Provide(functions.NewSuggestionFunction))
