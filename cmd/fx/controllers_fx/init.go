package controllers_fx

import (
	"go.uber.org/fx"

	"journi/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAIController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewChatController))
