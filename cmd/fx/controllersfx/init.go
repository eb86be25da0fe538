package controllersfx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewDestinationsController),
)
