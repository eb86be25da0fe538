package tripsfx

import (
	"go.uber.org/fx"

	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideTripService,
	provideExportService,
)

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}
