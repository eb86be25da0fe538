package dbfx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"voyago/internal/config"
	"voyago/internal/infra"
	"voyago/internal/repositories"
)

var Module = fx.Provide(provideTripRepository)

// provideTripRepository connects to Postgres when a URL is configured.
// Without one the repository is nil and trip history is disabled while
// planning keeps working.
func provideTripRepository(lc fx.Lifecycle, cfg config.Config) repositories.TripRepository {
	if cfg.PostgresURL == "" {
		log.Println("POSTGRES_URL not set, trip history disabled")
		return nil
	}

	db := infra.InitPostgresql(cfg.PostgresURL)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return repositories.NewTripRepository(db)
}
