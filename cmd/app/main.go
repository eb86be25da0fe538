package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"voyago/cmd/fx/controllersfx"
	"voyago/cmd/fx/dbfx"
	"voyago/cmd/fx/intentfx"
	"voyago/cmd/fx/plannerfx"
	"voyago/cmd/fx/tripsfx"
	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.FromEnv),
		dbfx.Module,
		plannerfx.Module,
		intentfx.Module,
		tripsfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	tripsController *controllers.TripsController,
	destinationsController *controllers.DestinationsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, planController, tripsController, destinationsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	tripsController *controllers.TripsController,
	destinationsController *controllers.DestinationsController) {

	planGroup := r.Group("/plan")
	planGroup.POST("", planController.PlanTrip)
	planGroup.POST("/text", planController.PlanTripFromText)

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.GET("/:id", tripsController.GetTripByID)
	tripsGroup.GET("/:id/markdown", tripsController.ExportMarkdown)
	tripsGroup.GET("/:id/ics", tripsController.ExportICS)

	r.GET("/destinations", destinationsController.ListDestinations)
}
