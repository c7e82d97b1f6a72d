package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"journi/cmd/fx/chat_fx"
	"journi/cmd/fx/config_fx"
	"journi/cmd/fx/controllers_fx"
	"journi/cmd/fx/db_fx"
	"journi/cmd/fx/llm_fx"
	"journi/cmd/fx/memcache_fx"
	"journi/cmd/fx/trip_fx"
	"journi/internal/api/controllers"
	"journi/pkg/config"
	"journi/pkg/logger"
	"journi/pkg/middleware"
	"journi/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		llm_fx.Module,
		trip_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.WithFields(logger.Fields{"addr": srv.Addr}).Info("Starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.WithError(err).Fatal("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config       *config.Config
	Logger       *logger.Logger
	TokenManager *utils.TokenManager

	AIController   *controllers.AIController
	TripController *controllers.TripController
	ChatController *controllers.ChatController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	gin.SetMode(p.Config.Server.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.CORSMiddleware(p.Config.Server.AllowedOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})

	api := r.Group("/api")

	limiter := middleware.NewRateLimiter(p.Config.RateLimit.RequestsPerSecond, p.Config.RateLimit.Burst)
	aiGroup := api.Group("", limiter.Middleware())
	aiGroup.POST("/rewrite-description", p.AIController.RewriteDescription)
	aiGroup.POST("/generate-itinerary", p.AIController.GenerateItinerary)
	aiGroup.POST("/chat-itinerary", p.AIController.ChatItinerary)

	auth := middleware.JWTAuthMiddleware(p.TokenManager)

	tripsGroup := api.Group("/trips", auth)
	tripsGroup.POST("", p.TripController.CreateTrip)
	tripsGroup.GET("", p.TripController.ListTrips)
	tripsGroup.GET("/:tripId", p.TripController.GetTrip)
	tripsGroup.DELETE("/:tripId", p.TripController.DeleteTrip)
	tripsGroup.PUT("/:tripId/meta", p.TripController.SaveMeta)
	tripsGroup.POST("/:tripId/plans", limiter.Middleware(), p.TripController.GeneratePlan)
	tripsGroup.POST("/:tripId/plans/collapse", p.TripController.CollapseAll)
	tripsGroup.DELETE("/:tripId/plans/:planId", p.TripController.DeletePlan)
	tripsGroup.PATCH("/:tripId/plans/:planId/collapse", p.TripController.ToggleCollapse)
	tripsGroup.GET("/:tripId/plans/:planId/form", p.TripController.PlanForm)
	tripsGroup.DELETE("/:tripId/plans/:planId/days/:dayNumber/places/:placeKey", p.TripController.RemoveSuggestion)
	tripsGroup.POST("/:tripId/suggestions", p.TripController.InsertSuggestion)

	chatGroup := tripsGroup.Group("/:tripId/chat")
	chatGroup.GET("", p.ChatController.GetSession)
	chatGroup.POST("/messages", limiter.Middleware(), p.ChatController.SendMessage)
	chatGroup.PUT("/mode", p.ChatController.SwitchMode)
	chatGroup.PUT("/context", p.ChatController.SetContext)
	chatGroup.DELETE("", p.ChatController.Reset)
	chatGroup.POST("/snapshot", p.ChatController.SaveSnapshot)
	chatGroup.GET("/snapshots", p.ChatController.ListSnapshots)
	chatGroup.POST("/booking", p.ChatController.BookHotel)
}
