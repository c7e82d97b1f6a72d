package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"journi/internal/repositories"
	"journi/internal/services"
	mem "journi/pkg/memcache"
)

var Module = fx.Provide(provideTripRepo, services.NewPlanMerger, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	ai services.AIServiceInterface,
	merger *services.PlanMerger,
	sessions mem.SessionStore,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, ai, merger, sessions)
}
