package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"journi/internal/infra"
	"journi/pkg/config"
	"journi/pkg/logger"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := infra.InitDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.CloseDatabase(db, log)
			return nil
		},
	})
	return db, nil
}
