package config_fx

import (
	"go.uber.org/fx"

	"journi/pkg/config"
	"journi/pkg/logger"
	"journi/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideTokenManager,
)

func provideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(cfg.Logging)
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
