package llm_fx

import (
	"context"
	"io"

	"go.uber.org/fx"

	"journi/internal/services"
	"journi/pkg/config"
	"journi/pkg/logger"
	"journi/pkg/utils"
)

var Module = fx.Provide(
	ProvideLLMClient,
	services.NewResponseValidator,
	services.NewAIService,
)

// ProvideLLMClient builds the chat-completion client for the configured provider.
func ProvideLLMClient(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (utils.LLMClient, error) {
	log.WithFields(logger.Fields{
		"provider": cfg.LLM.Provider,
		"model":    cfg.LLM.Model,
	}).Info("Initializing LLM client")

	client, err := utils.NewLLMClient(cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		return nil, err
	}
	closeOnStop(lc, client, log)
	return client, nil
}

// closeOnStop releases clients that hold a connection, such as Gemini's.
func closeOnStop(lc fx.Lifecycle, client utils.LLMClient, log *logger.Logger) {
	closer, ok := client.(io.Closer)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if err := closer.Close(); err != nil {
				log.WithError(err).WithField("provider", client.Provider()).Warn("Error closing LLM client")
			}
			return nil
		},
	})
}
