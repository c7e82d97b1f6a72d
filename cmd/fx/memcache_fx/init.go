package memcache_fx

import (
	"go.uber.org/fx"

	"journi/pkg/config"
	mem "journi/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(cfg *config.Config) mem.SessionStore {
	return mem.NewChatSessions(cfg.Chat.SessionTTL)
}
