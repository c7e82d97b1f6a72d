package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"journi/internal/repositories"
	"journi/internal/services"
)

var Module = fx.Provide(
	provideChatRepo,
	services.NewChatOrchestrator,
	services.NewChatService,
)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}
