package mem

import (
	"time"

	"github.com/patrickmn/go-cache"

	"journi/internal/models/domain_models"
)

// SessionStore keeps assistant conversations in memory. Sessions expire after
// the configured idle TTL; every Set refreshes it.
type SessionStore interface {
	Get(key string) (domain_models.ChatSession, bool)
	Set(key string, session domain_models.ChatSession)
	Delete(key string)
}

// SessionKey scopes a conversation to one trip of one user.
func SessionKey(tripID, ownerID string) string {
	return tripID + ":" + ownerID
}

type ChatSessions struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewChatSessions(ttl time.Duration) *ChatSessions {
	return &ChatSessions{
		cache: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Get returns a copy; callers must Set to publish changes.
func (s *ChatSessions) Get(key string) (domain_models.ChatSession, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return domain_models.ChatSession{}, false
	}
	session, ok := v.(domain_models.ChatSession)
	if !ok {
		return domain_models.ChatSession{}, false
	}
	return session.Clone(), true
}

func (s *ChatSessions) Set(key string, session domain_models.ChatSession) {
	s.cache.Set(key, session.Clone(), s.ttl)
}

func (s *ChatSessions) Delete(key string) {
	s.cache.Delete(key)
}
