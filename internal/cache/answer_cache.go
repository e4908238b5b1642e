package cache

import (
	"context"
	"fmt"

	"faqdesk/backend/internal/logger"
)

// AnswerCache stores translated answer text per (FAQ id, language) under
// the persisted key convention "faq:<id>:<lang>". Every underlying cache
// failure degrades to a miss or a no-op with a logged warning: cache
// unavailability must never make the FAQ API unavailable.
type AnswerCache struct {
	cache TranslationCache
}

func NewAnswerCache(cache TranslationCache) *AnswerCache {
	return &AnswerCache{cache: cache}
}

// Key returns the cache key for one (FAQ id, language) pair. The format
// is a persisted convention: invalidation matches "faq:<id>:*" against
// keys written here, so the two must stay bit-compatible.
func Key(id int64, lang string) string {
	return fmt.Sprintf("faq:%d:%s", id, lang)
}

// GetAnswer returns the cached translated answer, or ok=false on a miss
// or any cache failure.
func (a *AnswerCache) GetAnswer(ctx context.Context, id int64, lang string) (string, bool) {
	val, ok, err := a.cache.Get(ctx, Key(id, lang))
	if err != nil {
		logger.Warn("answer cache get failed", "module", "cache", "action", "fetch", "resource", "answer", "result", "degraded", "faq_id", id, "language", lang, "error", err)
		return "", false
	}
	return val, ok
}

// SetAnswer stores a translated answer. Failures are logged and dropped.
func (a *AnswerCache) SetAnswer(ctx context.Context, id int64, lang, answer string) {
	if err := a.cache.Set(ctx, Key(id, lang), answer); err != nil {
		logger.Warn("answer cache set failed", "module", "cache", "action", "save", "resource", "answer", "result", "degraded", "faq_id", id, "language", lang, "error", err)
	}
}

// Invalidate removes every cached answer for the FAQ, across all
// languages. Invalidating with no matching keys is a no-op.
func (a *AnswerCache) Invalidate(ctx context.Context, id int64) {
	pattern := fmt.Sprintf("faq:%d:*", id)

	keys, err := a.cache.Keys(ctx, pattern)
	if err != nil {
		logger.Warn("answer cache invalidation failed", "module", "cache", "action", "invalidate", "resource", "answer", "result", "degraded", "faq_id", id, "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := a.cache.DeleteMany(ctx, keys); err != nil {
		logger.Warn("answer cache invalidation failed", "module", "cache", "action", "invalidate", "resource", "answer", "result", "degraded", "faq_id", id, "keys", len(keys), "error", err)
		return
	}
	logger.Debug("answer cache invalidated", "module", "cache", "action", "invalidate", "resource", "answer", "result", "ok", "faq_id", id, "keys", len(keys))
}
