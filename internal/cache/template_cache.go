package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"go.uber.org/zap"
)

const renderKeyPrefix = "challenge:render"

// TemplateCache memoizes parsed proposal templates. Entries are keyed by the
// challenge id and a digest of the kind and template, so an edited challenge
// never reads a stale rendering even before Invalidate runs.
type TemplateCache struct {
	cache  CacheService
	ttl    time.Duration
	logger *zap.Logger
}

func NewTemplateCache(cache CacheService, ttl time.Duration, logger *zap.Logger) *TemplateCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateCache{cache: cache, ttl: ttl, logger: logger}
}

// Rendering returns the cached rendering or parses the template and stores
// it. Cache failures are logged and never fail the call.
func (c *TemplateCache) Rendering(ctx context.Context, challengeID uint, kind proposal.Kind, template string) (proposal.Rendering, error) {
	key := RenderKey(challengeID, kind, template)

	var cached proposal.Rendering
	err := c.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		c.logger.Warn("template cache read failed", zap.Uint("challenge_id", challengeID), zap.Error(err))
	}

	rendering, err := proposal.Render(kind, template)
	if err != nil {
		return proposal.Rendering{}, err
	}

	if err := c.cache.Set(ctx, key, rendering, c.ttl); err != nil {
		c.logger.Warn("template cache write failed", zap.Uint("challenge_id", challengeID), zap.Error(err))
	}
	return rendering, nil
}

// Invalidate drops every cached rendering of a challenge.
func (c *TemplateCache) Invalidate(ctx context.Context, challengeID uint) error {
	return c.cache.DeletePattern(ctx, fmt.Sprintf("%s:%d:*", renderKeyPrefix, challengeID))
}

func RenderKey(challengeID uint, kind proposal.Kind, template string) string {
	sum := sha256.Sum256([]byte(kind.String() + "\x00" + template))
	return fmt.Sprintf("%s:%d:%s", renderKeyPrefix, challengeID, hex.EncodeToString(sum[:8]))
}
