package insight

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

// Cache is the redis front of the snapshot store. It is optional: a nil
// *Cache degrades to the durable snapshot lookup alone.
type Cache struct {
	client *redis.Client
}

// NewCache wraps a redis client for insight payloads.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func cacheKey(sessionID, insightType string) string {
	return "insight:" + sessionID + ":" + insightType
}

// Get returns the cached payload, or nil on miss. Redis errors are
// treated as misses so the durable store stays authoritative.
func (c *Cache) Get(ctx context.Context, sessionID, insightType string) json.RawMessage {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, cacheKey(sessionID, insightType)).Bytes()
	if err != nil {
		return nil
	}
	return json.RawMessage(data)
}

// Set stores the payload with a TTL. Failures are ignored; the snapshot
// store holds the durable copy.
func (c *Cache) Set(ctx context.Context, sessionID, insightType string, payload json.RawMessage) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, cacheKey(sessionID, insightType), []byte(payload), cacheTTL)
}
