package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// ResultCache 计算结果的本地缓存，键为牌种分布编码，写入是异步的
type ResultCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewResultCache maxCost 为条目数上限（每条 cost 为 1），ttl 为 0 表示不过期
func NewResultCache(maxCost int64, ttl time.Duration) (*ResultCache, error) {
	if maxCost <= 0 {
		return nil, fmt.Errorf("create result cache: maxCost must be positive, got %d", maxCost)
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxCost * 10, // 官方建议计数器为条目数的 10 倍
		MaxCost:            maxCost,
		BufferItems:        64,
		IgnoreInternalCost: true, // cost 只按条目计
	})
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}
	return &ResultCache{cache: c, ttl: ttl}, nil
}

// Set 使用默认 TTL
func (c *ResultCache) Set(key string, value any) bool {
	return c.cache.SetWithTTL(key, value, 1, c.ttl)
}

func (c *ResultCache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

func (c *ResultCache) GetInt(key string) (int, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Wait 等待缓冲区中的写入生效
func (c *ResultCache) Wait() {
	c.cache.Wait()
}

// Clear 规则配置变化后清空
func (c *ResultCache) Clear() {
	c.cache.Clear()
}

func (c *ResultCache) Close() {
	c.cache.Close()
}
