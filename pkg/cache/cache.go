package cache

import (
	"context"
	"sync"
	"time"

	"capstore/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
	}

	// ICache keeps live objects in memory. Every successful Get slides the
	// entry's expiry forward by its ttl.
	ICache interface {
		Set(key string, value interface{}, ttl time.Duration)
		Get(key string) (interface{}, bool)
		Delete(key string) (interface{}, bool)
		Sweep(ctx context.Context) []interface{}
		Len() int
	}

	item struct {
		value   interface{}
		ttl     time.Duration
		expires time.Time
	}

	cache struct {
		logger logger.Logger
		items  map[string]*item
		now    func() time.Time
		m      sync.RWMutex
	}
)

func New(p Params) ICache {
	return newWithClock(p.Logger, time.Now)
}

func newWithClock(lg logger.Logger, now func() time.Time) *cache {
	return &cache{
		logger: lg,
		items:  map[string]*item{},
		now:    now,
	}
}

func (c *cache) Set(key string, value interface{}, ttl time.Duration) {
	c.m.Lock()
	defer c.m.Unlock()

	c.items[key] = &item{
		value:   value,
		ttl:     ttl,
		expires: c.now().Add(ttl),
	}
}

func (c *cache) Get(key string) (interface{}, bool) {
	c.m.Lock()
	defer c.m.Unlock()

	it, ok := c.items[key]
	if !ok {
		return nil, false
	}
	now := c.now()
	if it.ttl > 0 && now.After(it.expires) {
		return nil, false
	}
	it.expires = now.Add(it.ttl)
	return it.value, true
}

func (c *cache) Delete(key string) (interface{}, bool) {
	c.m.Lock()
	defer c.m.Unlock()

	it, ok := c.items[key]
	if !ok {
		return nil, false
	}
	delete(c.items, key)
	return it.value, true
}

// Sweep drops expired entries and hands them back so the caller can
// release whatever they hold. Entries with a zero ttl never expire.
func (c *cache) Sweep(ctx context.Context) []interface{} {
	c.m.Lock()
	defer c.m.Unlock()

	var (
		now     = c.now()
		expired []interface{}
	)
	for key, it := range c.items {
		if it.ttl > 0 && now.After(it.expires) {
			expired = append(expired, it.value)
			delete(c.items, key)
		}
	}
	if len(expired) > 0 {
		c.logger.Debug(ctx, "cache sweep", zap.Int("expired", len(expired)), zap.Int("left", len(c.items)))
	}
	return expired
}

func (c *cache) Len() int {
	c.m.RLock()
	defer c.m.RUnlock()

	return len(c.items)
}
