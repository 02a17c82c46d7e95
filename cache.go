package sentsplit

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jamesainslie/go-sentsplit/profile"
)

// Cache memoizes one Resolver per language. Concurrent requests for a
// language that is not yet loaded share a single load; failed loads are
// not cached. It is safe for concurrent use.
type Cache struct {
	opts []Option

	mu        sync.RWMutex
	resolvers map[profile.Language]*Resolver
	group     singleflight.Group
}

// NewCache creates a cache whose resolvers are built with opts.
func NewCache(opts ...Option) *Cache {
	return &Cache{
		opts:      opts,
		resolvers: make(map[profile.Language]*Resolver),
	}
}

// Get returns the resolver for language, loading it on first use.
// Waiting on another caller's load respects ctx cancellation.
func (c *Cache) Get(ctx context.Context, language string) (*Resolver, error) {
	p, err := profile.Lookup(language)
	if err != nil {
		return nil, err
	}
	lang := p.Language()

	c.mu.RLock()
	r, ok := c.resolvers[lang]
	c.mu.RUnlock()
	if ok {
		return r, nil
	}

	ch := c.group.DoChan(string(lang), func() (any, error) {
		c.mu.RLock()
		r, ok := c.resolvers[lang]
		c.mu.RUnlock()
		if ok {
			return r, nil
		}

		r, err := New(string(lang), c.opts...)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.resolvers[lang] = r
		c.mu.Unlock()
		return r, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Resolver), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Evict drops the cached resolver for language and reports whether one
// was present.
func (c *Cache) Evict(language string) bool {
	p, err := profile.Lookup(language)
	if err != nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.resolvers[p.Language()]; !ok {
		return false
	}
	delete(c.resolvers, p.Language())
	return true
}

// Purge drops every cached resolver.
func (c *Cache) Purge() {
	c.mu.Lock()
	clear(c.resolvers)
	c.mu.Unlock()
}

// Len returns the number of cached resolvers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.resolvers)
}
