package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"
	"time"

	"binomial-pricer/internal/model"
)

// CacheEntry represents a cached quote
type CacheEntry struct {
	Quote     *model.Quote
	ExpiresAt time.Time
}

// QuoteCache holds priced quotes in memory so they can be fetched by id.
// A nil *QuoteCache is a valid, always-empty cache.
type QuoteCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration

	stop chan struct{}
	once sync.Once
}

// NewQuoteCache starts a cache whose entries live for ttl.
// Call Close to stop the cleanup goroutine.
func NewQuoteCache(ttl time.Duration) *QuoteCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := &QuoteCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go c.cleanup()
	return c
}

// Get retrieves a cached quote if available and not expired
func (c *QuoteCache) Get(key string) (*model.Quote, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Quote, true
}

// Set stores a quote in the cache
func (c *QuoteCache) Set(key string, q *model.Quote) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Quote:     q,
		ExpiresAt: time.Now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache
func (c *QuoteCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// Len counts entries, expired ones included until cleanup runs.
func (c *QuoteCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *QuoteCache) Close() {
	if c == nil {
		return
	}
	c.once.Do(func() { close(c.stop) })
}

// cleanup periodically removes expired entries
func (c *QuoteCache) cleanup() {
	interval := 5 * time.Minute
	if c.ttl < interval {
		interval = c.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired(time.Now())
		}
	}
}

func (c *QuoteCache) evictExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
		}
	}
}

// GenerateQuoteKey creates a deterministic id for a contract priced on rep.
func GenerateQuoteKey(rep model.Representation, p model.ContractParams) string {
	keyStr := fmt.Sprintf("%s:%s:%s:%s:%s:%s:%d",
		rep,
		strconv.FormatFloat(p.SpotPrice, 'g', -1, 64),
		strconv.FormatFloat(p.Volatility, 'g', -1, 64),
		strconv.FormatFloat(p.ExpiryYears, 'g', -1, 64),
		strconv.FormatFloat(p.RiskFreeRate, 'g', -1, 64),
		strconv.FormatFloat(p.Strike, 'g', -1, 64),
		p.Steps,
	)

	// Hash the key to keep it reasonably sized
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
