package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/analytics"
)

// Cache serves rows for the currently connected spreadsheet, reloading from
// the source once the TTL expires.
type Cache struct {
	source RowSource
	ttl    time.Duration

	mu       sync.Mutex
	sheetID  string
	rows     []analytics.EventRecord
	loadedAt time.Time
}

func NewCache(source RowSource, sheetID string, ttl time.Duration) *Cache {
	return &Cache{
		source:  source,
		ttl:     ttl,
		sheetID: sheetID,
	}
}

// SheetID returns the spreadsheet the cache is currently connected to.
func (c *Cache) SheetID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sheetID
}

// Rows returns the cached rows, loading them from the source when the cache
// is cold or the TTL has lapsed.
func (c *Cache) Rows(ctx context.Context) ([]analytics.EventRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rows != nil && time.Since(c.loadedAt) < c.ttl {
		return c.rows, nil
	}
	return c.reload(ctx)
}

// Connect switches the cache to a different spreadsheet and loads it
// immediately so a bad sheet ID fails at connect time.
func (c *Cache) Connect(ctx context.Context, sheetID string) ([]analytics.EventRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.sheetID
	c.sheetID = sheetID
	rows, err := c.reload(ctx)
	if err != nil {
		c.sheetID = previous
		return nil, err
	}
	return rows, nil
}

func (c *Cache) reload(ctx context.Context) ([]analytics.EventRecord, error) {
	rows, err := c.source.LoadRows(ctx, c.sheetID)
	if err != nil {
		return nil, err
	}
	c.rows = rows
	c.loadedAt = time.Now()
	return rows, nil
}
