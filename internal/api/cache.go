package api

import (
	"time"

	"tundeajayi/vendaterm/internal/models"
)

func NewCatalogCache(ttl time.Duration) *CatalogCache {
	return &CatalogCache{ttl: ttl}
}

// Get returns the cached catalog if it is still fresh
func (c *CatalogCache) Get() (*models.Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.catalog == nil || time.Since(c.fetched) > c.ttl {
		return nil, false
	}

	snapshot := &models.Catalog{Products: make([]models.Product, len(c.catalog.Products))}
	copy(snapshot.Products, c.catalog.Products)
	return snapshot, true
}

func (c *CatalogCache) Set(catalog *models.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := &models.Catalog{Products: make([]models.Product, len(catalog.Products))}
	copy(stored.Products, catalog.Products)
	c.catalog = stored
	c.fetched = time.Now()
}

// Invalidate drops the cached catalog; called after every catalog write
// so reads never serve a stale product list
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.catalog = nil
}

func (c *CatalogCache) IsExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.catalog == nil || time.Since(c.fetched) > c.ttl
}
