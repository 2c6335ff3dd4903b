package cache

// SQL schemas for cache tables.
// All cache tables use "cache_key" as the primary key column.

// PriceCacheSchema holds marketplace price stats keyed by release id.
const PriceCacheSchema = `
CREATE TABLE IF NOT EXISTS price_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_price_cached_at ON price_cache(cached_at);
`

// CollectionCacheSchema holds drained collection listings keyed by
// "{username}/{folder}".
const CollectionCacheSchema = `
CREATE TABLE IF NOT EXISTS collection_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_collection_cached_at ON collection_cache(cached_at);
`

// Cache table names.
const (
	PriceTable      = "price_cache"
	CollectionTable = "collection_cache"
)

// AllSchemas lists every cache table schema for initialization.
var AllSchemas = []string{
	PriceCacheSchema,
	CollectionCacheSchema,
}

// ValidTableNames whitelists tables for SQL interpolation.
var ValidTableNames = map[string]bool{
	PriceTable:      true,
	CollectionTable: true,
}
