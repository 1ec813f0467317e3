// Package catalogcache serves catalog reads from redis and falls back to the
// database on a miss. Entries expire after a TTL; catalog entries are never
// edited in place, so no explicit invalidation is needed.
package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"printflow/internal/adapters/out/postgres/catalogrepo"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "printflow:catalog:"
	DefaultTTL = 10 * time.Minute
)

// Cache implements ports.ProductCatalog. Redis failures are logged and the
// read goes to the source, so the cache never makes a request fail.
type Cache struct {
	rdb    *redis.Client
	source ports.ProductCatalog
	ttl    time.Duration
	logger *slog.Logger
}

func New(rdb *redis.Client, source ports.ProductCatalog, ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		rdb:    rdb,
		source: source,
		ttl:    ttl,
		logger: logger.With("component", "CatalogCache"),
	}
}

func (c *Cache) Product(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	key := keyPrefix + "product:" + id.String()

	var dto catalogrepo.ProductDTO
	if c.load(ctx, key, &dto) {
		if product, err := dto.ToDomain(); err == nil {
			return product, nil
		}
	}

	product, err := c.source.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, catalogrepo.ProductFromDomain(product))
	return product, nil
}

func (c *Cache) Sheet(ctx context.Context, id kernel.UUID) (catalog.Sheet, error) {
	key := keyPrefix + "sheet:" + id.String()

	var dto catalogrepo.SheetDTO
	if c.load(ctx, key, &dto) {
		if sheet, err := dto.ToDomain(); err == nil {
			return sheet, nil
		}
	}

	sheet, err := c.source.Sheet(ctx, id)
	if err != nil {
		return catalog.Sheet{}, err
	}
	c.store(ctx, key, catalogrepo.SheetFromDomain(sheet))
	return sheet, nil
}

// load reports whether key held a decodable entry.
func (c *Cache) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		c.logger.WarnContext(ctx, "dropping undecodable catalog entry", "key", key, "error", err)
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "catalog entry not cached", "key", key, "error", err)
		return
	}
	if err = c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
	}
}
