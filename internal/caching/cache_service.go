package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"modamart/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	catalogKey             = "modamart:catalog"
	designerPerformanceKey = "modamart:designer_performance"
)

// CacheService caches the read-side projections. Cache failures are never
// fatal; callers fall back to the database.
type CacheService interface {
	GetCatalog(ctx context.Context) ([]*models.CatalogEntry, error)
	SetCatalog(ctx context.Context, entries []*models.CatalogEntry, ttl time.Duration) error
	InvalidateCatalog(ctx context.Context) error

	GetDesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error)
	SetDesignerPerformance(ctx context.Context, performances []*models.DesignerPerformance, ttl time.Duration) error
	InvalidateDesignerPerformance(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, addr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetCatalog(ctx context.Context) ([]*models.CatalogEntry, error) {
	var entries []*models.CatalogEntry
	if err := r.getJSON(ctx, catalogKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *redisCacheService) SetCatalog(ctx context.Context, entries []*models.CatalogEntry, ttl time.Duration) error {
	return r.setJSON(ctx, catalogKey, entries, ttl)
}

func (r *redisCacheService) InvalidateCatalog(ctx context.Context) error {
	return r.client.Del(ctx, catalogKey).Err()
}

func (r *redisCacheService) GetDesignerPerformance(ctx context.Context) ([]*models.DesignerPerformance, error) {
	var performances []*models.DesignerPerformance
	if err := r.getJSON(ctx, designerPerformanceKey, &performances); err != nil {
		return nil, err
	}
	return performances, nil
}

func (r *redisCacheService) SetDesignerPerformance(ctx context.Context, performances []*models.DesignerPerformance, ttl time.Duration) error {
	return r.setJSON(ctx, designerPerformanceKey, performances, ttl)
}

func (r *redisCacheService) InvalidateDesignerPerformance(ctx context.Context) error {
	return r.client.Del(ctx, designerPerformanceKey).Err()
}

func (r *redisCacheService) getJSON(ctx context.Context, key string, dest any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil // cache miss, dest left nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}
