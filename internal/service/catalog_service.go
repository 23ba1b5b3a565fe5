package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopfront/internal/cache"
	"shopfront/internal/errors"
	"shopfront/internal/repository"
	"shopfront/internal/sanitize"
)

const catalogCacheTTL = 2 * time.Minute

// CatalogService runs the read-side aggregation procedures and normalizes
// their tabular results into transport-safe text. Normalized output carries
// only the allow-listed character set; callers may rely on structural markers
// surviving, not on exact field content.
type CatalogService interface {
	FilteredProducts(ctx context.Context, color, gender, styles, size string) (string, error)
	Valuation(ctx context.Context, scopeKey string) (string, error)
	CartText(ctx context.Context, username string) (string, error)
}

type catalogService struct {
	inventoryRepo repository.InventoryRepository
	cartRepo      repository.CartRepository
	cache         *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(inventoryRepo repository.InventoryRepository, cartRepo repository.CartRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		inventoryRepo: inventoryRepo,
		cartRepo:      cartRepo,
		cache:         cache,
	}
}

func productCacheKey(color, gender, styles, size string) string {
	return fmt.Sprintf("catalog:products:%s:%s:%s:%s", color, gender, styles, size)
}

// FilteredProducts runs the filtered product-list procedure exactly once per
// request and caches the normalized text by filter tuple. A cold or broken
// cache degrades to the database read.
func (s *catalogService) FilteredProducts(ctx context.Context, color, gender, styles, size string) (string, error) {
	key := productCacheKey(color, gender, styles, size)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		return string(data), nil
	}

	rows, err := s.inventoryRepo.FilteredProducts(ctx, color, gender, styles, size)
	if err != nil {
		return "", fmt.Errorf("filtered products: %w", err)
	}

	text, err := normalizeRows(rows)
	if err != nil {
		return "", err
	}
	_ = s.cache.Set(ctx, key, []byte(text), catalogCacheTTL)
	return text, nil
}

// Valuation runs the valuation procedure for scopeKey and normalizes the
// result.
func (s *catalogService) Valuation(ctx context.Context, scopeKey string) (string, error) {
	rows, err := s.inventoryRepo.Valuation(ctx, scopeKey)
	if err != nil {
		return "", fmt.Errorf("valuation: %w", err)
	}
	return normalizeRows(rows)
}

// CartText returns the cart-items procedure result for username as
// normalized text.
func (s *catalogService) CartText(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", errors.ErrMissingUsername
	}
	rows, err := s.cartRepo.RawItems(ctx, username)
	if err != nil {
		return "", fmt.Errorf("cart text for %q: %w", username, err)
	}
	return normalizeRows(rows)
}

// normalizeRows serializes tabular rows to JSON and reduces the text to the
// transport-safe character set.
func normalizeRows(rows []map[string]interface{}) (string, error) {
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("encode rows: %w", err)
	}
	return sanitize.Normalize(string(payload)), nil
}
