package warehouse

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const cacheKeyPrefix = "dashboard"

// CacheStore é o subconjunto do cliente redis usado pelo cache
type CacheStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedFetcher guarda no redis cada conjunto de linhas por cliente, período e filtro.
// Falhas do redis não interrompem a busca.
type CachedFetcher struct {
	fetcher Fetcher
	store   CacheStore
	ttl     time.Duration
}

func NewCachedFetcher(fetcher Fetcher, store CacheStore, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{
		fetcher: fetcher,
		store:   store,
		ttl:     ttl,
	}
}

func cacheKey(kind, ownerID string, start, end time.Time, extra ...string) string {
	parts := []string{
		cacheKeyPrefix,
		kind,
		ownerID,
		start.Format(time.RFC3339),
		end.Format(time.RFC3339),
	}
	return strings.Join(append(parts, extra...), ":")
}

func statusesKey(statuses []domain.OrderStatus) string {
	if len(statuses) == 0 {
		return "all"
	}

	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	sort.Strings(values)
	return strings.Join(values, ",")
}

func (c *CachedFetcher) FetchOrders(ctx context.Context, ownerID string, start, end time.Time, statuses ...domain.OrderStatus) ([]domain.Order, error) {
	key := cacheKey("orders", ownerID, start, end, statusesKey(statuses))

	var orders []domain.Order
	if c.load(ctx, key, &orders) {
		return orders, nil
	}

	orders, err := c.fetcher.FetchOrders(ctx, ownerID, start, end, statuses...)
	if err != nil {
		return nil, err
	}

	c.save(ctx, key, orders)
	return orders, nil
}

func (c *CachedFetcher) FetchOrderItems(ctx context.Context, ownerID string, start, end time.Time) ([]domain.OrderItem, error) {
	key := cacheKey("items", ownerID, start, end)

	var items []domain.OrderItem
	if c.load(ctx, key, &items) {
		return items, nil
	}

	items, err := c.fetcher.FetchOrderItems(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	c.save(ctx, key, items)
	return items, nil
}

func (c *CachedFetcher) FetchTransactions(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Transaction, error) {
	key := cacheKey("transactions", ownerID, start, end)

	var transactions []domain.Transaction
	if c.load(ctx, key, &transactions) {
		return transactions, nil
	}

	transactions, err := c.fetcher.FetchTransactions(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	c.save(ctx, key, transactions)
	return transactions, nil
}

// WarmUp busca pedidos e transações direto no warehouse e sobrescreve o cache
func (c *CachedFetcher) WarmUp(ctx context.Context, ownerID string, start, end time.Time) error {
	orders, err := c.fetcher.FetchOrders(ctx, ownerID, start, end)
	if err != nil {
		return fmt.Errorf("erro ao aquecer cache de pedidos: %w", err)
	}
	c.save(ctx, cacheKey("orders", ownerID, start, end, statusesKey(nil)), orders)

	transactions, err := c.fetcher.FetchTransactions(ctx, ownerID, start, end)
	if err != nil {
		return fmt.Errorf("erro ao aquecer cache de transações: %w", err)
	}
	c.save(ctx, cacheKey("transactions", ownerID, start, end), transactions)

	return nil
}

func (c *CachedFetcher) load(ctx context.Context, key string, target any) bool {
	cached, err := c.store.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao ler cache, consultando o warehouse")
		return false
	}

	if err := json.Unmarshal([]byte(cached), target); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache corrompido, consultando o warehouse")
		return false
	}

	return true
}

func (c *CachedFetcher) save(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao serializar cache")
		return
	}

	if err := c.store.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao gravar cache")
	}
}
