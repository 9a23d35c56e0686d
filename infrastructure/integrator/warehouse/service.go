package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/warehouse/bqclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Fetcher busca as linhas brutas de um cliente no warehouse. A ordem das linhas não é garantida.
type Fetcher interface {
	FetchOrders(ctx context.Context, ownerID string, start, end time.Time, statuses ...domain.OrderStatus) ([]domain.Order, error)
	FetchOrderItems(ctx context.Context, ownerID string, start, end time.Time) ([]domain.OrderItem, error)
	FetchTransactions(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Transaction, error)
}

type WarehouseService struct {
	dataset  string
	location *time.Location
	Client   bqclient.Client
}

func New(cfg *config.Config, client bqclient.Client) Fetcher {
	loc := cfg.App.Location
	if loc == nil {
		loc = time.Local
	}

	return &WarehouseService{
		dataset:  cfg.Warehouse.Dataset,
		location: loc,
		Client:   client,
	}
}

func (s *WarehouseService) FetchOrders(ctx context.Context, ownerID string, start, end time.Time, statuses ...domain.OrderStatus) ([]domain.Order, error) {
	query, args, err := ordersQuery(s.dataset, ownerID, start, end, statuses)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de pedidos: %w", err)
	}

	rows, err := s.Client.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrder(row, s.location))
	}

	logrus.WithFields(logrus.Fields{
		"people_id": ownerID,
		"orders":    len(orders),
	}).Debug("Pedidos carregados do warehouse")

	return orders, nil
}

func (s *WarehouseService) FetchOrderItems(ctx context.Context, ownerID string, start, end time.Time) ([]domain.OrderItem, error) {
	query, args, err := orderItemsQuery(s.dataset, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de itens: %w", err)
	}

	rows, err := s.Client.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens de pedidos: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toOrderItem(row, s.location))
	}

	logrus.WithFields(logrus.Fields{
		"people_id": ownerID,
		"items":     len(items),
	}).Debug("Itens de pedidos carregados do warehouse")

	return items, nil
}

func (s *WarehouseService) FetchTransactions(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Transaction, error) {
	query, args, err := transactionsQuery(s.dataset, ownerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de transações: %w", err)
	}

	rows, err := s.Client.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar transações: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, toTransaction(row, s.location))
	}

	logrus.WithFields(logrus.Fields{
		"people_id":    ownerID,
		"transactions": len(transactions),
	}).Debug("Transações carregadas do warehouse")

	return transactions, nil
}
