package warehouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/warehouse/bqclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/warehouse/bqclient/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, client bqclient.Client) Fetcher {
	cfg := &config.Config{
		App:       config.App{Location: saoPaulo(t)},
		Warehouse: config.Warehouse{Dataset: "payvip_database"},
	}
	return New(cfg, client)
}

func TestWarehouseService_FetchOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := newTestService(t, mockClient)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, saoPaulo(t))
	end := time.Date(2025, time.March, 31, 23, 59, 59, 0, saoPaulo(t))

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, orders []domain.Order, err error)
	}{
		{
			name: "Converte linhas em pedidos",
			setup: func() {
				mockClient.EXPECT().
					Query(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sql string, args []any) ([]bqclient.Row, error) {
						assert.Contains(t, sql, "status IN (?)")
						assert.Equal(t, "PGCON", args[3])
						return []bqclient.Row{
							{"document_id": "1", "status": "PGCON", "value": 100.0},
							{"document_id": "2", "status": "PGCON", "value": "n/a"},
						}, nil
					})
			},
			validate: func(t *testing.T, orders []domain.Order, err error) {
				require.NoError(t, err)
				require.Len(t, orders, 2)
				assert.Equal(t, "100", orders[0].Value.String())
				assert.True(t, orders[1].Value.IsZero())
			},
		},
		{
			name: "Erro do BigQuery é propagado",
			setup: func() {
				mockClient.EXPECT().
					Query(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("quota exceeded"))
			},
			validate: func(t *testing.T, orders []domain.Order, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "quota exceeded")
				assert.Nil(t, orders)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			orders, err := service.FetchOrders(context.Background(), "123", start, end, domain.OrderStatusCompleted)
			tt.validate(t, orders, err)
		})
	}
}

func TestWarehouseService_FetchTransactionsAndItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := newTestService(t, mockClient)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, saoPaulo(t))
	end := time.Date(2025, time.March, 1, 23, 59, 59, 0, saoPaulo(t))

	mockClient.EXPECT().
		Query(gomock.Any(), gomock.Any(), []any{
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 1, 23, 59, 59, 0, time.UTC),
			"123",
			"S",
		}).
		Return([]bqclient.Row{{"status": "Aprovada", "seller_principal": "S", "amount": 10.0}}, nil)

	transactions, err := service.FetchTransactions(context.Background(), "123", start, end)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.True(t, transactions[0].IsApprovedPrincipal())

	mockClient.EXPECT().
		Query(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bqclient.Row{}, nil)

	items, err := service.FetchOrderItems(context.Background(), "123", start, end)
	require.NoError(t, err)
	assert.Empty(t, items)
}
