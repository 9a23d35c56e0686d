package warehouse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestOrdersQuery(t *testing.T) {
	loc := saoPaulo(t)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, loc)
	end := time.Date(2025, time.March, 31, 23, 59, 59, 0, loc)

	tests := []struct {
		name     string
		statuses []domain.OrderStatus
		query    string
		args     []any
	}{
		{
			name:  "Todos os status",
			query: "SELECT * FROM `payvip_database.vw_order` WHERE created_at_gmt_minus_3 BETWEEN ? AND ? AND people_id_conciliation = ?",
			args: []any{
				time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
				"123",
			},
		},
		{
			name:     "Filtrando status",
			statuses: domain.PassedThroughStatuses,
			query:    "SELECT * FROM `payvip_database.vw_order` WHERE created_at_gmt_minus_3 BETWEEN ? AND ? AND people_id_conciliation = ? AND status IN (?,?)",
			args: []any{
				time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
				"123",
				"PGCON",
				"PGPAG",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := ordersQuery("payvip_database", "123", start, end, tt.statuses)
			require.NoError(t, err)
			assert.Equal(t, tt.query, query)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestOrderItemsQuery(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := orderItemsQuery("payvip_database", "123", start, end)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT oi.*, p.alias_name FROM `payvip_database.vw_order_itens` AS oi "+
			"LEFT JOIN `payvip_database.vw_peoples` AS p ON oi.people_id = p.people_id "+
			"WHERE oi.responsible_id = ? AND oi.created_at_gmt_minus_3 BETWEEN ? AND ?",
		query,
	)
	assert.Equal(t, []any{"123", start, end}, args)
}

func TestTransactionsQuery(t *testing.T) {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := transactionsQuery("payvip_database", "123", start, end)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM `payvip_database.vw_transactions_split` "+
			"WHERE created_at_gmt_minus_3 BETWEEN ? AND ? AND people_id_conciliation = ? AND seller_principal = ?",
		query,
	)
	assert.Equal(t, []any{start, end, "123", "S"}, args)
}
