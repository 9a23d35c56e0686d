package warehouse

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/warehouse/bqclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestToOrder_CoercesDirtyValues(t *testing.T) {
	loc := saoPaulo(t)

	row := bqclient.Row{
		"document_id":            "PED-1",
		"status":                 "PGPAG",
		"value":                  "abc",
		"total_amount":           big.NewRat(15050, 100),
		"value_paid":             40.0,
		"value_pending":          nil,
		"people_id_conciliation": "123",
		"created_at_gmt_minus_3": time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC),
	}

	order := toOrder(row, loc)
	assert.Equal(t, "PED-1", order.ID)
	assert.Equal(t, domain.OrderStatusPartiallyPaid, order.Status)
	assert.True(t, order.Value.IsZero())
	assert.Equal(t, "150.5", order.TotalAmount.String())
	assert.Equal(t, "40", order.Paid.String())
	assert.True(t, order.Pending.IsZero())
	assert.True(t, order.SplitTotal.IsZero())
	assert.Equal(t, time.Date(2025, time.March, 10, 14, 30, 0, 0, loc), order.CreatedAt)
}

func TestToTransaction(t *testing.T) {
	loc := saoPaulo(t)

	row := bqclient.Row{
		"transaction_id":         "TX-9",
		"status":                 "Aprovada",
		"amount":                 int64(200),
		"product_capture":        "Crédito 1x",
		"entry_mode":             "outros",
		"seller_principal":       "S",
		"product_name":           " Maria ",
		"customer_document":      "000.000.000-00",
		"created_at_gmt_minus_3": "2025-03-10 08:15:00",
	}

	tx := toTransaction(row, loc)
	assert.Equal(t, "TX-9", tx.ID)
	assert.True(t, tx.IsApprovedPrincipal())
	assert.Equal(t, "200", tx.Amount.String())
	assert.Equal(t, domain.EntryModeOther, tx.EntryMode)
	require.NotNil(t, tx.CustomerName)
	assert.Equal(t, "Maria", *tx.CustomerName)
	assert.Equal(t, time.Date(2025, time.March, 10, 8, 15, 0, 0, loc), tx.CreatedAt)
}

func TestToTransaction_MissingValues(t *testing.T) {
	tx := toTransaction(bqclient.Row{
		"seller_principal":       "N",
		"product_name":           nil,
		"created_at_gmt_minus_3": "not a date",
	}, time.UTC)

	assert.False(t, tx.Principal)
	assert.Nil(t, tx.CustomerName)
	assert.True(t, tx.CreatedAt.IsZero())
	assert.True(t, tx.Amount.IsZero())
}

func TestToOrderItem(t *testing.T) {
	item := toOrderItem(bqclient.Row{
		"document_id":    "PED-1",
		"responsible_id": "123",
		"description":    "Corte",
		"value_discount": 35.5,
		"alias_name":     "Ana",
	}, time.UTC)

	assert.Equal(t, "PED-1", item.OrderID)
	assert.Equal(t, "Ana", item.ProfessionalName)
	assert.Equal(t, "35.5", item.DiscountedValue.String())
	assert.True(t, item.CreatedAt.IsZero())
}
