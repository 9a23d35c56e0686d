package warehouse

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/warehouse/bqclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const createdAtColumn = "created_at_gmt_minus_3"

var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func toOrder(row bqclient.Row, loc *time.Location) domain.Order {
	return domain.Order{
		ID:          text(row, "document_id"),
		Status:      domain.OrderStatus(text(row, "status")),
		Value:       utils.ToDecimal(row["value"]),
		TotalAmount: utils.ToDecimal(row["total_amount"]),
		Paid:        utils.ToDecimal(row["value_paid"]),
		Pending:     utils.ToDecimal(row["value_pending"]),
		SplitTotal:  utils.ToDecimal(row["total_split"]),
		CreatedAt:   timestamp(row, createdAtColumn, loc),
		OwnerID:     text(row, "people_id_conciliation"),
	}
}

func toOrderItem(row bqclient.Row, loc *time.Location) domain.OrderItem {
	return domain.OrderItem{
		OrderID:          text(row, "document_id"),
		ResponsibleID:    text(row, "responsible_id"),
		PeopleID:         text(row, "people_id"),
		Description:      text(row, "description"),
		DiscountedValue:  utils.ToDecimal(row["value_discount"]),
		ProfessionalName: text(row, "alias_name"),
		CreatedAt:        timestamp(row, createdAtColumn, loc),
	}
}

func toTransaction(row bqclient.Row, loc *time.Location) domain.Transaction {
	id := text(row, "transaction_id")
	if id == "" {
		id = text(row, "id")
	}

	return domain.Transaction{
		ID:               id,
		Status:           domain.TransactionStatus(text(row, "status")),
		Amount:           utils.ToDecimal(row["amount"]),
		Capture:          text(row, "product_capture"),
		EntryMode:        text(row, "entry_mode"),
		Principal:        text(row, "seller_principal") == sellerPrincipalFlag,
		CustomerName:     optionalText(row, "product_name"),
		CustomerDocument: text(row, "customer_document"),
		CreatedAt:        timestamp(row, createdAtColumn, loc),
	}
}

func text(row bqclient.Row, column string) string {
	value, ok := row[column]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(value))
}

func optionalText(row bqclient.Row, column string) *string {
	value, ok := row[column]
	if !ok || value == nil {
		return nil
	}
	s := text(row, column)
	return &s
}

// timestamp devolve o tempo zero quando a coluna é nula ou ilegível
func timestamp(row bqclient.Row, column string, loc *time.Location) time.Time {
	value, ok := row[column]
	if !ok || value == nil {
		return time.Time{}
	}

	if t, ok := value.(time.Time); ok {
		return fromWallClock(t, loc)
	}

	raw := strings.TrimSpace(fmt.Sprint(value))
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return fromWallClock(t, loc)
		}
	}

	return time.Time{}
}
