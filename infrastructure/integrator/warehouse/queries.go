package warehouse

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	viewOrders       = "vw_order"
	viewOrderItems   = "vw_order_itens"
	viewPeoples      = "vw_peoples"
	viewTransactions = "vw_transactions_split"

	sellerPrincipalFlag = "S"
)

func table(dataset, view string) string {
	return fmt.Sprintf("`%s.%s`", dataset, view)
}

// wallClockUTC repete o horário local em UTC, que é como as colunas *_gmt_minus_3 são gravadas
func wallClockUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// fromWallClock reinterpreta o horário gravado como horário da localização informada
func fromWallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func ordersQuery(dataset, ownerID string, start, end time.Time, statuses []domain.OrderStatus) (string, []any, error) {
	builder := squirrel.
		Select("*").
		From(table(dataset, viewOrders)).
		Where("created_at_gmt_minus_3 BETWEEN ? AND ?", wallClockUTC(start), wallClockUTC(end)).
		Where(squirrel.Eq{"people_id_conciliation": ownerID})

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		builder = builder.Where(squirrel.Eq{"status": values})
	}

	return builder.ToSql()
}

func orderItemsQuery(dataset, ownerID string, start, end time.Time) (string, []any, error) {
	return squirrel.
		Select("oi.*", "p.alias_name").
		From(table(dataset, viewOrderItems) + " AS oi").
		LeftJoin(table(dataset, viewPeoples) + " AS p ON oi.people_id = p.people_id").
		Where(squirrel.Eq{"oi.responsible_id": ownerID}).
		Where("oi.created_at_gmt_minus_3 BETWEEN ? AND ?", wallClockUTC(start), wallClockUTC(end)).
		ToSql()
}

func transactionsQuery(dataset, ownerID string, start, end time.Time) (string, []any, error) {
	return squirrel.
		Select("*").
		From(table(dataset, viewTransactions)).
		Where("created_at_gmt_minus_3 BETWEEN ? AND ?", wallClockUTC(start), wallClockUTC(end)).
		Where(squirrel.Eq{"people_id_conciliation": ownerID}).
		Where(squirrel.Eq{"seller_principal": sellerPrincipalFlag}).
		ToSql()
}
