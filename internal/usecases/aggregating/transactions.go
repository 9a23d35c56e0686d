package aggregating

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// AggregateTransactions calcula volume, canal principal e ticket médio das transações
// aprovadas do vendedor principal
func AggregateTransactions(transactions []domain.Transaction) domain.TransactionMetrics {
	metrics := domain.TransactionMetrics{
		ApprovedVolume: decimal.Zero,
		PrimaryVolume:  decimal.Zero,
		OtherVolume:    decimal.Zero,
		AverageTicket:  decimal.Zero,
	}

	for _, tx := range transactions {
		if !tx.IsApprovedPrincipal() {
			continue
		}

		metrics.Count++
		metrics.ApprovedVolume = metrics.ApprovedVolume.Add(tx.Amount)
		if tx.EntryMode != domain.EntryModeOther {
			metrics.PrimaryVolume = metrics.PrimaryVolume.Add(tx.Amount)
		}
	}

	metrics.OtherVolume = metrics.ApprovedVolume.Sub(metrics.PrimaryVolume)

	if metrics.Count > 0 {
		metrics.AverageTicket = metrics.ApprovedVolume.Div(decimal.NewFromInt(int64(metrics.Count)))
	}

	return metrics
}

// SimplifyCaptureMethod agrupa as variações de crédito em à vista e parcelado
func SimplifyCaptureMethod(capture string) string {
	if capture == domain.CaptureCreditUpfront {
		return domain.MethodCreditUpfront
	}
	if strings.HasPrefix(capture, domain.CaptureCreditPrefix) {
		return domain.MethodCreditInstallments
	}
	return capture
}

// MethodBreakdown soma o volume aprovado por forma de pagamento simplificada
func MethodBreakdown(transactions []domain.Transaction) []domain.GroupedAmount {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsApprovedPrincipal() {
			continue
		}

		method := SimplifyCaptureMethod(tx.Capture)
		totals[method] = totals[method].Add(tx.Amount)
	}

	return sortedGroups(totals)
}

// StatusBreakdown soma o valor por status considerando todas as transações do vendedor principal
func StatusBreakdown(transactions []domain.Transaction) []domain.GroupedAmount {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.Principal {
			continue
		}

		status := string(tx.Status)
		totals[status] = totals[status].Add(tx.Amount)
	}

	return sortedGroups(totals)
}

// DailySeries soma o volume aprovado por dia e preenche com zero os dias sem vendas
func DailySeries(transactions []domain.Transaction, rng domain.DateRange) []domain.DailyPoint {
	loc := rng.Location()
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if !tx.IsApprovedPrincipal() || tx.CreatedAt.IsZero() || !rng.Contains(tx.CreatedAt) {
			continue
		}

		day := tx.CreatedAt.In(loc).Format(time.DateOnly)
		totals[day] = totals[day].Add(tx.Amount)
	}

	dates := rng.Dates()
	series := make([]domain.DailyPoint, 0, len(dates))
	for _, date := range dates {
		amount, ok := totals[date.Format(time.DateOnly)]
		if !ok {
			amount = decimal.Zero
		}
		series = append(series, domain.DailyPoint{Date: date, Amount: amount})
	}

	return series
}
