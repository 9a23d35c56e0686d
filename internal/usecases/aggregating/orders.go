// Package aggregating reduz as linhas de pedidos e transações às métricas do painel
package aggregating

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// AggregateOrders calcula os totais de pedidos concluídos, parciais e repassados
func AggregateOrders(orders []domain.Order) domain.OrderMetrics {
	metrics := domain.OrderMetrics{
		CompletedValue: decimal.Zero,
		PartialPaid:    decimal.Zero,
		PartialPending: decimal.Zero,
		PassedThrough:  decimal.Zero,
	}

	for _, order := range orders {
		switch {
		case order.IsCompleted():
			metrics.CompletedCount++
			metrics.CompletedValue = metrics.CompletedValue.Add(order.Value)
			metrics.PassedThrough = metrics.PassedThrough.Add(order.SplitTotal)
		case order.IsPartiallyPaid():
			metrics.PartialCount++
			metrics.PartialPaid = metrics.PartialPaid.Add(order.Paid)
			metrics.PartialPending = metrics.PartialPending.Add(order.Pending)
			metrics.PassedThrough = metrics.PassedThrough.Add(order.SplitTotal)
		}
	}

	return metrics
}

// RevenueByProfessional soma o valor com desconto dos itens de pedidos concluídos por profissional
func RevenueByProfessional(items []domain.OrderItem, orders []domain.Order) []domain.GroupedAmount {
	return completedItemRevenue(items, orders, func(item domain.OrderItem) string {
		return item.ProfessionalName
	})
}

// RevenueByProduct soma o valor com desconto dos itens de pedidos concluídos por descrição
func RevenueByProduct(items []domain.OrderItem, orders []domain.Order) []domain.GroupedAmount {
	return completedItemRevenue(items, orders, func(item domain.OrderItem) string {
		return item.Description
	})
}

func completedItemRevenue(
	items []domain.OrderItem,
	orders []domain.Order,
	labelOf func(domain.OrderItem) string,
) []domain.GroupedAmount {
	statusByOrder := make(map[string]domain.OrderStatus, len(orders))
	for _, order := range orders {
		statusByOrder[order.ID] = order.Status
	}

	totals := make(map[string]decimal.Decimal)
	for _, item := range items {
		// item sem pedido pai não tem status e fica de fora
		status, ok := statusByOrder[item.OrderID]
		if !ok || status != domain.OrderStatusCompleted {
			continue
		}

		label := labelOf(item)
		totals[label] = totals[label].Add(item.DiscountedValue)
	}

	return sortedGroups(totals)
}

// sortedGroups ordena por valor decrescente e, no empate, por rótulo.
// Rótulo vazio não forma grupo.
func sortedGroups(totals map[string]decimal.Decimal) []domain.GroupedAmount {
	groups := make([]domain.GroupedAmount, 0, len(totals))
	for label, amount := range totals {
		if label == "" {
			continue
		}
		groups = append(groups, domain.GroupedAmount{Label: label, Amount: amount})
	}

	sort.Slice(groups, func(i, j int) bool {
		if cmp := groups[i].Amount.Cmp(groups[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return groups[i].Label < groups[j].Label
	})

	return groups
}
