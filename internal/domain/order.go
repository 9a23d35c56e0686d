package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus é o status do pedido como gravado no warehouse
type OrderStatus string

const (
	OrderStatusCompleted     OrderStatus = "PGCON" // Pagamento concluído
	OrderStatusPartiallyPaid OrderStatus = "PGPAG" // Pagamento parcial
)

// PassedThroughStatuses são os status cujos pedidos entram no total repassado
var PassedThroughStatuses = []OrderStatus{OrderStatusCompleted, OrderStatusPartiallyPaid}

type Order struct {
	ID          string          `json:"id"`
	Status      OrderStatus     `json:"status"`
	Value       decimal.Decimal `json:"value"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Paid        decimal.Decimal `json:"value_paid"`
	Pending     decimal.Decimal `json:"value_pending"`
	SplitTotal  decimal.Decimal `json:"total_split"`
	CreatedAt   time.Time       `json:"created_at"`
	OwnerID     string          `json:"owner_id"`
}

func (o Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

func (o Order) IsPartiallyPaid() bool {
	return o.Status == OrderStatusPartiallyPaid
}

// OrderItem é uma linha de pedido. O status vem do pedido pai.
type OrderItem struct {
	OrderID          string          `json:"order_id"`
	ResponsibleID    string          `json:"responsible_id"`
	PeopleID         string          `json:"people_id"`
	Description      string          `json:"description"`
	DiscountedValue  decimal.Decimal `json:"value_discount"`
	ProfessionalName string          `json:"alias_name"`
	CreatedAt        time.Time       `json:"created_at"`
}

// OrderMetrics reúne os totais do painel de gestão de pedidos
type OrderMetrics struct {
	CompletedCount int             `json:"completed_count"`
	CompletedValue decimal.Decimal `json:"completed_value"`
	PartialCount   int             `json:"partial_count"`
	PartialPaid    decimal.Decimal `json:"partial_paid"`
	PartialPending decimal.Decimal `json:"partial_pending"`
	PassedThrough  decimal.Decimal `json:"passed_through"`
}

// GroupedAmount é um total agrupado por rótulo (método, status, profissional, produto)
type GroupedAmount struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}
