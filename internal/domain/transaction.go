package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus é o status da transação no split de pagamentos
type TransactionStatus string

const (
	TransactionStatusApproved   TransactionStatus = "Aprovada"
	TransactionStatusCancelled  TransactionStatus = "Cancelada"
	TransactionStatusReversed   TransactionStatus = "Estornada"
	TransactionStatusChargeback TransactionStatus = "Chargeback"
)

const (
	// EntryModeOther marca transações que não passaram pelo canal principal
	EntryModeOther = "outros"

	CaptureCreditUpfront = "Crédito 1x"
	CaptureCreditPrefix  = "Crédito"

	MethodCreditUpfront      = "Crédito à Vista"
	MethodCreditInstallments = "Crédito Parcelado"
)

type Transaction struct {
	ID               string            `json:"id"`
	Status           TransactionStatus `json:"status"`
	Amount           decimal.Decimal   `json:"amount"`
	Capture          string            `json:"product_capture"`
	EntryMode        string            `json:"entry_mode"`
	Principal        bool              `json:"seller_principal"`
	CustomerName     *string           `json:"product_name"`
	CustomerDocument string            `json:"customer_document"`
	CreatedAt        time.Time         `json:"created_at"`
}

// IsApprovedPrincipal indica se a transação é aprovada e do vendedor principal
func (t Transaction) IsApprovedPrincipal() bool {
	return t.Principal && t.Status == TransactionStatusApproved
}

type TransactionMetrics struct {
	Count          int             `json:"count"`
	ApprovedVolume decimal.Decimal `json:"approved_volume"`
	PrimaryVolume  decimal.Decimal `json:"primary_volume"`
	OtherVolume    decimal.Decimal `json:"other_volume"`
	AverageTicket  decimal.Decimal `json:"average_ticket"`
}

// DailyPoint é um ponto da série diária de volume aprovado
type DailyPoint struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
