package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportFilters struct {
	StartDate      *time.Time
	EndDate        *time.Time
	CustomerFilter string
	Page           int
}

type SalesReport struct {
	PeopleID         string             `json:"people_id"`
	Range            DateRange          `json:"range"`
	OrderCount       int                `json:"order_count"`
	Transactions     TransactionMetrics `json:"transactions"`
	ByMethod         []GroupedAmount    `json:"by_method"`
	ByStatus         []GroupedAmount    `json:"by_status"`
	Daily            []DailyPoint       `json:"daily"`
	TransactionsPage Page[Transaction]  `json:"transactions_page"`
}

type OrderManagementReport struct {
	PeopleID       string          `json:"people_id"`
	Range          DateRange       `json:"range"`
	Orders         OrderMetrics    `json:"orders"`
	ByProfessional []GroupedAmount `json:"by_professional"`
	ByProduct      []GroupedAmount `json:"by_product"`
}

// KPIBlock reúne o realizado e as metas de uma janela (mês ou acumulado)
type KPIBlock struct {
	Orders       int             `json:"orders"`
	GMVGoal      decimal.Decimal `json:"gmv_goal"`
	GMVReal      decimal.Decimal `json:"gmv_real"`
	GMVAdherence decimal.Decimal `json:"gmv_adherence"`
	Transactions int             `json:"transactions"`
	TPVGoal      decimal.Decimal `json:"tpv_goal"`
	TPVReal      decimal.Decimal `json:"tpv_real"`
	TPVAdherence decimal.Decimal `json:"tpv_adherence"`
}

type KPIReport struct {
	PeopleID        string     `json:"people_id"`
	Month           MonthKey   `json:"month"`
	AvailableMonths []MonthKey `json:"available_months"`
	Accumulated     KPIBlock   `json:"accumulated"`
	Monthly         KPIBlock   `json:"monthly"`
}
