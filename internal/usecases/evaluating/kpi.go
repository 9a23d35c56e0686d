// Package evaluating compara o realizado de GMV e TPV com as metas do cliente
package evaluating

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var ErrNoGoalsConfigured = errors.New("no KPI goals configured")

var hundred = decimal.NewFromInt(100)

type Input struct {
	Orders       []domain.Order
	Transactions []domain.Transaction
	Month        domain.MonthKey
	GMVGoals     domain.GoalTable
	TPVGoals     domain.GoalTable
	Location     *time.Location
}

// window é um intervalo fechado [start, end]
type window struct {
	start time.Time
	end   time.Time
}

func (w window) contains(t time.Time) bool {
	return !t.IsZero() && !t.Before(w.start) && !t.After(w.end)
}

// monthWindow vai do primeiro instante ao último instante do mês
func monthWindow(month domain.MonthKey, loc *time.Location) window {
	start := month.FirstDay(loc)
	return window{start: start, end: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// accumulatedWindow vai de 1º de janeiro até o fim do mês selecionado
func accumulatedWindow(month domain.MonthKey, loc *time.Location) window {
	return window{
		start: time.Date(month.Year, time.January, 1, 0, 0, 0, 0, loc),
		end:   monthWindow(month, loc).end,
	}
}

// Evaluate calcula o bloco do mês e o bloco acumulado no ano
func Evaluate(in Input) (*domain.KPIReport, error) {
	if len(in.GMVGoals) == 0 && len(in.TPVGoals) == 0 {
		return nil, ErrNoGoalsConfigured
	}

	loc := in.Location
	if loc == nil {
		loc = time.Local
	}

	accumulated := evaluateWindow(in, accumulatedWindow(in.Month, loc))
	accumulated.GMVGoal = in.GMVGoals.AccumulatedUntil(in.Month)
	accumulated.TPVGoal = in.TPVGoals.AccumulatedUntil(in.Month)
	fillAdherence(&accumulated)

	monthly := evaluateWindow(in, monthWindow(in.Month, loc))
	monthly.GMVGoal = in.GMVGoals.Lookup(in.Month)
	monthly.TPVGoal = in.TPVGoals.Lookup(in.Month)
	fillAdherence(&monthly)

	return &domain.KPIReport{
		Month:           in.Month,
		AvailableMonths: AvailableMonths(in.GMVGoals, in.TPVGoals),
		Accumulated:     accumulated,
		Monthly:         monthly,
	}, nil
}

// evaluateWindow conta pedidos (todos os status) e transações e soma os valores da janela
func evaluateWindow(in Input, w window) domain.KPIBlock {
	block := domain.KPIBlock{
		GMVReal: decimal.Zero,
		TPVReal: decimal.Zero,
	}

	for _, order := range in.Orders {
		if w.contains(order.CreatedAt) {
			block.Orders++
			block.GMVReal = block.GMVReal.Add(order.TotalAmount)
		}
	}

	for _, tx := range in.Transactions {
		if w.contains(tx.CreatedAt) {
			block.Transactions++
			block.TPVReal = block.TPVReal.Add(tx.Amount)
		}
	}

	return block
}

func fillAdherence(block *domain.KPIBlock) {
	block.GMVAdherence = Adherence(block.GMVReal, block.GMVGoal)
	block.TPVAdherence = Adherence(block.TPVReal, block.TPVGoal)
}

// Adherence retorna real/meta em porcentagem, ou zero quando não há meta
func Adherence(achieved, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}
	return achieved.Div(goal).Mul(hundred)
}

// AvailableMonths une os meses das duas tabelas do mais recente para o mais antigo
func AvailableMonths(gmv, tpv domain.GoalTable) []domain.MonthKey {
	seen := make(map[domain.MonthKey]struct{}, len(gmv)+len(tpv))
	months := make([]domain.MonthKey, 0, len(gmv)+len(tpv))
	for _, table := range []domain.GoalTable{gmv, tpv} {
		for month := range table {
			if _, ok := seen[month]; ok {
				continue
			}
			seen[month] = struct{}{}
			months = append(months, month)
		}
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].After(months[j])
	})

	return months
}

// DefaultMonth escolhe o mês atual quando há meta para ele, senão o mais recente
func DefaultMonth(gmv, tpv domain.GoalTable, now time.Time) (domain.MonthKey, error) {
	months := AvailableMonths(gmv, tpv)
	if len(months) == 0 {
		return domain.MonthKey{}, ErrNoGoalsConfigured
	}

	current := domain.NewMonthKey(now)
	for _, month := range months {
		if month == current {
			return current, nil
		}
	}

	return months[0], nil
}
