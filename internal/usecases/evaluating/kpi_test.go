package evaluating

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func month(m time.Month, y int) domain.MonthKey {
	return domain.MonthKey{Year: y, Month: m}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "esperado %s, obtido %s", expected, actual)
}

func TestEvaluate_GoalsForSelectedMonth(t *testing.T) {
	loc := time.UTC
	in := Input{
		Month: month(time.February, 2025),
		GMVGoals: domain.GoalTable{
			month(time.January, 2025):  decimal.NewFromInt(1000),
			month(time.February, 2025): decimal.NewFromInt(2000),
		},
		TPVGoals: domain.GoalTable{},
		Orders: []domain.Order{
			{ID: "1", Status: domain.OrderStatusCompleted, TotalAmount: decimal.NewFromInt(600), CreatedAt: time.Date(2025, time.January, 10, 10, 0, 0, 0, loc)},
			{ID: "2", Status: "CANCE", TotalAmount: decimal.NewFromInt(400), CreatedAt: time.Date(2025, time.February, 28, 23, 59, 59, 0, loc)},
			{ID: "3", Status: domain.OrderStatusPartiallyPaid, TotalAmount: decimal.NewFromInt(1100), CreatedAt: time.Date(2025, time.February, 1, 0, 0, 0, 0, loc)},
			{ID: "4", Status: domain.OrderStatusCompleted, TotalAmount: decimal.NewFromInt(9999), CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, loc)},
			{ID: "5", Status: domain.OrderStatusCompleted, TotalAmount: decimal.NewFromInt(9999)},
		},
		Transactions: []domain.Transaction{
			{Status: domain.TransactionStatusApproved, Principal: true, Amount: decimal.NewFromInt(300), CreatedAt: time.Date(2025, time.February, 15, 12, 0, 0, 0, loc)},
			{Status: domain.TransactionStatusCancelled, Principal: true, Amount: decimal.NewFromInt(200), CreatedAt: time.Date(2025, time.January, 15, 12, 0, 0, 0, loc)},
		},
		Location: loc,
	}

	report, err := Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, month(time.February, 2025), report.Month)
	assert.Equal(t, []domain.MonthKey{month(time.February, 2025), month(time.January, 2025)}, report.AvailableMonths)

	// acumulado
	assertDecimal(t, "3000", report.Accumulated.GMVGoal)
	assert.Equal(t, 3, report.Accumulated.Orders)
	assertDecimal(t, "2100", report.Accumulated.GMVReal)
	assertDecimal(t, "70", report.Accumulated.GMVAdherence)
	assert.Equal(t, 2, report.Accumulated.Transactions)
	assertDecimal(t, "500", report.Accumulated.TPVReal)
	assertDecimal(t, "0", report.Accumulated.TPVGoal)
	assertDecimal(t, "0", report.Accumulated.TPVAdherence)

	// mês
	assertDecimal(t, "2000", report.Monthly.GMVGoal)
	assert.Equal(t, 2, report.Monthly.Orders)
	assertDecimal(t, "1500", report.Monthly.GMVReal)
	assertDecimal(t, "75", report.Monthly.GMVAdherence)
	assert.Equal(t, 1, report.Monthly.Transactions)
	assertDecimal(t, "300", report.Monthly.TPVReal)
}

func TestEvaluate_AccumulatedUsesCalendarOrder(t *testing.T) {
	goals := domain.GoalTable{
		month(time.December, 2024): decimal.NewFromInt(500),
		month(time.March, 2024):    decimal.NewFromInt(300),
	}

	tests := []struct {
		name     string
		selected domain.MonthKey
		expected string
	}{
		{name: "junho inclui março e exclui dezembro", selected: month(time.June, 2024), expected: "300"},
		{name: "fevereiro não inclui nenhuma meta", selected: month(time.February, 2024), expected: "0"},
		{name: "dezembro inclui as duas metas", selected: month(time.December, 2024), expected: "800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Evaluate(Input{Month: tt.selected, GMVGoals: goals, TPVGoals: goals, Location: time.UTC})
			require.NoError(t, err)
			assertDecimal(t, tt.expected, report.Accumulated.GMVGoal)
			assertDecimal(t, tt.expected, report.Accumulated.TPVGoal)
		})
	}
}

func TestEvaluate_MonthWithoutGoalHasZeroAdherence(t *testing.T) {
	in := Input{
		Month:    month(time.May, 2025),
		GMVGoals: domain.GoalTable{month(time.April, 2025): decimal.NewFromInt(100)},
		Orders: []domain.Order{
			{TotalAmount: decimal.NewFromInt(50), CreatedAt: time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)},
		},
		Location: time.UTC,
	}

	report, err := Evaluate(in)
	require.NoError(t, err)
	assertDecimal(t, "0", report.Monthly.GMVGoal)
	assertDecimal(t, "0", report.Monthly.GMVAdherence)
	assertDecimal(t, "50", report.Monthly.GMVReal)
	assertDecimal(t, "100", report.Accumulated.GMVGoal)
	assertDecimal(t, "50", report.Accumulated.GMVAdherence)
}

func TestEvaluate_NoGoalsConfigured(t *testing.T) {
	_, err := Evaluate(Input{Month: month(time.January, 2025)})
	assert.ErrorIs(t, err, ErrNoGoalsConfigured)
}

func TestAdherence(t *testing.T) {
	assertDecimal(t, "0", Adherence(decimal.NewFromInt(10), decimal.Zero))
	assertDecimal(t, "0", Adherence(decimal.NewFromInt(10), decimal.NewFromInt(-5)))
	assertDecimal(t, "150", Adherence(decimal.NewFromInt(15), decimal.NewFromInt(10)))
}

func TestDefaultMonth(t *testing.T) {
	goals := domain.GoalTable{
		month(time.January, 2025):  decimal.NewFromInt(1),
		month(time.March, 2025):    decimal.NewFromInt(1),
		month(time.December, 2024): decimal.NewFromInt(1),
	}

	tests := []struct {
		name     string
		gmv      domain.GoalTable
		tpv      domain.GoalTable
		now      time.Time
		expected domain.MonthKey
		err      error
	}{
		{
			name:     "Mês atual presente",
			gmv:      goals,
			now:      time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
			expected: month(time.January, 2025),
		},
		{
			name:     "Mês atual ausente usa o mais recente",
			gmv:      goals,
			now:      time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
			expected: month(time.March, 2025),
		},
		{
			name:     "Meses apenas de TPV também são considerados",
			gmv:      domain.GoalTable{},
			tpv:      domain.GoalTable{month(time.July, 2025): decimal.NewFromInt(1)},
			now:      time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
			expected: month(time.July, 2025),
		},
		{
			name: "Sem metas",
			now:  time.Now(),
			err:  ErrNoGoalsConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultMonth(tt.gmv, tt.tpv, tt.now)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
