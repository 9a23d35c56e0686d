package domain

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidMonthKey = errors.New("invalid month key")

// GoalMetric identifica a tabela de metas (GMV ou TPV)
type GoalMetric string

const (
	GoalMetricGMV GoalMetric = "GMV"
	GoalMetricTPV GoalMetric = "TPV"
)

// MonthKey identifica um mês de meta no formato mm/yyyy.
// A comparação é sempre por (ano, mês).
type MonthKey struct {
	Year  int
	Month time.Month
}

func NewMonthKey(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey aceita "m/yyyy" e "mm/yyyy"
func ParseMonthKey(s string) (MonthKey, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return MonthKey{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, s)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return MonthKey{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, s)
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return MonthKey{}, fmt.Errorf("%w: %q", ErrInvalidMonthKey, s)
	}

	return MonthKey{Year: year, Month: time.Month(month)}, nil
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%02d/%04d", int(k.Month), k.Year)
}

// Compare retorna -1, 0 ou 1
func (k MonthKey) Compare(other MonthKey) int {
	switch {
	case k.Year < other.Year:
		return -1
	case k.Year > other.Year:
		return 1
	case k.Month < other.Month:
		return -1
	case k.Month > other.Month:
		return 1
	}
	return 0
}

func (k MonthKey) After(other MonthKey) bool {
	return k.Compare(other) > 0
}

// FirstDay retorna 00:00 do primeiro dia do mês na localização informada
func (k MonthKey) FirstDay(loc *time.Location) time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, loc)
}

// LastDay retorna 00:00 do último dia do mês na localização informada
func (k MonthKey) LastDay(loc *time.Location) time.Time {
	return k.FirstDay(loc).AddDate(0, 1, -1)
}

func (k MonthKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MonthKey) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// GoalTable mapeia o mês para o valor da meta
type GoalTable map[MonthKey]decimal.Decimal

// Lookup retorna a meta do mês ou zero quando ausente
func (g GoalTable) Lookup(month MonthKey) decimal.Decimal {
	if goal, ok := g[month]; ok {
		return goal
	}
	return decimal.Zero
}

// AccumulatedUntil soma todas as metas com mês menor ou igual ao informado
func (g GoalTable) AccumulatedUntil(month MonthKey) decimal.Decimal {
	total := decimal.Zero
	for key, goal := range g {
		if !key.After(month) {
			total = total.Add(goal)
		}
	}
	return total
}

// Months retorna os meses da tabela do mais recente para o mais antigo
func (g GoalTable) Months() []MonthKey {
	months := make([]MonthKey, 0, len(g))
	for key := range g {
		months = append(months, key)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].After(months[j])
	})
	return months
}
