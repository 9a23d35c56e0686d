package utils

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal converte valores vindos do warehouse. Nulo, vazio ou não numérico vira zero.
func ToDecimal(v any) decimal.Decimal {
	switch value := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return value
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(value)
	case float32:
		return ToDecimal(float64(value))
	case int64:
		return decimal.NewFromInt(value)
	case int:
		return decimal.NewFromInt(int64(value))
	case int32:
		return decimal.NewFromInt(int64(value))
	case *big.Rat:
		if value == nil {
			return decimal.Zero
		}
		// NUMERIC do BigQuery tem escala 9
		return parseDecimal(value.FloatString(9))
	case string:
		return parseDecimal(value)
	case []byte:
		return parseDecimal(string(value))
	case fmt.Stringer:
		return parseDecimal(value.String())
	}

	return decimal.Zero
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
