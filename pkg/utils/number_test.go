package utils

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nulo", input: nil, expected: "0"},
		{name: "float", input: 10.5, expected: "10.5"},
		{name: "NaN", input: math.NaN(), expected: "0"},
		{name: "inteiro", input: int64(42), expected: "42"},
		{name: "numeric do BigQuery", input: big.NewRat(12345, 100), expected: "123.45"},
		{name: "texto numérico", input: " 99.90 ", expected: "99.9"},
		{name: "texto não numérico", input: "abc", expected: "0"},
		{name: "texto vazio", input: "", expected: "0"},
		{name: "bytes", input: []byte("7.25"), expected: "7.25"},
		{name: "tipo desconhecido", input: true, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDecimal(tt.input)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "esperado %s, obtido %s", tt.expected, got)
		})
	}
}
