package paginating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   int
	Name *string
}

func strPtr(s string) *string {
	return &s
}

func byName(r row) *string {
	return r.Name
}

func buildRows(names ...*string) []row {
	rows := make([]row, 0, len(names))
	for i, name := range names {
		rows = append(rows, row{ID: i, Name: name})
	}
	return rows
}

func twelveRows() []row {
	names := make([]*string, 0, 12)
	for i := 0; i < 12; i++ {
		names = append(names, strPtr(fmt.Sprintf("Cliente %02d", i)))
	}
	names[2] = strPtr("MARIA Souza")
	names[7] = strPtr("Ana Maria")
	names[10] = strPtr("mariana")
	names[11] = nil
	return buildRows(names...)
}

func TestFilter(t *testing.T) {
	rows := twelveRows()

	tests := []struct {
		name     string
		text     string
		expected []int
	}{
		{name: "Filtro vazio mantém tudo", text: "", expected: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{name: "Sem diferenciar maiúsculas", text: "maria", expected: []int{2, 7, 10}},
		{name: "Nenhuma linha casa", text: "joão", expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(rows, byName, tt.text)
			ids := make([]int, 0, len(filtered))
			for _, r := range filtered {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		rows     []row
		text     string
		page     int
		validate func(t *testing.T, rows []row, current, total int, hasPrevious, hasNext bool)
	}{
		{
			name: "Filtro com 3 resultados cabe em uma página e página 5 volta para 0",
			rows: twelveRows(),
			text: "MARIA",
			page: 5,
			validate: func(t *testing.T, rows []row, current, total int, hasPrevious, hasNext bool) {
				assert.Equal(t, 1, total)
				assert.Equal(t, 0, current)
				require.Len(t, rows, 3)
				assert.Equal(t, 2, rows[0].ID)
				assert.False(t, hasPrevious)
				assert.False(t, hasNext)
			},
		},
		{
			name: "Doze linhas geram três páginas",
			rows: twelveRows(),
			page: 1,
			validate: func(t *testing.T, rows []row, current, total int, hasPrevious, hasNext bool) {
				assert.Equal(t, 3, total)
				assert.Equal(t, 1, current)
				require.Len(t, rows, 5)
				assert.Equal(t, 5, rows[0].ID)
				assert.True(t, hasPrevious)
				assert.True(t, hasNext)
			},
		},
		{
			name: "Última página parcial",
			rows: twelveRows(),
			page: 2,
			validate: func(t *testing.T, rows []row, current, total int, hasPrevious, hasNext bool) {
				require.Len(t, rows, 2)
				assert.Equal(t, 10, rows[0].ID)
				assert.True(t, hasPrevious)
				assert.False(t, hasNext)
			},
		},
		{
			name: "Tabela vazia tem uma página",
			rows: nil,
			page: 0,
			validate: func(t *testing.T, rows []row, current, total int, hasPrevious, hasNext bool) {
				assert.Equal(t, 1, total)
				assert.Equal(t, 0, current)
				assert.Empty(t, rows)
				assert.False(t, hasNext)
			},
		},
		{
			name: "Página negativa volta para 0",
			rows: twelveRows(),
			page: -1,
			validate: func(t *testing.T, rows []row, current, total int, hasPrevious, hasNext bool) {
				assert.Equal(t, 0, current)
				assert.Equal(t, 0, rows[0].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(tt.rows, byName, tt.text, tt.page)
			tt.validate(t, page.Rows, page.CurrentPage, page.TotalPages, page.HasPrevious, page.HasNext)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 3, TotalPages(12, 5))
	assert.Equal(t, 3, TotalPages(12, 0))
}
