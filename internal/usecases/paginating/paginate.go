// Package paginating filtra e fatia tabelas em páginas de tamanho fixo
package paginating

import (
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// FieldFunc extrai o campo usado no filtro. nil indica campo ausente.
type FieldFunc[T any] func(row T) *string

// Filter mantém as linhas cujo campo contém o texto, sem diferenciar maiúsculas.
// Filtro vazio mantém todas as linhas e campo ausente nunca casa.
func Filter[T any](rows []T, field FieldFunc[T], text string) []T {
	if text == "" {
		return rows
	}

	needle := strings.ToLower(text)
	filtered := make([]T, 0, len(rows))
	for _, row := range rows {
		value := field(row)
		if value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*value), needle) {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

// TotalPages nunca é menor que 1
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate filtra as linhas e devolve a página pedida. Página fora do intervalo volta para a primeira.
func Paginate[T any](rows []T, field FieldFunc[T], text string, page int) domain.Page[T] {
	return PaginateWithSize(rows, field, text, page, domain.DefaultPageSize)
}

func PaginateWithSize[T any](rows []T, field FieldFunc[T], text string, page, pageSize int) domain.Page[T] {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	filtered := Filter(rows, field, text)
	totalPages := TotalPages(len(filtered), pageSize)

	if page < 0 || page >= totalPages {
		page = 0
	}

	start := page * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	window := make([]T, 0, end-start)
	window = append(window, filtered[start:end]...)

	return domain.Page[T]{
		Rows:        window,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  len(filtered),
		HasPrevious: page > 0,
		HasNext:     page < totalPages-1,
	}
}
