package domain

const DefaultPageSize = 5

// Page é a janela de uma tabela paginada
type Page[T any] struct {
	Rows        []T  `json:"rows"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}
