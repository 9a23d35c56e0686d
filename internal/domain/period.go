package domain

import (
	"time"
)

// View identifica a tela que solicita o relatório
type View string

const (
	ViewSales           View = "sales"
	ViewOrderManagement View = "orders"
	ViewKPI             View = "kpi"
)

const (
	SalesMaxRangeDays           = 31
	OrderManagementMaxRangeDays = 180
)

// DateRange é um intervalo inclusivo de datas de calendário
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewDateRange usa o dia de calendário de cada data e fixa meia-noite na localização informada
func NewDateRange(start, end time.Time, loc *time.Location) DateRange {
	return DateRange{
		Start: calendarDate(start, loc),
		End:   calendarDate(end, loc),
	}
}

// Days retorna a diferença em dias entre o fim e o início
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()+12) / 24
}

func (r DateRange) Location() *time.Location {
	return r.Start.Location()
}

// StartInstant é o primeiro instante do intervalo
func (r DateRange) StartInstant() time.Time {
	return r.Start
}

// EndInstant é o último segundo do último dia do intervalo
func (r DateRange) EndInstant() time.Time {
	return r.End.AddDate(0, 0, 1).Add(-time.Second)
}

// Contains indica se o instante cai em algum dia do intervalo
func (r DateRange) Contains(t time.Time) bool {
	day := calendarDate(t.In(r.Location()), r.Location())
	return !day.Before(r.Start) && !day.After(r.End)
}

// Dates lista todos os dias do intervalo em ordem crescente
func (r DateRange) Dates() []time.Time {
	if r.End.Before(r.Start) {
		return nil
	}

	dates := make([]time.Time, 0, r.Days()+1)
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// YearRange cobre de 1º de janeiro a 31 de dezembro do ano informado
func YearRange(year int, loc *time.Location) DateRange {
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, loc),
	}
}

func calendarDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
