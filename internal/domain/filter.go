package domain

import (
	"time"
)

// DateRange é um intervalo fechado de dias [Start, End]
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains informa se o dia está dentro do intervalo, incluindo as duas pontas.
// Um intervalo invertido não contém nenhum dia.
func (r DateRange) Contains(day time.Time) bool {
	day = DateOnly(day)
	return !day.Before(DateOnly(r.Start)) && !day.After(DateOnly(r.End))
}

func (r DateRange) IsInverted() bool {
	return DateOnly(r.Start).After(DateOnly(r.End))
}

// FilterCriteria é a seleção do usuário já resolvida contra os valores padrão
type FilterCriteria struct {
	Stores    []string
	Models    []string
	DateRange DateRange
}

// Matches aplica o teste de inclusão de um registro
func (c FilterCriteria) Matches(record SalesRecord, stores, models map[string]struct{}) bool {
	if _, ok := stores[record.Store]; !ok {
		return false
	}
	if _, ok := models[record.Model]; !ok {
		return false
	}
	return c.DateRange.Contains(record.Date)
}

// DashboardFilters são os filtros como chegam da camada de apresentação.
// Campos ausentes assumem o padrão (todas as lojas, todos os modelos, período completo).
type DashboardFilters struct {
	Stores         []string
	StoresSelected bool
	Models         []string
	ModelsSelected bool
	StartDate      *time.Time
	EndDate        *time.Time
}

// FilteredView é o subconjunto da tabela que atende aos critérios, na ordem da tabela
type FilteredView struct {
	Records []SalesRecord
}

func (v FilteredView) Len() int {
	return len(v.Records)
}

func (v FilteredView) IsEmpty() bool {
	return len(v.Records) == 0
}

// FilterOptions são as opções oferecidas nos filtros da interface
type FilterOptions struct {
	Stores  []string `json:"stores"`
	Models  []string `json:"models"`
	MinDate string   `json:"min_date,omitempty"`
	MaxDate string   `json:"max_date,omitempty"`
}

// CriteriaView é a forma serializável dos critérios aplicados
type CriteriaView struct {
	Stores    []string `json:"stores"`
	Models    []string `json:"models"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
}

func (c FilterCriteria) View() CriteriaView {
	view := CriteriaView{
		Stores: append([]string{}, c.Stores...),
		Models: append([]string{}, c.Models...),
	}
	if !c.DateRange.Start.IsZero() {
		view.StartDate = c.DateRange.Start.Format(time.DateOnly)
	}
	if !c.DateRange.End.IsZero() {
		view.EndDate = c.DateRange.End.Format(time.DateOnly)
	}
	return view
}
