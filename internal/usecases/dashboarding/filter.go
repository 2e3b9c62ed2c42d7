package dashboarding

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Filter retorna os registros da tabela que atendem aos critérios, na ordem da tabela.
// A tabela não é alterada e uma nova visão é criada a cada chamada.
// Conjuntos vazios de lojas ou modelos e intervalos invertidos produzem uma visão vazia.
func Filter(table *domain.SalesTable, criteria domain.FilterCriteria) domain.FilteredView {
	view := domain.FilteredView{Records: []domain.SalesRecord{}}

	if len(criteria.Stores) == 0 || len(criteria.Models) == 0 || criteria.DateRange.IsInverted() {
		return view
	}

	stores := toSet(criteria.Stores)
	models := toSet(criteria.Models)

	for i := 0; i < table.Len(); i++ {
		record := table.Record(i)
		if criteria.Matches(record, stores, models) {
			view.Records = append(view.Records, record)
		}
	}

	return view
}

// Options calcula os valores distintos de loja e modelo (na ordem em que aparecem)
// e o período completo coberto pela tabela
func Options(table *domain.SalesTable) domain.FilterOptions {
	options := domain.FilterOptions{
		Stores: []string{},
		Models: []string{},
	}

	minDate, maxDate, ok := dateBounds(table)
	if ok {
		options.MinDate = minDate.Format(DateLayout)
		options.MaxDate = maxDate.Format(DateLayout)
	}

	seenStores := make(map[string]struct{})
	seenModels := make(map[string]struct{})
	for i := 0; i < table.Len(); i++ {
		record := table.Record(i)
		if _, seen := seenStores[record.Store]; !seen {
			seenStores[record.Store] = struct{}{}
			options.Stores = append(options.Stores, record.Store)
		}
		if _, seen := seenModels[record.Model]; !seen {
			seenModels[record.Model] = struct{}{}
			options.Models = append(options.Models, record.Model)
		}
	}

	return options
}

// DefaultCriteria seleciona todas as lojas, todos os modelos e o período [min, max] da tabela
func DefaultCriteria(table *domain.SalesTable) domain.FilterCriteria {
	options := Options(table)
	minDate, maxDate, _ := dateBounds(table)

	return domain.FilterCriteria{
		Stores: options.Stores,
		Models: options.Models,
		DateRange: domain.DateRange{
			Start: minDate,
			End:   maxDate,
		},
	}
}

// ResolveCriteria combina os filtros informados pelo usuário com os valores padrão.
// Um filtro informado porém vazio continua vazio; só o filtro ausente assume o padrão.
func ResolveCriteria(table *domain.SalesTable, filters *domain.DashboardFilters) domain.FilterCriteria {
	criteria := DefaultCriteria(table)
	if filters == nil {
		return criteria
	}

	if filters.StoresSelected {
		criteria.Stores = nonEmpty(filters.Stores)
	}
	if filters.ModelsSelected {
		criteria.Models = nonEmpty(filters.Models)
	}
	if filters.StartDate != nil {
		criteria.DateRange.Start = domain.DateOnly(*filters.StartDate)
	}
	if filters.EndDate != nil {
		criteria.DateRange.End = domain.DateOnly(*filters.EndDate)
	}

	return criteria
}

func dateBounds(table *domain.SalesTable) (time.Time, time.Time, bool) {
	if table.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}

	minDate := table.Record(0).Date
	maxDate := minDate
	for i := 1; i < table.Len(); i++ {
		date := table.Record(i).Date
		if date.Before(minDate) {
			minDate = date
		}
		if date.After(maxDate) {
			maxDate = date
		}
	}

	return minDate, maxDate, true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
