package dashboarding

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func day(value string) time.Time {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return date
}

func record(store, model, date string, price, quantity, total int64) domain.SalesRecord {
	return domain.SalesRecord{
		Store:        store,
		Model:        model,
		Date:         day(date),
		UnitPrice:    decimal.NewFromInt(price),
		QuantitySold: quantity,
		TotalSales:   decimal.NewFromInt(total),
	}
}

// twoRowTable é a tabela mínima com duas lojas, um modelo e dois dias
func twoRowTable() *domain.SalesTable {
	return domain.NewSalesTable("snap-2", "csv:test.csv", []domain.SalesRecord{
		record("A", "X", "2024-01-01", 100, 2, 200),
		record("B", "X", "2024-01-02", 100, 1, 100),
	})
}

func mixedTable() *domain.SalesTable {
	return domain.NewSalesTable("snap-mixed", "csv:test.csv", []domain.SalesRecord{
		record("Loja Centro", "Galaxy S23", "2024-01-03", 4000, 1, 4000),
		record("Loja Norte", "iPhone 15", "2024-01-01", 7000, 2, 14000),
		record("Loja Centro", "iPhone 15", "2024-01-02", 7200, 1, 7200),
		record("Loja Sul", "Moto G84", "2024-01-01", 1500, 3, 4500),
		record("Loja Norte", "Galaxy S23", "2024-01-03", 3800, 2, 7600),
		record("Loja Sul", "iPhone 15", "2024-01-05", 6800, 1, 6800),
	})
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		table    *domain.SalesTable
		criteria func(table *domain.SalesTable) domain.FilterCriteria
		validate func(t *testing.T, table *domain.SalesTable, view domain.FilteredView)
	}{
		{
			name:     "critérios padrão - deve retornar a tabela inteira na ordem da tabela",
			table:    mixedTable(),
			criteria: DefaultCriteria,
			validate: func(t *testing.T, table *domain.SalesTable, view domain.FilteredView) {
				assert.Equal(t, table.Records(), view.Records)
			},
		},
		{
			name:  "conjunto de lojas vazio - deve retornar visão vazia",
			table: mixedTable(),
			criteria: func(table *domain.SalesTable) domain.FilterCriteria {
				c := DefaultCriteria(table)
				c.Stores = []string{}
				return c
			},
			validate: func(t *testing.T, table *domain.SalesTable, view domain.FilteredView) {
				assert.True(t, view.IsEmpty())
				assert.NotNil(t, view.Records)
			},
		},
		{
			name:  "conjunto de modelos vazio - deve retornar visão vazia",
			table: mixedTable(),
			criteria: func(table *domain.SalesTable) domain.FilterCriteria {
				c := DefaultCriteria(table)
				c.Models = nil
				return c
			},
			validate: func(t *testing.T, table *domain.SalesTable, view domain.FilteredView) {
				assert.True(t, view.IsEmpty())
			},
		},
		{
			name:  "intervalo invertido - deve retornar visão vazia sem erro",
			table: twoRowTable(),
			criteria: func(table *domain.SalesTable) domain.FilterCriteria {
				c := DefaultCriteria(table)
				c.DateRange = domain.DateRange{Start: day("2024-01-03"), End: day("2024-01-01")}
				return c
			},
			validate: func(t *testing.T, table *domain.SalesTable, view domain.FilteredView) {
				assert.True(t, view.IsEmpty())
			},
		},
		{
			name:  "intervalo de um dia - deve incluir as duas pontas",
			table: mixedTable(),
			criteria: func(table *domain.SalesTable) domain.FilterCriteria {
				c := DefaultCriteria(table)
				c.DateRange = domain.DateRange{Start: day("2024-01-03"), End: day("2024-01-03")}
				return c
			},
			validate: func(t *testing.T, table *domain.SalesTable, view domain.FilteredView) {
				require.Equal(t, 2, view.Len())
				assert.Equal(t, "Loja Centro", view.Records[0].Store)
				assert.Equal(t, "Loja Norte", view.Records[1].Store)
			},
		},
		{
			name:  "loja e modelo combinados - deve aplicar todas as condições",
			table: mixedTable(),
			criteria: func(table *domain.SalesTable) domain.FilterCriteria {
				c := DefaultCriteria(table)
				c.Stores = []string{"Loja Centro", "Loja Sul"}
				c.Models = []string{"iPhone 15"}
				return c
			},
			validate: func(t *testing.T, table *domain.SalesTable, view domain.FilteredView) {
				require.Equal(t, 2, view.Len())
				assert.Equal(t, "2024-01-02", view.Records[0].Date.Format(time.DateOnly))
				assert.Equal(t, "2024-01-05", view.Records[1].Date.Format(time.DateOnly))
			},
		},
		{
			name:  "loja inexistente - deve retornar visão vazia",
			table: mixedTable(),
			criteria: func(table *domain.SalesTable) domain.FilterCriteria {
				c := DefaultCriteria(table)
				c.Stores = []string{"Loja Oeste"}
				return c
			},
			validate: func(t *testing.T, table *domain.SalesTable, view domain.FilteredView) {
				assert.True(t, view.IsEmpty())
			},
		},
		{
			name:     "tabela vazia - deve retornar visão vazia",
			table:    domain.NewSalesTable("vazia", "csv:test.csv", nil),
			criteria: DefaultCriteria,
			validate: func(t *testing.T, table *domain.SalesTable, view domain.FilteredView) {
				assert.True(t, view.IsEmpty())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.table.Records()

			view := Filter(tt.table, tt.criteria(tt.table))
			tt.validate(t, tt.table, view)

			assert.Equal(t, before, tt.table.Records(), "a tabela não pode ser alterada")
		})
	}
}

func TestFilter_ReturnsNewViewEachCall(t *testing.T) {
	table := twoRowTable()
	criteria := DefaultCriteria(table)

	first := Filter(table, criteria)
	first.Records[0].Store = "alterado"

	second := Filter(table, criteria)
	assert.Equal(t, "A", second.Records[0].Store)
	assert.Equal(t, "A", table.Record(0).Store)
}

func TestDefaultCriteria(t *testing.T) {
	criteria := DefaultCriteria(mixedTable())

	assert.Equal(t, []string{"Loja Centro", "Loja Norte", "Loja Sul"}, criteria.Stores)
	assert.Equal(t, []string{"Galaxy S23", "iPhone 15", "Moto G84"}, criteria.Models)
	assert.Equal(t, day("2024-01-01"), criteria.DateRange.Start)
	assert.Equal(t, day("2024-01-05"), criteria.DateRange.End)
}

func TestOptions(t *testing.T) {
	options := Options(mixedTable())

	assert.Equal(t, "2024-01-01", options.MinDate)
	assert.Equal(t, "2024-01-05", options.MaxDate)
	assert.Len(t, options.Stores, 3)
	assert.Len(t, options.Models, 3)

	empty := Options(domain.NewSalesTable("vazia", "csv:test.csv", nil))
	assert.Empty(t, empty.Stores)
	assert.Empty(t, empty.MinDate)
}

func TestResolveCriteria(t *testing.T) {
	table := mixedTable()
	start := day("2024-01-02")
	end := time.Date(2024, 1, 3, 18, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		filters  *domain.DashboardFilters
		validate func(t *testing.T, criteria domain.FilterCriteria)
	}{
		{
			name:    "sem filtros - deve usar os padrões",
			filters: nil,
			validate: func(t *testing.T, criteria domain.FilterCriteria) {
				assert.Equal(t, DefaultCriteria(table), criteria)
			},
		},
		{
			name:    "lojas informadas - deve substituir apenas as lojas",
			filters: &domain.DashboardFilters{Stores: []string{"Loja Sul"}, StoresSelected: true},
			validate: func(t *testing.T, criteria domain.FilterCriteria) {
				assert.Equal(t, []string{"Loja Sul"}, criteria.Stores)
				assert.Len(t, criteria.Models, 3)
			},
		},
		{
			name:    "modelos informados porém vazios - deve manter o conjunto vazio",
			filters: &domain.DashboardFilters{Models: []string{""}, ModelsSelected: true},
			validate: func(t *testing.T, criteria domain.FilterCriteria) {
				assert.Empty(t, criteria.Models)
				assert.True(t, Filter(table, criteria).IsEmpty())
			},
		},
		{
			name:    "datas informadas - deve truncar para o dia",
			filters: &domain.DashboardFilters{StartDate: &start, EndDate: &end},
			validate: func(t *testing.T, criteria domain.FilterCriteria) {
				assert.Equal(t, day("2024-01-02"), criteria.DateRange.Start)
				assert.Equal(t, day("2024-01-03"), criteria.DateRange.End)
				assert.Equal(t, 3, Filter(table, criteria).Len())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ResolveCriteria(table, tt.filters))
		})
	}
}
