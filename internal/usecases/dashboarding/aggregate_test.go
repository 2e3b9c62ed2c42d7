package dashboarding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type pointValue struct {
	key   string
	value string
}

func seriesValues(series domain.AggregateSeries) []pointValue {
	values := make([]pointValue, 0, series.Len())
	for _, p := range series.Points {
		values = append(values, pointValue{key: p.Key, value: p.Value.String()})
	}
	return values
}

func TestRender_TwoRowScenario(t *testing.T) {
	table := twoRowTable()
	criteria := domain.FilterCriteria{
		Stores:    []string{"A", "B"},
		Models:    []string{"X"},
		DateRange: domain.DateRange{Start: day("2024-01-01"), End: day("2024-01-02")},
	}

	dashboard := Render(table, criteria)

	assert.Equal(t, 2, dashboard.View.Len())
	assert.Equal(t, "300", dashboard.TotalSales.String())
	assert.Equal(t, int64(3), dashboard.TotalQuantity)
	assert.Equal(t, []pointValue{{"X", "300"}}, seriesValues(dashboard.SalesByModel))
	assert.Equal(t, []pointValue{{"A", "200"}, {"B", "100"}}, seriesValues(dashboard.SalesByStore))
	assert.Equal(t, []pointValue{{"2024-01-01", "200"}, {"2024-01-02", "100"}}, seriesValues(dashboard.SalesOverTime))
	assert.Equal(t, []pointValue{{"X", "100"}}, seriesValues(dashboard.AveragePriceByModel))
}

func TestRender_InvertedRange(t *testing.T) {
	table := twoRowTable()
	criteria := DefaultCriteria(table)
	criteria.DateRange = domain.DateRange{Start: day("2024-01-03"), End: day("2024-01-01")}

	dashboard := Render(table, criteria)

	assert.True(t, dashboard.View.IsEmpty())
	assert.True(t, dashboard.TotalSales.IsZero())
	assert.Zero(t, dashboard.TotalQuantity)
	assert.Zero(t, dashboard.SalesByModel.Len())
	assert.Zero(t, dashboard.SalesByStore.Len())
	assert.Zero(t, dashboard.SalesOverTime.Len())
	assert.Zero(t, dashboard.AveragePriceByModel.Len())
}

func TestRender_EmptySelections(t *testing.T) {
	table := mixedTable()

	tests := []struct {
		name   string
		mutate func(c *domain.FilterCriteria)
	}{
		{
			name:   "sem lojas",
			mutate: func(c *domain.FilterCriteria) { c.Stores = []string{} },
		},
		{
			name:   "sem modelos",
			mutate: func(c *domain.FilterCriteria) { c.Models = []string{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := DefaultCriteria(table)
			tt.mutate(&criteria)

			dashboard := Render(table, criteria)

			assert.True(t, dashboard.TotalSales.IsZero())
			assert.Zero(t, dashboard.TotalQuantity)
			assert.Empty(t, dashboard.SalesByModel.Points)
			assert.Empty(t, dashboard.SalesByStore.Points)
			assert.Empty(t, dashboard.SalesOverTime.Points)
			assert.Empty(t, dashboard.AveragePriceByModel.Points)
		})
	}
}

func TestAggregates_Properties(t *testing.T) {
	table := mixedTable()

	criteriaList := map[string]domain.FilterCriteria{
		"padrão": DefaultCriteria(table),
		"duas lojas": func() domain.FilterCriteria {
			c := DefaultCriteria(table)
			c.Stores = []string{"Loja Norte", "Loja Sul"}
			return c
		}(),
		"três dias": func() domain.FilterCriteria {
			c := DefaultCriteria(table)
			c.DateRange = domain.DateRange{Start: day("2024-01-01"), End: day("2024-01-03")}
			return c
		}(),
	}

	for name, criteria := range criteriaList {
		t.Run(name, func(t *testing.T) {
			view := Filter(table, criteria)
			total := TotalSales(view)

			byModel := SalesByModel(view)
			byStore := SalesByStore(view)
			overTime := SalesOverTime(view)

			assert.True(t, total.Equal(byModel.Total()), "soma por modelo difere do total")
			assert.True(t, total.Equal(byStore.Total()), "soma por loja difere do total")
			assert.True(t, total.Equal(overTime.Total()), "soma por dia difere do total")

			for _, series := range []domain.AggregateSeries{byModel, byStore, AveragePriceByModel(view)} {
				for i := 1; i < series.Len(); i++ {
					assert.False(t, series.Points[i].Value.GreaterThan(series.Points[i-1].Value),
						"%s fora de ordem decrescente na posição %d", series.Name, i)
				}
			}

			for i := 1; i < overTime.Len(); i++ {
				assert.Less(t, overTime.Points[i-1].Key, overTime.Points[i].Key)
			}
		})
	}
}

func TestSalesByStore_TiesKeepDiscoveryOrder(t *testing.T) {
	view := domain.FilteredView{Records: []domain.SalesRecord{
		record("C", "X", "2024-01-01", 10, 1, 10),
		record("A", "X", "2024-01-01", 10, 1, 10),
		record("B", "X", "2024-01-01", 30, 1, 30),
		record("A", "Y", "2024-01-02", 5, 0, 0),
	}}

	series := SalesByStore(view)
	assert.Equal(t, []string{"B", "C", "A"}, series.Keys())
}

func TestSalesOverTime_OneEntryPerDay(t *testing.T) {
	view := Filter(mixedTable(), DefaultCriteria(mixedTable()))

	series := SalesOverTime(view)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"}, series.Keys())
	value, ok := series.Value("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, "18500", value.String())
	assert.Equal(t, domain.SeriesSalesOverTime, series.Name)
	assert.Equal(t, TitleSalesOverTime, series.Title)
}

func TestAveragePriceByModel(t *testing.T) {
	view := Filter(mixedTable(), DefaultCriteria(mixedTable()))

	series := AveragePriceByModel(view)

	assert.Equal(t, []string{"iPhone 15", "Galaxy S23", "Moto G84"}, series.Keys())
	iphone, _ := series.Value("iPhone 15")
	assert.True(t, iphone.Equal(decimal.NewFromInt(7000)))
	galaxy, _ := series.Value("Galaxy S23")
	assert.True(t, galaxy.Equal(decimal.NewFromInt(3900)))
}

func TestAveragePriceByModel_RepeatingDecimal(t *testing.T) {
	view := domain.FilteredView{Records: []domain.SalesRecord{
		record("A", "X", "2024-01-01", 10, 1, 10),
		record("A", "X", "2024-01-02", 10, 1, 10),
		record("A", "X", "2024-01-03", 11, 1, 11),
	}}

	value, ok := AveragePriceByModel(view).Value("X")
	require.True(t, ok)
	assert.Equal(t, "10.33", value.StringFixed(2))
}

func TestTotals(t *testing.T) {
	view := Filter(mixedTable(), DefaultCriteria(mixedTable()))

	assert.Equal(t, "44100", TotalSales(view).String())
	assert.Equal(t, int64(10), TotalQuantity(view))

	assert.True(t, TotalSales(domain.FilteredView{}).IsZero())
	assert.Zero(t, TotalQuantity(domain.FilteredView{}))
}
