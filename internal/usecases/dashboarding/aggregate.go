package dashboarding

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Títulos exibidos para cada agregação
const (
	TitleTotalSales          = "Total de Vendas"
	TitleTotalQuantity       = "Quantidade Total Vendida"
	TitleSalesByModel        = "Vendas por Modelo"
	TitleSalesByStore        = "Vendas por Loja"
	TitleSalesOverTime       = "Vendas ao Longo do Tempo"
	TitleAveragePriceByModel = "Preço Médio por Modelo"
)

// group acumula os valores de uma chave na ordem em que foi encontrada
type group struct {
	key   string
	sum   decimal.Decimal
	count int64
}

// TotalSales soma a coluna Total Sales da visão. Visão vazia soma zero.
func TotalSales(view domain.FilteredView) decimal.Decimal {
	total := decimal.Zero
	for _, record := range view.Records {
		total = total.Add(record.TotalSales)
	}
	return total
}

// TotalQuantity soma a coluna Quantity Sold da visão
func TotalQuantity(view domain.FilteredView) int64 {
	var total int64
	for _, record := range view.Records {
		total += record.QuantitySold
	}
	return total
}

// SalesByModel agrupa por modelo e ordena pela soma de vendas, do maior para o menor
func SalesByModel(view domain.FilteredView) domain.AggregateSeries {
	groups := groupBy(view, modelKey, totalSalesValue)
	sortDescending(groups, sumOf)

	return toSeries(domain.SeriesSalesByModel, TitleSalesByModel, groups, sumOf)
}

// SalesByStore agrupa por loja e ordena pela soma de vendas, do maior para o menor
func SalesByStore(view domain.FilteredView) domain.AggregateSeries {
	groups := groupBy(view, storeKey, totalSalesValue)
	sortDescending(groups, sumOf)

	return toSeries(domain.SeriesSalesByStore, TitleSalesByStore, groups, sumOf)
}

// SalesOverTime agrupa por dia e mantém a ordem cronológica
func SalesOverTime(view domain.FilteredView) domain.AggregateSeries {
	groups := groupBy(view, dateKey, totalSalesValue)

	// YYYY-MM-DD ordena lexicograficamente na mesma ordem das datas
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].key < groups[j].key
	})

	return toSeries(domain.SeriesSalesOverTime, TitleSalesOverTime, groups, sumOf)
}

// AveragePriceByModel calcula a média simples do Unit Price por modelo, do maior para o menor
func AveragePriceByModel(view domain.FilteredView) domain.AggregateSeries {
	groups := groupBy(view, modelKey, unitPriceValue)
	sortDescending(groups, meanOf)

	return toSeries(domain.SeriesAveragePriceByModel, TitleAveragePriceByModel, groups, meanOf)
}

func modelKey(r domain.SalesRecord) string { return r.Model }

func storeKey(r domain.SalesRecord) string { return r.Store }

func dateKey(r domain.SalesRecord) string { return r.Date.Format(DateLayout) }

func totalSalesValue(r domain.SalesRecord) decimal.Decimal { return r.TotalSales }

func unitPriceValue(r domain.SalesRecord) decimal.Decimal { return r.UnitPrice }

func sumOf(g group) decimal.Decimal { return g.sum }

// meanOf nunca recebe grupo vazio: grupos só existem a partir de registros presentes
func meanOf(g group) decimal.Decimal {
	return g.sum.Div(decimal.NewFromInt(g.count))
}

func groupBy(view domain.FilteredView, key func(domain.SalesRecord) string, value func(domain.SalesRecord) decimal.Decimal) []group {
	index := make(map[string]int)
	groups := make([]group, 0)

	for _, record := range view.Records {
		k := key(record)
		pos, exists := index[k]
		if !exists {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, group{key: k, sum: decimal.Zero})
		}
		groups[pos].sum = groups[pos].sum.Add(value(record))
		groups[pos].count++
	}

	return groups
}

// sortDescending ordena pelo valor decrescente; empates mantêm a ordem de descoberta
func sortDescending(groups []group, value func(group) decimal.Decimal) {
	sort.SliceStable(groups, func(i, j int) bool {
		return value(groups[i]).GreaterThan(value(groups[j]))
	})
}

func toSeries(name, title string, groups []group, value func(group) decimal.Decimal) domain.AggregateSeries {
	series := domain.AggregateSeries{
		Name:   name,
		Title:  title,
		Points: make([]domain.SeriesPoint, 0, len(groups)),
	}
	for _, g := range groups {
		series.Points = append(series.Points, domain.SeriesPoint{Key: g.key, Value: value(g)})
	}
	return series
}
