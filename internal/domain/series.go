package domain

import (
	"github.com/shopspring/decimal"
)

// Nomes das séries agregadas do dashboard
const (
	SeriesSalesByModel        = "sales_by_model"
	SeriesSalesByStore        = "sales_by_store"
	SeriesSalesOverTime       = "sales_over_time"
	SeriesAveragePriceByModel = "average_price_by_model"
)

// Nomes dos valores escalares
const (
	ScalarTotalSales    = "total_sales"
	ScalarTotalQuantity = "total_quantity"
)

type SeriesPoint struct {
	Key   string
	Value decimal.Decimal
}

// AggregateSeries mapeia uma chave de grupo (loja, modelo ou data) para um valor agregado.
// A ordem dos pontos faz parte do resultado.
type AggregateSeries struct {
	Name   string
	Title  string
	Points []SeriesPoint
}

func (s AggregateSeries) Len() int {
	return len(s.Points)
}

func (s AggregateSeries) Keys() []string {
	keys := make([]string, 0, len(s.Points))
	for _, p := range s.Points {
		keys = append(keys, p.Key)
	}
	return keys
}

// Total soma todos os valores da série
func (s AggregateSeries) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Points {
		total = total.Add(p.Value)
	}
	return total
}

// Value retorna o valor de uma chave, se existir
func (s AggregateSeries) Value(key string) (decimal.Decimal, bool) {
	for _, p := range s.Points {
		if p.Key == key {
			return p.Value, true
		}
	}
	return decimal.Zero, false
}

// Scalar é um valor único exibido no dashboard, já com a forma de exibição
type Scalar struct {
	Name    string
	Title   string
	Value   decimal.Decimal
	Display string
}
