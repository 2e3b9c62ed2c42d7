package domain

import "github.com/shopspring/decimal"

// Dashboard é o resultado de uma renderização: a visão filtrada e as agregações
// calculadas a partir dela. Não tem identidade além de uma única requisição.
type Dashboard struct {
	Criteria            FilterCriteria
	View                FilteredView
	TotalSales          decimal.Decimal
	TotalQuantity       int64
	SalesByModel        AggregateSeries
	SalesByStore        AggregateSeries
	SalesOverTime       AggregateSeries
	AveragePriceByModel AggregateSeries
}

const (
	ChartKindBar  = "bar"
	ChartKindLine = "line"
)

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ChartView struct {
	Title  string       `json:"title"`
	Kind   string       `json:"kind"`
	Points []ChartPoint `json:"points"`
}

type ScalarView struct {
	Title   string  `json:"title"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

type TableView struct {
	Title string     `json:"title"`
	Rows  []SalesRow `json:"rows"`
}

// DashboardView é o view-model entregue à camada de apresentação (JSON e HTML)
type DashboardView struct {
	SnapshotID          string         `json:"snapshot_id,omitempty"`
	Message             string         `json:"message,omitempty"`
	Criteria            *CriteriaView  `json:"criteria,omitempty"`
	Options             *FilterOptions `json:"options,omitempty"`
	Preview             *TableView     `json:"preview,omitempty"`
	Filtered            *TableView     `json:"filtered,omitempty"`
	TotalSales          *ScalarView    `json:"total_sales,omitempty"`
	TotalQuantity       *ScalarView    `json:"total_quantity,omitempty"`
	SalesByModel        *ChartView     `json:"sales_by_model,omitempty"`
	SalesByStore        *ChartView     `json:"sales_by_store,omitempty"`
	SalesOverTime       *ChartView     `json:"sales_over_time,omitempty"`
	AveragePriceByModel *ChartView     `json:"average_price_by_model,omitempty"`
}

// SalesTableResponse é a resposta com a tabela completa (ou parte dela)
type SalesTableResponse struct {
	SnapshotID string     `json:"snapshot_id"`
	Source     string     `json:"source"`
	LoadedAt   string     `json:"loaded_at"`
	Total      int        `json:"total"`
	Rows       []SalesRow `json:"rows"`
}

// FilteredSalesResponse é a resposta com as linhas da visão filtrada
type FilteredSalesResponse struct {
	SnapshotID string       `json:"snapshot_id"`
	Criteria   CriteriaView `json:"criteria"`
	Total      int          `json:"total"`
	Rows       []SalesRow   `json:"rows"`
}
