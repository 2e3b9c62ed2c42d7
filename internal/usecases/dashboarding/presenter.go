package dashboarding

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Títulos das tabelas exibidas
const (
	TitlePreview  = "Visualização dos Dados"
	TitleFiltered = "Dados Filtrados"
)

//go:generate mockgen -source=presenter.go -destination=mocks/presenter.go -package=mocks

// Presenter é a porta de saída do dashboard. Cada chamada corresponde a um bloco da tela.
type Presenter interface {
	DisplayTable(title string, records []domain.SalesRecord)
	DisplayScalar(scalar domain.Scalar)
	DisplayBar(series domain.AggregateSeries)
	DisplayLine(series domain.AggregateSeries)
	DisplayMessage(msg string)
}

// ViewModelPresenter monta um DashboardView a partir das chamadas recebidas.
// Usado pelas respostas JSON e pela página HTML.
type ViewModelPresenter struct {
	view domain.DashboardView
}

func NewViewModelPresenter() *ViewModelPresenter {
	return &ViewModelPresenter{}
}

func (p *ViewModelPresenter) DisplayTable(title string, records []domain.SalesRecord) {
	table := &domain.TableView{
		Title: title,
		Rows:  domain.Rows(records),
	}

	if title == TitlePreview {
		p.view.Preview = table
		return
	}
	p.view.Filtered = table
}

func (p *ViewModelPresenter) DisplayScalar(scalar domain.Scalar) {
	view := &domain.ScalarView{
		Title:   scalar.Title,
		Value:   utils.DecimalToFloat(scalar.Value),
		Display: scalar.Display,
	}

	switch scalar.Name {
	case domain.ScalarTotalSales:
		p.view.TotalSales = view
	case domain.ScalarTotalQuantity:
		p.view.TotalQuantity = view
	}
}

func (p *ViewModelPresenter) DisplayBar(series domain.AggregateSeries) {
	p.setChart(series, chartOf(series, domain.ChartKindBar))
}

func (p *ViewModelPresenter) DisplayLine(series domain.AggregateSeries) {
	p.setChart(series, chartOf(series, domain.ChartKindLine))
}

func (p *ViewModelPresenter) DisplayMessage(msg string) {
	p.view.Message = msg
}

// View retorna o view-model acumulado até aqui
func (p *ViewModelPresenter) View() *domain.DashboardView {
	view := p.view
	return &view
}

func (p *ViewModelPresenter) setChart(series domain.AggregateSeries, chart *domain.ChartView) {
	switch series.Name {
	case domain.SeriesSalesByModel:
		p.view.SalesByModel = chart
	case domain.SeriesSalesByStore:
		p.view.SalesByStore = chart
	case domain.SeriesSalesOverTime:
		p.view.SalesOverTime = chart
	case domain.SeriesAveragePriceByModel:
		p.view.AveragePriceByModel = chart
	}
}

func chartOf(series domain.AggregateSeries, kind string) *domain.ChartView {
	chart := &domain.ChartView{
		Title:  series.Title,
		Kind:   kind,
		Points: make([]domain.ChartPoint, 0, series.Len()),
	}
	for _, point := range series.Points {
		chart.Points = append(chart.Points, domain.ChartPoint{
			Label: point.Key,
			Value: utils.DecimalToFloat(point.Value),
		})
	}
	return chart
}
