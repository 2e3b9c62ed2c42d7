package handler

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

// Dimensões do gráfico de linha em unidades do viewBox
const (
	lineWidth   = 600.0
	lineHeight  = 200.0
	linePadding = 10.0
)

type option struct {
	Value    string
	Selected bool
}

type bar struct {
	Label   string
	Display string
	Percent float64
}

type barChart struct {
	Title string
	Bars  []bar
}

type linePoint struct {
	X, Y    float64
	Label   string
	Display string
}

type lineChart struct {
	Title    string
	Polyline string
	Points   []linePoint
	Width    float64
	Height   float64
}

type pageData struct {
	Title        string
	Message      string
	View         *domain.DashboardView
	StoreOptions []option
	ModelOptions []option
	StartDate    string
	EndDate      string
	MinDate      string
	MaxDate      string
	Bars         []barChart
	Line         *lineChart
}

// DashboardPage renderiza o dashboard em HTML com o formulário de filtros.
// Sem o arquivo de vendas a página mostra apenas a mensagem.
func DashboardPage(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := pageData{Title: "Dashboard de Vendas de Celulares"}
		status := http.StatusOK

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			data.Message = err.Error()
			renderPage(w, r, http.StatusBadRequest, data)
			return
		}

		view, err := service.Dashboard(r.Context(), filters)
		if err != nil {
			status = http.StatusInternalServerError
			if view != nil {
				data.Message = view.Message
			}

			var dashErr *dashboarding.DashboardError
			if errors.As(err, &dashErr) {
				status = apiErrors.StatusFor(dashErr.Code)
			}
			if data.Message == "" {
				data.Message = "Não foi possível carregar os dados de vendas."
			}

			log.ForContext(r.Context()).WithError(err).Warn("dashboard-page: exibindo mensagem de erro")
			renderPage(w, r, status, data)
			return
		}

		fillPageData(&data, view)
		renderPage(w, r, status, data)
	})
}

func fillPageData(data *pageData, view *domain.DashboardView) {
	data.View = view

	if view.Options != nil {
		data.MinDate = view.Options.MinDate
		data.MaxDate = view.Options.MaxDate
	}
	if view.Criteria != nil && view.Options != nil {
		data.StoreOptions = options(view.Options.Stores, view.Criteria.Stores)
		data.ModelOptions = options(view.Options.Models, view.Criteria.Models)
		data.StartDate = view.Criteria.StartDate
		data.EndDate = view.Criteria.EndDate
	}

	for _, chart := range []*domain.ChartView{view.SalesByModel, view.SalesByStore, view.AveragePriceByModel} {
		if chart != nil {
			data.Bars = append(data.Bars, toBarChart(chart))
		}
	}
	if view.SalesOverTime != nil {
		data.Line = toLineChart(view.SalesOverTime)
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard-page: erro ao renderizar template")
		http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("dashboard-page: erro ao enviar página")
	}
}

func options(all, selected []string) []option {
	opts := make([]option, 0, len(all))
	for _, value := range all {
		opts = append(opts, option{Value: value, Selected: slices.Contains(selected, value)})
	}
	return opts
}

func toBarChart(chart *domain.ChartView) barChart {
	maxValue := 0.0
	for _, p := range chart.Points {
		maxValue = max(maxValue, p.Value)
	}

	bc := barChart{Title: chart.Title, Bars: make([]bar, 0, len(chart.Points))}
	for _, p := range chart.Points {
		percent := 0.0
		if maxValue > 0 {
			percent = p.Value / maxValue * 100
		}
		bc.Bars = append(bc.Bars, bar{
			Label:   p.Label,
			Display: fmt.Sprintf("%.2f", p.Value),
			Percent: percent,
		})
	}
	return bc
}

// toLineChart posiciona os pontos no viewBox, mantendo a ordem cronológica no eixo X
func toLineChart(chart *domain.ChartView) *lineChart {
	lc := &lineChart{
		Title:  chart.Title,
		Width:  lineWidth,
		Height: lineHeight,
		Points: make([]linePoint, 0, len(chart.Points)),
	}
	if len(chart.Points) == 0 {
		return lc
	}

	maxValue := 0.0
	for _, p := range chart.Points {
		maxValue = max(maxValue, p.Value)
	}

	usableWidth := lineWidth - 2*linePadding
	usableHeight := lineHeight - 2*linePadding

	coords := make([]string, 0, len(chart.Points))
	for i, p := range chart.Points {
		x := linePadding + usableWidth/2
		if len(chart.Points) > 1 {
			x = linePadding + usableWidth*float64(i)/float64(len(chart.Points)-1)
		}
		y := lineHeight - linePadding
		if maxValue > 0 {
			y = lineHeight - linePadding - usableHeight*p.Value/maxValue
		}

		lc.Points = append(lc.Points, linePoint{X: x, Y: y, Label: p.Label, Display: fmt.Sprintf("%.2f", p.Value)})
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	lc.Polyline = strings.Join(coords, " ")

	return lc
}
