package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados usados nos rótulos "outcome"
const (
	OutcomeSuccess      = "success"
	OutcomeFileNotFound = "file_not_found"
	OutcomeError        = "error"
)

var (
	// Métricas da tabela de vendas
	TableLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_dashboard_table_loads_total",
		Help: "Total de cargas da tabela de vendas por resultado",
	}, []string{"outcome"})

	TableRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_dashboard_table_records",
		Help: "Número de registros na tabela de vendas carregada",
	})

	TableLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sales_dashboard_table_load_duration_seconds",
		Help:    "Duração da carga e normalização da tabela",
		Buckets: prometheus.DefBuckets,
	})

	// Métricas do dashboard
	RendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_dashboard_renders_total",
		Help: "Total de renderizações do dashboard por resultado",
	}, []string{"outcome"})

	FilteredRecords = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sales_dashboard_filtered_records",
		Help:    "Tamanho da visão filtrada por renderização",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	// Métricas HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_dashboard_http_requests_total",
		Help: "Total de requisições HTTP",
	}, []string{"method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_dashboard_http_request_duration_seconds",
		Help:    "Latência das requisições HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)
