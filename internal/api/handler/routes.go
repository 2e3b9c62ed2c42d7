package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Sales(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales/filtered",
			Method:  http.MethodGet,
			Handler: ListFilteredSales(service),
		},
	}
}

func TableRefresh(refresher TableRefresher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/table/refresh",
			Method:  http.MethodPost,
			Handler: RunTableRefresh(refresher),
		},
		{
			Path:    "/v1/table/status",
			Method:  http.MethodGet,
			Handler: GetTableRefreshStatus(refresher),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
