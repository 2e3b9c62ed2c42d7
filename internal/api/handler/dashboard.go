package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetDashboard retorna o view-model completo do dashboard para os filtros informados
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		view, err := service.Dashboard(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"snapshot_id": view.SnapshotID,
			"records":     len(view.Filtered.Rows),
		}).Info("dashboard: renderizado com sucesso")

		writeJSON(w, r, http.StatusOK, view)
	})
}

// GetFilterOptions retorna lojas, modelos e o período disponíveis para os filtros
func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options, err := service.FilterOptions(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	})
}
