package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// ListSales retorna a tabela carregada. O parâmetro limit restringe o número de linhas.
func ListSales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if value := r.URL.Query().Get(paramLimit); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro não negativo", nil)
				return
			}
			limit = parsed
		}

		response, err := service.Sales(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// ListFilteredSales retorna as linhas que atendem aos filtros
func ListFilteredSales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		response, err := service.FilteredSales(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
