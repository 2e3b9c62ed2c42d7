package handler

import (
	"fmt"
	"net/url"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Parâmetros de filtro aceitos na query string
const (
	paramStore     = "store"
	paramModel     = "model"
	paramStartDate = "start_date"
	paramEndDate   = "end_date"
	paramLimit     = "limit"
)

// parseFilters lê os filtros da query. Um parâmetro ausente assume o padrão (tudo);
// um parâmetro presente só com valores vazios seleciona um conjunto vazio.
func parseFilters(query url.Values) (*domain.DashboardFilters, error) {
	filters := &domain.DashboardFilters{}

	if stores, ok := query[paramStore]; ok {
		filters.Stores = stores
		filters.StoresSelected = true
	}
	if models, ok := query[paramModel]; ok {
		filters.Models = models
		filters.ModelsSelected = true
	}

	startDate, err := utils.ParseDate(query.Get(paramStartDate))
	if err != nil {
		return nil, fmt.Errorf("%s deve estar no formato AAAA-MM-DD", paramStartDate)
	}
	filters.StartDate = startDate

	endDate, err := utils.ParseDate(query.Get(paramEndDate))
	if err != nil {
		return nil, fmt.Errorf("%s deve estar no formato AAAA-MM-DD", paramEndDate)
	}
	filters.EndDate = endDate

	return filters, nil
}
