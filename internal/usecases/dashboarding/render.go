package dashboarding

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Render filtra a tabela e calcula todas as agregações a partir da visão filtrada.
// Não guarda estado entre chamadas: cada agregação é recalculada do zero.
func Render(table *domain.SalesTable, criteria domain.FilterCriteria) *domain.Dashboard {
	view := Filter(table, criteria)

	return &domain.Dashboard{
		Criteria:            criteria,
		View:                view,
		TotalSales:          TotalSales(view),
		TotalQuantity:       TotalQuantity(view),
		SalesByModel:        SalesByModel(view),
		SalesByStore:        SalesByStore(view),
		SalesOverTime:       SalesOverTime(view),
		AveragePriceByModel: AveragePriceByModel(view),
	}
}
