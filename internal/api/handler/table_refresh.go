package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// TableRefresher dispara e acompanha a recarga da tabela de vendas
type TableRefresher interface {
	TriggerManualRefresh() bool
	Status() domain.TableRefreshStatus
}

// RunTableRefresh inicia uma recarga manual em segundo plano
func RunTableRefresh(refresher TableRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if refresher == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Recarga da tabela não disponível", nil)
			return
		}

		started := refresher.TriggerManualRefresh()

		message := "Recarga da tabela iniciada com sucesso"
		if !started {
			message = "Recarga da tabela já está em andamento"
		}

		log.ForContext(r.Context()).WithField("started", started).Info("table-refresh: solicitação manual recebida")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"started": started,
		})
	})
}

// GetTableRefreshStatus retorna o estado do agendador e da tabela em memória
func GetTableRefreshStatus(refresher TableRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if refresher == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Recarga da tabela não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, refresher.Status())
	})
}
