package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// writeServiceError converte o erro do dashboard no código de API correspondente
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var dashErr *dashboarding.DashboardError
	if !errors.As(err, &dashErr) {
		logger.Error("dashboard: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
		return
	}

	if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
		logger.Error("dashboard: erro ao carregar a tabela de vendas")
	} else {
		logger.Warn("dashboard: tabela de vendas indisponível")
	}

	apiErrors.WriteError(w, dashErr.Code, dashErr.UserMessage(), nil)
}
