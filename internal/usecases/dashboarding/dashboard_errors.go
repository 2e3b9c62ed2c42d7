package dashboarding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// DashboardError é um erro do pipeline com o código de API e a mensagem exibida ao usuário
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

// UserMessage é o texto legível mostrado na camada de apresentação
func (e *DashboardError) UserMessage() string {
	switch {
	case errors.Is(e.Err, domain.ErrFileNotFound):
		return fmt.Sprintf("Arquivo '%s' não encontrado. Por favor, coloque o arquivo no caminho configurado em SALES_CSV_PATH.", e.Details)
	case errors.Is(e.Err, domain.ErrDateParse):
		return fmt.Sprintf("A coluna Date contém um valor fora do formato AAAA-MM-DD: %s", e.Details)
	case errors.Is(e.Err, domain.ErrMissingColumn), errors.Is(e.Err, domain.ErrInvalidValue), errors.Is(e.Err, domain.ErrMalformedTable):
		return fmt.Sprintf("A tabela de vendas não tem o formato esperado: %s", e.Details)
	default:
		return "Não foi possível carregar os dados de vendas."
	}
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// classifyError converte erros da carga e da normalização em DashboardError
func classifyError(err error, source string) *DashboardError {
	var dashErr *DashboardError
	if errors.As(err, &dashErr) {
		return dashErr
	}

	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return NewDashboardError(domain.ErrFileNotFound, apiErrors.ErrSalesFileNotFound, strings.TrimPrefix(source, "csv:"))
	case errors.Is(err, domain.ErrDateParse):
		return NewDashboardError(domain.ErrDateParse, apiErrors.ErrInvalidDate, detailsOf(err, domain.ErrDateParse))
	case errors.Is(err, domain.ErrMissingColumn):
		return NewDashboardError(domain.ErrMissingColumn, apiErrors.ErrInvalidTable, detailsOf(err, domain.ErrMissingColumn))
	case errors.Is(err, domain.ErrInvalidValue):
		return NewDashboardError(domain.ErrInvalidValue, apiErrors.ErrInvalidTable, detailsOf(err, domain.ErrInvalidValue))
	case errors.Is(err, domain.ErrMalformedTable):
		return NewDashboardError(domain.ErrMalformedTable, apiErrors.ErrInvalidTable, detailsOf(err, domain.ErrMalformedTable))
	default:
		return NewDashboardError(domain.ErrSourceUnavailable, apiErrors.ErrDatabaseOperation, err.Error())
	}
}

// detailsOf retorna a mensagem completa sem repetir o texto do erro base
func detailsOf(err error, base error) string {
	msg := err.Error()
	if msg == base.Error() {
		return ""
	}
	return msg
}
