// Package repository contém as fontes de onde a tabela de vendas é lida
package repository

//go:generate mockgen -source=sales_source.go -destination=mocks/sales_source.go -package=mocks

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesSource lê a tabela de vendas completa, com os valores ainda em texto.
// Nenhuma validação de esquema é feita aqui além do que o leitor exige.
type SalesSource interface {
	Load(ctx context.Context) (*domain.RawSalesTable, error)
	Describe() string
}
