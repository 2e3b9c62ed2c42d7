package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const sampleCSV = `Store,Cellphone Model,Date,Unit Price,Quantity Sold,Total Sales
A,X,2024-01-01,100,2,200
B,X,2024-01-02,100,1,100
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Cellphone_Sales_Data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSalesSource_Load(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		validate func(t *testing.T, table *domain.RawSalesTable, err error)
	}{
		{
			name: "arquivo válido - deve retornar cabeçalho e linhas como texto",
			setup: func(t *testing.T) string {
				return writeCSV(t, sampleCSV)
			},
			validate: func(t *testing.T, table *domain.RawSalesTable, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.SalesColumns, table.Header)
				assert.Len(t, table.Rows, 2)
				assert.Equal(t, []string{"A", "X", "2024-01-01", "100", "2", "200"}, table.Rows[0])
				assert.Contains(t, table.Source, "csv:")
			},
		},
		{
			name: "arquivo inexistente - deve retornar ErrFileNotFound",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nao_existe.csv")
			},
			validate: func(t *testing.T, table *domain.RawSalesTable, err error) {
				assert.Nil(t, table)
				assert.True(t, errors.Is(err, domain.ErrFileNotFound))
				assert.Contains(t, err.Error(), "nao_existe.csv")
			},
		},
		{
			name: "caminho é diretório - deve retornar ErrFileNotFound",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			validate: func(t *testing.T, table *domain.RawSalesTable, err error) {
				assert.Nil(t, table)
				assert.True(t, errors.Is(err, domain.ErrFileNotFound))
			},
		},
		{
			name: "arquivo vazio - deve falhar sem cabeçalho",
			setup: func(t *testing.T) string {
				return writeCSV(t, "")
			},
			validate: func(t *testing.T, table *domain.RawSalesTable, err error) {
				assert.Nil(t, table)
				assert.True(t, errors.Is(err, domain.ErrMalformedTable))
			},
		},
		{
			name: "linha com campos a mais - deve falhar a carga inteira",
			setup: func(t *testing.T) string {
				return writeCSV(t, sampleCSV+"C,Y,2024-01-03,50,1,50,extra\n")
			},
			validate: func(t *testing.T, table *domain.RawSalesTable, err error) {
				assert.Nil(t, table)
				assert.True(t, errors.Is(err, domain.ErrMalformedTable))
			},
		},
		{
			name: "cabeçalho com BOM e espaços - deve limpar os nomes",
			setup: func(t *testing.T) string {
				return writeCSV(t, "\ufeffStore , Cellphone Model,Date,Unit Price,Quantity Sold,Total Sales\nA,X,2024-01-01,100,2,200\n")
			},
			validate: func(t *testing.T, table *domain.RawSalesTable, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.SalesColumns, table.Header)
			},
		},
		{
			name: "somente cabeçalho - deve retornar tabela sem linhas",
			setup: func(t *testing.T) string {
				return writeCSV(t, "Store,Cellphone Model,Date,Unit Price,Quantity Sold,Total Sales\n")
			},
			validate: func(t *testing.T, table *domain.RawSalesTable, err error) {
				require.NoError(t, err)
				assert.Empty(t, table.Rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewCSVSalesSource(tt.setup(t))
			table, err := source.Load(context.Background())
			tt.validate(t, table, err)
		})
	}
}

func TestCSVSalesSource_LoadCanceledContext(t *testing.T) {
	source := NewCSVSalesSource(writeCSV(t, sampleCSV))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Load(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}
