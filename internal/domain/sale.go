package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas obrigatórias da tabela de vendas
const (
	ColumnStore        = "Store"
	ColumnModel        = "Cellphone Model"
	ColumnDate         = "Date"
	ColumnUnitPrice    = "Unit Price"
	ColumnQuantitySold = "Quantity Sold"
	ColumnTotalSales   = "Total Sales"
)

// SalesColumns lista as colunas na ordem em que são exibidas
var SalesColumns = []string{
	ColumnStore,
	ColumnModel,
	ColumnDate,
	ColumnUnitPrice,
	ColumnQuantitySold,
	ColumnTotalSales,
}

// RawSalesTable é a tabela como lida da fonte, com todos os valores ainda em texto
type RawSalesTable struct {
	Source string
	Header []string
	Rows   [][]string
}

// SalesRecord representa uma linha da tabela de vendas já normalizada
type SalesRecord struct {
	Store        string
	Model        string
	Date         time.Time
	UnitPrice    decimal.Decimal
	QuantitySold int64
	TotalSales   decimal.Decimal // confiamos no valor gravado, não recalculamos
}

// SalesRow é a forma serializável de um SalesRecord
type SalesRow struct {
	Store        string  `json:"store"`
	Model        string  `json:"cellphone_model"`
	Date         string  `json:"date"`
	UnitPrice    float64 `json:"unit_price"`
	QuantitySold int64   `json:"quantity_sold"`
	TotalSales   float64 `json:"total_sales"`
}

func (r SalesRecord) Row() SalesRow {
	return SalesRow{
		Store:        r.Store,
		Model:        r.Model,
		Date:         r.Date.Format(time.DateOnly),
		UnitPrice:    r.UnitPrice.InexactFloat64(),
		QuantitySold: r.QuantitySold,
		TotalSales:   r.TotalSales.InexactFloat64(),
	}
}

// Rows converte uma lista de registros para a forma serializável
func Rows(records []SalesRecord) []SalesRow {
	rows := make([]SalesRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.Row())
	}
	return rows
}

// SalesTable é a tabela carregada uma vez por sessão. Não é alterada depois da normalização.
type SalesTable struct {
	SnapshotID string
	Source     string
	LoadedAt   time.Time
	records    []SalesRecord
}

func NewSalesTable(snapshotID, source string, records []SalesRecord) *SalesTable {
	copied := make([]SalesRecord, len(records))
	copy(copied, records)

	return &SalesTable{
		SnapshotID: snapshotID,
		Source:     source,
		LoadedAt:   time.Now(),
		records:    copied,
	}
}

func (t *SalesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

func (t *SalesTable) Record(i int) SalesRecord {
	return t.records[i]
}

// Head retorna uma cópia dos primeiros n registros
func (t *SalesTable) Head(n int) []SalesRecord {
	if n < 0 || n > t.Len() {
		n = t.Len()
	}

	head := make([]SalesRecord, n)
	copy(head, t.records[:n])
	return head
}

// Records retorna uma cópia de todos os registros
func (t *SalesTable) Records() []SalesRecord {
	return t.Head(-1)
}

// DateOnly descarta o horário e o fuso, mantendo apenas o dia do calendário
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
