package dashboarding

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// DateLayout é o formato fixo da coluna Date
const DateLayout = time.DateOnly

type columnIndex struct {
	store, model, date, unitPrice, quantity, total int

	width int // menor número de campos que uma linha precisa ter
}

// Normalize converte a tabela lida da fonte em uma SalesTable tipada.
// Qualquer data fora do formato, coluna ausente ou valor numérico inválido
// falha a carga inteira; não há recuperação por linha.
func Normalize(raw *domain.RawSalesTable) (*domain.SalesTable, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: tabela não carregada", domain.ErrMalformedTable)
	}

	idx, err := resolveColumns(raw.Header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		line := i + 2 // a linha 1 é o cabeçalho
		record, err := normalizeRow(row, idx, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	snapshotID, err := utils.NewSnapshotID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da carga: %w", err)
	}

	return domain.NewSalesTable(snapshotID, raw.Source, records), nil
}

func resolveColumns(header []string) (columnIndex, error) {
	find := func(name string) (int, error) {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i, nil
			}
		}
		return -1, fmt.Errorf("%w: %q", domain.ErrMissingColumn, name)
	}

	var (
		idx columnIndex
		err error
	)
	targets := []struct {
		name string
		dst  *int
	}{
		{domain.ColumnStore, &idx.store},
		{domain.ColumnModel, &idx.model},
		{domain.ColumnDate, &idx.date},
		{domain.ColumnUnitPrice, &idx.unitPrice},
		{domain.ColumnQuantitySold, &idx.quantity},
		{domain.ColumnTotalSales, &idx.total},
	}
	for _, target := range targets {
		if *target.dst, err = find(target.name); err != nil {
			return columnIndex{}, err
		}
		if *target.dst+1 > idx.width {
			idx.width = *target.dst + 1
		}
	}

	return idx, nil
}

func normalizeRow(row []string, idx columnIndex, line int) (domain.SalesRecord, error) {
	if len(row) < idx.width {
		return domain.SalesRecord{}, fmt.Errorf("%w: linha %d tem %d campos", domain.ErrMalformedTable, line, len(row))
	}

	date, err := ParseSalesDate(row[idx.date])
	if err != nil {
		return domain.SalesRecord{}, fmt.Errorf("%w: linha %d, valor %q", domain.ErrDateParse, line, row[idx.date])
	}

	unitPrice, err := parseAmount(row[idx.unitPrice], domain.ColumnUnitPrice, line)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	total, err := parseAmount(row[idx.total], domain.ColumnTotalSales, line)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	quantity, err := parseQuantity(row[idx.quantity], line)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	return domain.SalesRecord{
		Store:        strings.TrimSpace(row[idx.store]),
		Model:        strings.TrimSpace(row[idx.model]),
		Date:         date,
		UnitPrice:    unitPrice,
		QuantitySold: quantity,
		TotalSales:   total,
	}, nil
}

// ParseSalesDate interpreta uma data no formato fixo YYYY-MM-DD
func ParseSalesDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(date), nil
}

func parseAmount(value, column string, line int) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: coluna %q, linha %d, valor %q", domain.ErrInvalidValue, column, line, value)
	}
	return amount, nil
}

// parseQuantity aceita inteiros não negativos, inclusive na forma "3.0"
func parseQuantity(value string, line int) (int64, error) {
	value = strings.TrimSpace(value)

	quantity, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		d, derr := decimal.NewFromString(value)
		if derr != nil || !d.IsInteger() {
			return 0, fmt.Errorf("%w: coluna %q, linha %d, valor %q", domain.ErrInvalidValue, domain.ColumnQuantitySold, line, value)
		}
		quantity = d.IntPart()
	}

	if quantity < 0 {
		return 0, fmt.Errorf("%w: coluna %q, linha %d, quantidade negativa %d", domain.ErrInvalidValue, domain.ColumnQuantitySold, line, quantity)
	}

	return quantity, nil
}
