package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Colunas da tabela no banco, na mesma ordem de domain.SalesColumns.
// Tudo é lido como texto para passar pela mesma normalização do csv.
var salesSelectColumns = []string{
	"s.store::text",
	"s.cellphone_model::text",
	"s.date::text",
	"s.unit_price::text",
	"s.quantity_sold::text",
	"s.total_sales::text",
}

type postgresSalesSource struct {
	conn  postgres.Queryer
	table string
}

func NewPostgresSalesSource(conn postgres.Queryer, table string) SalesSource {
	return &postgresSalesSource{
		conn:  conn,
		table: table,
	}
}

func (s *postgresSalesSource) Describe() string {
	return "postgres:" + s.table
}

func (s *postgresSalesSource) Load(ctx context.Context) (*domain.RawSalesTable, error) {
	query, args, err := buildSalesQuery(s.table)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao executar a query: %v", domain.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	table := &domain.RawSalesTable{
		Source: s.Describe(),
		Header: append([]string{}, domain.SalesColumns...),
	}

	for rows.Next() {
		row, err := scanSalesRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: erro ao escanear linha: %v", domain.ErrSourceUnavailable, err)
		}
		table.Rows = append(table.Rows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: erro durante a iteração de linhas: %v", domain.ErrSourceUnavailable, err)
	}

	logrus.WithFields(logrus.Fields{
		"source":  table.Source,
		"records": len(table.Rows),
	}).Debug("source: tabela lida do postgres")

	return table, nil
}

func buildSalesQuery(table string) (string, []any, error) {
	return squirrel.
		Select(salesSelectColumns...).
		From(table + " s").
		OrderBy("s.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanSalesRow(rows *sql.Rows) ([]string, error) {
	var (
		store, model, date         sql.NullString
		unitPrice, quantity, total sql.NullString
	)

	err := rows.Scan(
		&store,
		&model,
		&date,
		&unitPrice,
		&quantity,
		&total,
	)
	if err != nil {
		return nil, err
	}

	// NULL vira string vazia e falha na normalização, como um campo vazio no csv
	return []string{
		store.String,
		model.String,
		date.String,
		unitPrice.String,
		quantity.String,
		total.String,
	}, nil
}
