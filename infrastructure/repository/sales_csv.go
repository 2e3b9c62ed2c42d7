package repository

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type csvSalesSource struct {
	path string
}

func NewCSVSalesSource(path string) SalesSource {
	return &csvSalesSource{
		path: path,
	}
}

func (s *csvSalesSource) Describe() string {
	return "csv:" + s.path
}

func (s *csvSalesSource) Load(ctx context.Context) (*domain.RawSalesTable, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(domain.ErrFileNotFound, "%s", s.path)
		}
		return nil, errors.Wrapf(err, "source: erro ao acessar %s", s.path)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(domain.ErrFileNotFound, "%s é um diretório", s.path)
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "source: erro ao abrir %s", s.path)
	}
	defer file.Close()

	table, err := readCSV(ctx, file)
	if err != nil {
		return nil, errors.Wrapf(err, "source: erro ao ler %s", s.path)
	}
	table.Source = s.Describe()

	logrus.WithFields(logrus.Fields{
		"source":  table.Source,
		"records": len(table.Rows),
	}).Debug("source: arquivo csv lido")

	return table, nil
}

func readCSV(ctx context.Context, r io.Reader) (*domain.RawSalesTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(domain.ErrMalformedTable, "arquivo vazio, cabeçalho ausente")
	}
	if err != nil {
		return nil, errors.Wrap(domain.ErrMalformedTable, err.Error())
	}

	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	table := &domain.RawSalesTable{Header: header}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// linhas com número de campos diferente do cabeçalho invalidam a carga inteira
			return nil, errors.Wrap(domain.ErrMalformedTable, err.Error())
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
