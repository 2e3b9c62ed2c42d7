package dashboarding

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/observability/telemetry"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Dashboarder interface {
	Run(ctx context.Context, filters *domain.DashboardFilters, presenter Presenter) error
	Dashboard(ctx context.Context, filters *domain.DashboardFilters) (*domain.DashboardView, error)
	Sales(ctx context.Context, limit int) (*domain.SalesTableResponse, error)
	FilteredSales(ctx context.Context, filters *domain.DashboardFilters) (*domain.FilteredSalesResponse, error)
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	Reload(ctx context.Context) (*domain.SalesTable, error)
	Snapshot() *domain.SalesTable
}

type Service struct {
	tables *TableProvider
	cfg    config.Dashboard
}

func NewService(tables *TableProvider, cfg config.Dashboard) Dashboarder {
	return &Service{
		tables: tables,
		cfg:    cfg,
	}
}

// Run executa o pipeline completo e entrega cada bloco ao presenter, na ordem da tela.
// Se a tabela não puder ser carregada, apenas a mensagem é exibida e nada é calculado.
func (s *Service) Run(ctx context.Context, filters *domain.DashboardFilters, presenter Presenter) error {
	_, _, err := s.run(ctx, filters, presenter)
	return err
}

// Dashboard executa o pipeline e devolve o view-model completo, incluindo critérios e opções de filtro
func (s *Service) Dashboard(ctx context.Context, filters *domain.DashboardFilters) (*domain.DashboardView, error) {
	presenter := NewViewModelPresenter()

	table, dashboard, err := s.run(ctx, filters, presenter)
	view := presenter.View()
	if err != nil {
		return view, err
	}

	criteria := dashboard.Criteria.View()
	options := Options(table)

	view.SnapshotID = table.SnapshotID
	view.Criteria = &criteria
	view.Options = &options

	return view, nil
}

// Sales retorna as primeiras linhas da tabela carregada. limit <= 0 retorna todas.
func (s *Service) Sales(ctx context.Context, limit int) (*domain.SalesTableResponse, error) {
	table, err := s.tables.Table(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = -1
	}

	return &domain.SalesTableResponse{
		SnapshotID: table.SnapshotID,
		Source:     table.Source,
		LoadedAt:   table.LoadedAt.Format(time.RFC3339),
		Total:      table.Len(),
		Rows:       domain.Rows(table.Head(limit)),
	}, nil
}

func (s *Service) FilteredSales(ctx context.Context, filters *domain.DashboardFilters) (*domain.FilteredSalesResponse, error) {
	table, err := s.tables.Table(ctx)
	if err != nil {
		return nil, err
	}

	criteria := ResolveCriteria(table, filters)
	view := Filter(table, criteria)

	return &domain.FilteredSalesResponse{
		SnapshotID: table.SnapshotID,
		Criteria:   criteria.View(),
		Total:      view.Len(),
		Rows:       domain.Rows(view.Records),
	}, nil
}

func (s *Service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	table, err := s.tables.Table(ctx)
	if err != nil {
		return nil, err
	}

	options := Options(table)
	return &options, nil
}

func (s *Service) Reload(ctx context.Context) (*domain.SalesTable, error) {
	return s.tables.Reload(ctx)
}

// Snapshot retorna a tabela em memória sem acessar a fonte
func (s *Service) Snapshot() *domain.SalesTable {
	return s.tables.Current()
}

func (s *Service) run(ctx context.Context, filters *domain.DashboardFilters, presenter Presenter) (*domain.SalesTable, *domain.Dashboard, error) {
	table, err := s.tables.Table(ctx)
	if err != nil {
		s.fail(err, presenter)
		return nil, nil, err
	}

	criteria := ResolveCriteria(table, filters)
	dashboard := Render(table, criteria)

	presenter.DisplayTable(TitlePreview, table.Head(s.cfg.PreviewRows))
	presenter.DisplayTable(TitleFiltered, dashboard.View.Records)
	presenter.DisplayScalar(domain.Scalar{
		Name:    domain.ScalarTotalSales,
		Title:   TitleTotalSales,
		Value:   dashboard.TotalSales,
		Display: utils.FormatCurrency(s.cfg.CurrencySymbol, dashboard.TotalSales),
	})
	presenter.DisplayScalar(domain.Scalar{
		Name:    domain.ScalarTotalQuantity,
		Title:   TitleTotalQuantity,
		Value:   decimal.NewFromInt(dashboard.TotalQuantity),
		Display: utils.FormatInt(dashboard.TotalQuantity),
	})
	presenter.DisplayBar(dashboard.SalesByModel)
	presenter.DisplayBar(dashboard.SalesByStore)
	presenter.DisplayLine(dashboard.SalesOverTime)
	presenter.DisplayBar(dashboard.AveragePriceByModel)

	telemetry.RendersTotal.WithLabelValues(telemetry.OutcomeSuccess).Inc()
	telemetry.FilteredRecords.Observe(float64(dashboard.View.Len()))

	logrus.WithFields(logrus.Fields{
		"snapshot_id": table.SnapshotID,
		"records":     dashboard.View.Len(),
	}).Debug("dashboard: renderizado")

	return table, dashboard, nil
}

func (s *Service) fail(err error, presenter Presenter) {
	var dashErr *DashboardError
	if !errors.As(err, &dashErr) {
		dashErr = classifyError(err, "")
	}

	outcome := telemetry.OutcomeError
	if errors.Is(err, domain.ErrFileNotFound) {
		outcome = telemetry.OutcomeFileNotFound
	}
	telemetry.RendersTotal.WithLabelValues(outcome).Inc()

	presenter.DisplayMessage(dashErr.UserMessage())
}
