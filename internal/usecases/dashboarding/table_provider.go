package dashboarding

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/observability/telemetry"
)

// TableProvider mantém a tabela normalizada entre requisições.
// Falhas nunca ficam guardadas: a próxima chamada tenta carregar de novo.
type TableProvider struct {
	source repository.SalesSource

	mu    sync.RWMutex
	table *domain.SalesTable

	loadMu sync.Mutex
}

func NewTableProvider(source repository.SalesSource) *TableProvider {
	return &TableProvider{source: source}
}

// Table retorna a tabela atual, carregando-a na primeira chamada
func (p *TableProvider) Table(ctx context.Context) (*domain.SalesTable, error) {
	if table := p.Current(); table != nil {
		return table, nil
	}

	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	// outra requisição pode ter carregado enquanto esperávamos
	if table := p.Current(); table != nil {
		return table, nil
	}

	table, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	p.swap(table)
	return table, nil
}

// Reload lê a fonte novamente e troca a tabela atual.
// Se a carga falhar a tabela anterior continua valendo.
func (p *TableProvider) Reload(ctx context.Context) (*domain.SalesTable, error) {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	table, err := p.load(ctx)
	if err != nil {
		if previous := p.Current(); previous != nil {
			logrus.WithFields(logrus.Fields{
				"snapshot_id": previous.SnapshotID,
				"source":      p.source.Describe(),
			}).WithError(err).Warn("dashboard: recarga falhou, mantendo tabela anterior")
		}
		return nil, err
	}

	p.swap(table)
	return table, nil
}

// Current retorna a tabela carregada ou nil, sem acessar a fonte
func (p *TableProvider) Current() *domain.SalesTable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table
}

func (p *TableProvider) swap(table *domain.SalesTable) {
	p.mu.Lock()
	p.table = table
	p.mu.Unlock()

	telemetry.TableRecords.Set(float64(table.Len()))
}

func (p *TableProvider) load(ctx context.Context) (*domain.SalesTable, error) {
	source := p.source.Describe()
	startTime := time.Now()

	raw, err := p.source.Load(ctx)
	if err == nil {
		var table *domain.SalesTable
		table, err = Normalize(raw)
		if err == nil {
			telemetry.TableLoadsTotal.WithLabelValues(telemetry.OutcomeSuccess).Inc()
			telemetry.TableLoadDuration.Observe(time.Since(startTime).Seconds())

			logrus.WithFields(logrus.Fields{
				"snapshot_id": table.SnapshotID,
				"source":      source,
				"records":     table.Len(),
				"duration_ms": time.Since(startTime).Milliseconds(),
			}).Info("dashboard: tabela de vendas carregada")

			return table, nil
		}
	}

	if errors.Is(err, domain.ErrFileNotFound) {
		telemetry.TableLoadsTotal.WithLabelValues(telemetry.OutcomeFileNotFound).Inc()
		logrus.WithField("source", source).Warn("dashboard: arquivo de vendas não encontrado")
	} else {
		telemetry.TableLoadsTotal.WithLabelValues(telemetry.OutcomeError).Inc()
		logrus.WithField("source", source).WithError(err).Error("dashboard: erro ao carregar tabela de vendas")
	}

	return nil, classifyError(err, source)
}
