// Package scheduler contém os serviços de agendamento para recarga de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// TableReloader é quem sabe reler a fonte e trocar a tabela em memória
type TableReloader interface {
	Reload(ctx context.Context) (*domain.SalesTable, error)
	Snapshot() *domain.SalesTable
}

type TableRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// TableRefreshService recarrega periodicamente a tabela de vendas
type TableRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 TableRefreshConfig
	reloader               TableReloader
	ctx                    context.Context
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshErr         error
}

func NewTableRefreshService(reloader TableReloader, cfg *config.Config) *TableRefreshService {
	refreshConfig := TableRefreshConfig{
		CronSchedule: cfg.TableRefresh.CronSchedule, // Default: a cada 30 minutos
		Enabled:      cfg.TableRefresh.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de recarga da tabela carregada")

	return &TableRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		reloader:  reloader,
		ctx:       context.Background(),
	}
}

// Start agenda a recarga. Não faz nada se a recarga estiver desabilitada.
func (s *TableRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga agendada da tabela de vendas desabilitada por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga da tabela de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Refresh(); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada da tabela de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga da tabela de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga da tabela de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh relê a fonte. Uma recarga em andamento faz a chamada ser ignorada.
func (s *TableRefreshService) Refresh() error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga da tabela de vendas já em andamento, ignorando")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando recarga da tabela de vendas")

	table, err := s.reloader.Reload(s.ctx)

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRefreshCompletedAt = time.Now()
	s.lastRefreshErr = err
	s.refreshMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": table.SnapshotID,
		"records":     table.Len(),
	}).Info("Recarga da tabela de vendas concluída")

	return nil
}

// TriggerManualRefresh inicia uma recarga em segundo plano.
// Retorna false se já houver uma recarga em andamento.
func (s *TableRefreshService) TriggerManualRefresh() bool {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga da tabela de vendas já em andamento, ignorando solicitação manual")
		return false
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando recarga manual da tabela de vendas")
	go func() {
		if err := s.Refresh(); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual da tabela de vendas")
		}
	}()

	return true
}

// Status retorna o estado atual do agendador e da tabela em memória
func (s *TableRefreshService) Status() domain.TableRefreshStatus {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := domain.TableRefreshStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.refreshRunning,
		LastStartedAt:   formatTime(s.lastRefreshStartedAt),
		LastCompletedAt: formatTime(s.lastRefreshCompletedAt),
	}
	if s.lastRefreshErr != nil {
		status.LastError = s.lastRefreshErr.Error()
	}

	if table := s.reloader.Snapshot(); table != nil {
		status.SnapshotID = table.SnapshotID
		status.Records = table.Len()
		status.SnapshotLoadedAt = formatTime(table.LoadedAt)
	}

	return status
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
