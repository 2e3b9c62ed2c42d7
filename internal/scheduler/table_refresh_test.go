package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		TableRefresh: config.TableRefresh{
			CronSchedule: "*/30 * * * *",
			Enabled:      enabled,
		},
	}
}

func salesRaw(store string) *domain.RawSalesTable {
	return &domain.RawSalesTable{
		Source: "csv:Cellphone_Sales_Data.csv",
		Header: domain.SalesColumns,
		Rows:   [][]string{{store, "X", "2024-01-01", "100", "2", "200"}},
	}
}

// blockingReloader segura a recarga até o canal release ser fechado
type blockingReloader struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingReloader) Reload(ctx context.Context) (*domain.SalesTable, error) {
	close(b.started)
	<-b.release
	return domain.NewSalesTable("bloqueada", "test", nil), nil
}

func (b *blockingReloader) Snapshot() *domain.SalesTable {
	return nil
}

func TestTableRefreshService_Refresh(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		setup    func(source *mocks.MockSalesSource)
		validate func(t *testing.T, err error, status domain.TableRefreshStatus)
	}{
		{
			name: "recarga bem sucedida - deve atualizar o status com a nova tabela",
			setup: func(source *mocks.MockSalesSource) {
				source.EXPECT().Load(gomock.Any()).Return(salesRaw("A"), nil)
			},
			validate: func(t *testing.T, err error, status domain.TableRefreshStatus) {
				require.NoError(t, err)
				assert.NotEmpty(t, status.SnapshotID)
				assert.Equal(t, 1, status.Records)
				assert.NotEmpty(t, status.LastStartedAt)
				assert.NotEmpty(t, status.LastCompletedAt)
				assert.Empty(t, status.LastError)
				assert.False(t, status.Running)
			},
		},
		{
			name: "arquivo inexistente - deve registrar o erro no status",
			setup: func(source *mocks.MockSalesSource) {
				source.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrFileNotFound)
			},
			validate: func(t *testing.T, err error, status domain.TableRefreshStatus) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrFileNotFound))
				assert.NotEmpty(t, status.LastError)
				assert.Empty(t, status.SnapshotID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mocks.NewMockSalesSource(ctrl)
			source.EXPECT().Describe().Return("csv:Cellphone_Sales_Data.csv").AnyTimes()
			tt.setup(source)

			provider := dashboarding.NewTableProvider(source)
			service := NewTableRefreshService(dashboarding.NewService(provider, config.Dashboard{}), testConfig(true))

			err := service.Refresh()
			tt.validate(t, err, service.Status())
		})
	}
}

func TestTableRefreshService_TriggerManualRefresh(t *testing.T) {
	log.SetupTestLogger()

	reloader := &blockingReloader{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	service := NewTableRefreshService(reloader, testConfig(false))

	assert.True(t, service.TriggerManualRefresh())

	select {
	case <-reloader.started:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não foi iniciada")
	}

	assert.True(t, service.Status().Running)
	assert.False(t, service.TriggerManualRefresh(), "não deve iniciar uma segunda recarga simultânea")
	assert.NoError(t, service.Refresh(), "chamada concorrente deve ser ignorada sem erro")

	close(reloader.release)

	assert.Eventually(t, func() bool {
		return !service.Status().Running
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTableRefreshService_StartDisabled(t *testing.T) {
	service := NewTableRefreshService(&blockingReloader{}, testConfig(false))

	err := service.Start(context.Background())
	assert.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.Equal(t, "*/30 * * * *", status.CronSchedule)
}

func TestTableRefreshService_StartInvalidCron(t *testing.T) {
	cfg := testConfig(true)
	cfg.TableRefresh.CronSchedule = "isso não é cron"
	service := NewTableRefreshService(&blockingReloader{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.Error(t, err)
}
