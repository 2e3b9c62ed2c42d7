package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestServer_Handler(t *testing.T) {
	log.SetupTestLogger()

	cfg := &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "8000",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Dashboard:    config.Dashboard{CurrencySymbol: "R$", PreviewRows: 5},
		TableRefresh: config.TableRefresh{CronSchedule: "*/30 * * * *"},
	}

	ctrl := gomock.NewController(t)
	source := mocks.NewMockSalesSource(ctrl)
	source.EXPECT().Describe().Return("csv:Cellphone_Sales_Data.csv").AnyTimes()
	source.EXPECT().Load(gomock.Any()).Return(&domain.RawSalesTable{
		Header: domain.SalesColumns,
		Rows:   [][]string{{"A", "X", "2024-01-01", "100", "2", "200"}},
	}, nil)

	service := dashboarding.NewService(dashboarding.NewTableProvider(source), cfg.Dashboard)
	refresher := scheduler.NewTableRefreshService(service, cfg)

	srv, err := New(cfg, service, refresher)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"snapshot_id"`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/table/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records":1`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"table_loaded":true`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nao-existe", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"RT_001"`)
}
