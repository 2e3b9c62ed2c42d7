package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := salesSource(ctx, cfg)
	defer closeSource()

	tables := dashboarding.NewTableProvider(source)
	dashboardService := dashboarding.NewService(tables, cfg.Dashboard)

	// Carga inicial: a ausência do arquivo não impede o servidor de subir,
	// a mensagem é exibida a cada requisição até o arquivo aparecer
	if _, err := tables.Table(ctx); err != nil {
		logrus.WithError(err).Warn("Tabela de vendas não carregada na inicialização")
	}

	tableRefreshService := scheduler.NewTableRefreshService(dashboardService, cfg)
	if err := tableRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga da tabela de vendas")
	} else {
		logrus.Info("Agendador de recarga da tabela de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, tableRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// salesSource escolhe a fonte da tabela de vendas conforme SALES_SOURCE
func salesSource(ctx context.Context, cfg *config.Config) (repository.SalesSource, func()) {
	switch cfg.Sales.Source {
	case config.SourcePostgres:
		conn := pgconn(ctx, cfg.Database)
		logrus.WithField("table", cfg.Sales.TableName).Info("Lendo vendas do PostgreSQL")
		return repository.NewPostgresSalesSource(conn, cfg.Sales.TableName), func() { conn.Close() }
	default:
		logrus.WithField("path", cfg.Sales.CSVPath).Info("Lendo vendas do arquivo CSV")
		return repository.NewCSVSalesSource(cfg.Sales.CSVPath), func() {}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
