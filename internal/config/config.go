package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Sales        Sales        `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	TableRefresh TableRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Sales define de onde a tabela de vendas é lida
type Sales struct {
	Source    string `mapstructure:"sales_source"`
	CSVPath   string `mapstructure:"sales_csv_path"`
	TableName string `mapstructure:"sales_table_name"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Dashboard struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	PreviewRows    int    `mapstructure:"preview_rows"`
}

type TableRefresh struct {
	CronSchedule string `mapstructure:"table_refresh_cron"`
	Enabled      bool   `mapstructure:"table_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("SALES_SOURCE", SourceCSV)
	viper.SetDefault("SALES_CSV_PATH", "Cellphone_Sales_Data.csv") // mesma pasta do binário
	viper.SetDefault("SALES_TABLE_NAME", "cellphone_sales")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CURRENCY_SYMBOL", "R$")
	viper.SetDefault("PREVIEW_ROWS", 5) // equivalente ao head() da tabela carregada

	viper.SetDefault("TABLE_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("TABLE_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	switch c.Sales.Source {
	case SourceCSV:
		if c.Sales.CSVPath == "" {
			return fmt.Errorf("config: SALES_CSV_PATH é obrigatório quando SALES_SOURCE=%s", SourceCSV)
		}
	case SourcePostgres:
		if c.Sales.TableName == "" {
			return fmt.Errorf("config: SALES_TABLE_NAME é obrigatório quando SALES_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("config: SALES_SOURCE inválido: %q (use %s ou %s)", c.Sales.Source, SourceCSV, SourcePostgres)
	}

	if c.Dashboard.PreviewRows < 0 {
		return fmt.Errorf("config: PREVIEW_ROWS não pode ser negativo: %d", c.Dashboard.PreviewRows)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
