package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config reúne toda la configuración de la aplicación. Se construye
// una sola vez en main y se pasa explícitamente a cada componente.
type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Sales      Sales      `mapstructure:",squash"`
	Exchange   Exchange   `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`

	// AccountIDs son las cuentas publicitarias, separadas por coma.
	AccountIDs []string `mapstructure:"meta_account_ids"`

	// BatchSize es el tamaño de lote del endpoint batch de Graph.
	BatchSize int `mapstructure:"meta_batch_size"`

	// RequestsPerSecond limita las llamadas a la API de Graph.
	RequestsPerSecond float64 `mapstructure:"meta_requests_per_second"`
}

// SalesSource es una fuente de pedidos consolidados y mensajes.
type SalesSource struct {
	Name        string `json:"name"`
	OrdersURL   string `json:"orders_url"`
	MessagesURL string `json:"messages_url"`
	AccessToken string `json:"access_token"`
}

type Sales struct {
	// SourcesJSON es la lista de fuentes en JSON; el orden importa
	// porque los pedidos se consolidan fuente por fuente.
	SourcesJSON string        `mapstructure:"sales_sources"`
	Sources     []SalesSource `mapstructure:"-"`
}

type Exchange struct {
	LatestURL     string `mapstructure:"exchange_latest_url"`
	HistoricalURL string `mapstructure:"exchange_historical_url"`

	// TTLs de caché en minutos.
	CacheTTLMinutes      int `mapstructure:"exchange_cache_ttl_minutes"`
	HistoricalTTLMinutes int `mapstructure:"exchange_historical_ttl_minutes"`
}

type Report struct {
	// TaxRate es el IGV que se suma al gasto publicitario.
	TaxRate float64 `mapstructure:"report_tax_rate"`

	// ProductRulesJSON es el arreglo ordenado de reglas de producto.
	ProductRulesJSON string               `mapstructure:"product_rules"`
	ProductRules     []domain.ProductRule `mapstructure:"-"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_revenue")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_ACCOUNT_IDS", "")
	viper.SetDefault("META_BATCH_SIZE", 50)
	viper.SetDefault("META_REQUESTS_PER_SECOND", 5.0)

	viper.SetDefault("SALES_SOURCES", "[]")

	viper.SetDefault("EXCHANGE_LATEST_URL", "https://api.exchangerate-api.com/v4/latest/USD")
	viper.SetDefault("EXCHANGE_HISTORICAL_URL", "https://api.frankfurter.app")
	viper.SetDefault("EXCHANGE_CACHE_TTL_MINUTES", 360)      // 6 horas
	viper.SetDefault("EXCHANGE_HISTORICAL_TTL_MINUTES", 1440) // 24 horas

	viper.SetDefault("REPORT_TAX_RATE", 0.18)
	viper.SetDefault("PRODUCT_RULES", "[]")

	viper.SetDefault("REPORT_SYNC_CRON", "0 5 * * *") // todos los días a las 5h
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Meta.AccountIDs = cleanList(config.Meta.AccountIDs)

	if err := json.Unmarshal([]byte(config.Sales.SourcesJSON), &config.Sales.Sources); err != nil {
		return nil, fmt.Errorf("SALES_SOURCES inválido: %w", err)
	}

	if err := json.Unmarshal([]byte(config.Report.ProductRulesJSON), &config.Report.ProductRules); err != nil {
		return nil, fmt.Errorf("PRODUCT_RULES inválido: %w", err)
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

// cleanList descarta entradas vacías producto de comas colgantes.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// loadEnvFile intenta cargar el archivo .env desde las rutas usuales.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Archivo .env cargado desde:", location)
			return
		}
	}

	logrus.Warn("No se encontró archivo .env en ninguna ubicación conocida")
}
