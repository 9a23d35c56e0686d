package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// gcpCredentialsSecret é o nome do secret file do Render com a service account do BigQuery
const gcpCredentialsSecret = "gcp-credentials.json"

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Warehouse   Warehouse   `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Render      Render      `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
	CacheWarmup CacheWarmup `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
	Automigrate     bool          `mapstructure:"database_automigrate"`
}

type Warehouse struct {
	ProjectID       string `mapstructure:"warehouse_project_id"`
	Dataset         string `mapstructure:"warehouse_dataset"`
	CredentialsFile string `mapstructure:"warehouse_credentials_file"`
	CredentialsJSON string `mapstructure:"warehouse_credentials_json"`
}

type Cache struct {
	Enabled       bool          `mapstructure:"cache_enabled"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisUser     string        `mapstructure:"redis_user"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"cache_ttl"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Auth struct {
	Enabled  bool          `mapstructure:"auth_enabled"`
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Dashboard struct {
	SalesMaxDays  int `mapstructure:"dashboard_sales_max_days"`
	OrdersMaxDays int `mapstructure:"dashboard_orders_max_days"`
	PageSize      int `mapstructure:"dashboard_page_size"`
}

type CacheWarmup struct {
	CronSchedule      string `mapstructure:"cache_warmup_cron"`
	MaxConcurrentJobs int    `mapstructure:"cache_warmup_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"cache_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")
	viper.SetDefault("DATABASE_AUTOMIGRATE", false)

	viper.SetDefault("WAREHOUSE_PROJECT_ID", "")
	viper.SetDefault("WAREHOUSE_DATASET", "payvip_database")
	viper.SetDefault("WAREHOUSE_CREDENTIALS_FILE", "")
	viper.SetDefault("WAREHOUSE_CREDENTIALS_JSON", "")

	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_USER", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL", "10m")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "720h")

	viper.SetDefault("DASHBOARD_SALES_MAX_DAYS", 31)
	viper.SetDefault("DASHBOARD_ORDERS_MAX_DAYS", 180)
	viper.SetDefault("DASHBOARD_PAGE_SIZE", 5)

	viper.SetDefault("CACHE_WARMUP_CRON", "0 5 * * *")      // Todos os dias às 5h da manhã
	viper.SetDefault("CACHE_WARMUP_MAX_CONCURRENT_JOBS", 3) // 3 clientes em paralelo
	viper.SetDefault("CACHE_WARMUP_ENABLED", false)
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

	config.App.Location, err = time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid timezone %q: %w", config.App.Timezone, err)
	}

	if config.Warehouse.CredentialsFile == "" && config.Warehouse.CredentialsJSON == "" && config.Render.ServiceID != "" {
		secretsByName, err := NewRenderClient(config).ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}

		if credentials, ok := secretsByName[gcpCredentialsSecret]; ok {
			config.Warehouse.CredentialsJSON = credentials
			logrus.Info("Credenciais do BigQuery carregadas do Render")
		}
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

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
