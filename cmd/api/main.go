package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/redisdb"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/warehouse"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/warehouse/bqclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dependencies := map[string]handler.Pinger{"database": pgConn}

	profileRepo := repository.NewProfileRepository(pgConn)

	bqClient, err := bqclient.NewClient(ctx, cfg.Warehouse)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do BigQuery")
	}
	defer bqClient.Close()

	var fetcher warehouse.Fetcher = warehouse.New(cfg, bqClient)

	cronServices := handler.CronJobServices{}

	if cfg.Cache.Enabled {
		redisConn := redisconn(ctx, cfg.Cache)
		defer redisConn.Close()
		dependencies["cache"] = redisConn

		cachedFetcher := warehouse.NewCachedFetcher(fetcher, redisConn, cfg.Cache.TTL)
		fetcher = cachedFetcher

		// O aquecimento só faz sentido com o cache ativo
		cacheWarmupService := scheduler.NewCacheWarmupService(profileRepo, cachedFetcher, cfg)
		if err := cacheWarmupService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de cache")
		} else {
			logrus.Info("Agendador de aquecimento de cache iniciado com sucesso")
		}
		cronServices.CacheWarmupService = cacheWarmupService
	}

	reporter := reporting.NewService(profileRepo, fetcher, cfg)
	authenticator := authenticating.NewService(cfg.Auth)

	server, err := api.New(cfg, reporter, authenticator, cronServices, dependencies)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	if dbConfig.Automigrate {
		if err := postgres.Migrate(ctx, conn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	return conn
}

// redisconn cria a conexão com o redis usado como cache do warehouse
func redisconn(ctx context.Context, cacheConfig config.Cache) *redisdb.Connection {
	conn, err := redisdb.NewConnection(ctx, cacheConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.WithField("addr", cacheConfig.RedisAddr).Info("Conexão com Redis estabelecida com sucesso")
	return conn
}
