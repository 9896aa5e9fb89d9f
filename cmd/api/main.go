package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jlunac/ads-revenue-api/infrastructure/database/postgres"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/exchange"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/exchange/exchangeclient"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/metaclient"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/ventasbot"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/ventasbot/ventasclient"
	"github.com/jlunac/ads-revenue-api/infrastructure/repository"
	"github.com/jlunac/ads-revenue-api/internal/api"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/scheduler"
	"github.com/jlunac/ads-revenue-api/internal/usecases/aggregating"
	"github.com/jlunac/ads-revenue-api/internal/usecases/authenticating"
	"github.com/jlunac/ads-revenue-api/internal/usecases/campaigning"
	"github.com/jlunac/ads-revenue-api/internal/usecases/reporting"
	"github.com/jlunac/ads-revenue-api/pkg/metrics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, se usa 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	m := metrics.New()

	metaClient := metaclient.NewClient(cfg, m)
	metaIntegrator := meta.New(cfg, metaClient)

	ventasClient := ventasclient.NewClient()
	ventasIntegrator := ventasbot.New(cfg, ventasClient)

	exchangeClient := exchangeclient.NewClient(cfg)
	exchangeService := exchange.New(cfg, exchangeClient, m)

	salesService := aggregating.NewService(ventasIntegrator, exchangeService)
	reportService := reporting.NewService(cfg, metaIntegrator, salesService, m)
	campaignService := campaigning.NewService(metaIntegrator)

	reportSyncService := scheduler.NewReportSyncService(reportService, snapshotRepo, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el sincronizador del reporte histórico")
	} else {
		logrus.Info("Sincronizador del reporte histórico iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		reportService,
		salesService,
		exchangeService,
		campaignService,
		authenticator,
		reportSyncService,
		m,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger define el formato de los logs de toda la aplicación.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn abre la conexión con la base de datos y la verifica.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al verificar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
