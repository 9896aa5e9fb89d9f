package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jlunac/ads-revenue-api/infrastructure/repository"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/internal/usecases/reporting"
	"github.com/jlunac/ads-revenue-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ReportSyncService persiste una foto diaria del reporte histórico.
// El snapshot reemplaza el reporte en vivo cuando la API de Meta no
// responde y sirve de serie histórica para comparar días.
type ReportSyncService struct {
	scheduler    *gocron.Scheduler
	cfg          *config.Config
	reporter     reporting.Reporter
	snapshotRepo repository.ReportSnapshotRepository

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string

	now func() time.Time
}

func NewReportSyncService(
	reporter reporting.Reporter,
	snapshotRepo repository.ReportSnapshotRepository,
	cfg *config.Config,
) *ReportSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.ReportSync.CronSchedule,
		"sync_enabled":  cfg.ReportSync.Enabled,
	}).Info("Configuración del sincronizador de reportes cargada")

	return &ReportSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		cfg:          cfg,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// Start agenda la sincronización diaria. El agendador se detiene solo
// cuando el contexto se cancela.
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.cfg.ReportSync.Enabled {
		logrus.Info("Sincronización de reportes deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.cfg.ReportSync.CronSchedule).Info("Iniciando el agendador de snapshots de reporte")

	_, err := s.scheduler.Cron(s.cfg.ReportSync.CronSchedule).Do(func() {
		s.syncReportSnapshot(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización de reportes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Deteniendo el agendador de snapshots de reporte")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReportSnapshot construye el reporte histórico y lo persiste con
// upsert por (rango, día): reejecutar el mismo día solo lo refresca.
func (s *ReportSyncService) syncReportSnapshot(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de reportes ya en curso, se ignora")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = s.now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Construyendo snapshot del reporte histórico")

	report, err := s.reporter.AdReport(ctx, &domain.InsightFilters{Range: domain.RangeMax})
	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("No se pudo construir el reporte para el snapshot")
		return
	}

	snapshot := &domain.ReportSnapshot{
		Range:  string(domain.RangeMax),
		Date:   utils.TruncateToDay(s.now()),
		Report: report,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("No se pudo persistir el snapshot del reporte")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"filas":   len(report.Rows),
		"errores": len(report.Errores),
		"fecha":   snapshot.Date.Format(time.DateOnly),
	}).Info("Snapshot del reporte persistido")
}

// TriggerManualSync dispara una sincronización fuera del horario.
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de reportes ya en curso, se ignora la solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronización manual de reportes")
	go s.syncReportSnapshot(context.Background())
}

// GetStatus devuelve el estado actual del agendador.
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.cfg.ReportSync.Enabled,
		"sync_cron":              s.cfg.ReportSync.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
