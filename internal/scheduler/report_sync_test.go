package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	repomocks "github.com/jlunac/ads-revenue-api/infrastructure/repository/mocks"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	reportingmocks "github.com/jlunac/ads-revenue-api/internal/usecases/reporting/mocks"
	"github.com/jlunac/ads-revenue-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var syncNow = time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)

func newSyncService(t *testing.T) (*ReportSyncService, *reportingmocks.MockReporter, *repomocks.MockReportSnapshotRepository) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reporter := reportingmocks.NewMockReporter(ctrl)
	snapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)

	cfg := &config.Config{
		ReportSync: config.ReportSync{CronSchedule: "0 5 * * *", Enabled: true},
	}

	service := NewReportSyncService(reporter, snapshotRepo, cfg)
	service.now = func() time.Time { return syncNow }

	return service, reporter, snapshotRepo
}

func TestSyncReportSnapshotPersisteElRangoMaximo(t *testing.T) {
	service, reporter, snapshotRepo := newSyncService(t)

	report := &domain.AccountReport{
		Range: string(domain.RangeMax),
		Rows:  []domain.ReportRow{{AdID: "1"}, {AdID: "2"}},
	}

	reporter.EXPECT().
		AdReport(gomock.Any(), &domain.InsightFilters{Range: domain.RangeMax}).
		Return(report, nil)

	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshot *domain.ReportSnapshot) error {
		assert.Equal(t, string(domain.RangeMax), snapshot.Range)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), snapshot.Date)
		assert.Len(t, snapshot.Report.Rows, 2)
		return nil
	})

	service.syncReportSnapshot(context.Background())

	status := service.GetStatus()
	assert.Equal(t, syncNow, status["last_sync_completed_at"])
	assert.Empty(t, status["last_sync_error"])
	assert.False(t, status["sync_running"].(bool))
}

func TestSyncReportSnapshotReporteCaidoNoPersiste(t *testing.T) {
	service, reporter, _ := newSyncService(t)

	reporter.EXPECT().
		AdReport(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("sin token"))

	service.syncReportSnapshot(context.Background())

	status := service.GetStatus()
	assert.Contains(t, status["last_sync_error"], "sin token")
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSyncReportSnapshotGuardaErrorDePersistencia(t *testing.T) {
	service, reporter, snapshotRepo := newSyncService(t)

	reporter.EXPECT().AdReport(gomock.Any(), gomock.Any()).Return(&domain.AccountReport{}, nil)
	snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("conexión caída"))

	service.syncReportSnapshot(context.Background())

	status := service.GetStatus()
	assert.Contains(t, status["last_sync_error"], "conexión")
}

func TestStartDeshabilitadoNoAgenda(t *testing.T) {
	service, _, _ := newSyncService(t)
	service.cfg.ReportSync.Enabled = false

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
}
