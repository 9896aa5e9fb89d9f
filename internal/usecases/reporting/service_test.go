package reporting

import (
	"context"
	"errors"
	"math"
	"testing"

	metamocks "github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/mocks"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	aggregatingmocks "github.com/jlunac/ads-revenue-api/internal/usecases/aggregating/mocks"
	"github.com/jlunac/ads-revenue-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReportConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			AccessToken: "token",
			AccountIDs:  []string{"act_1"},
		},
		Sales: config.Sales{
			Sources: []config.SalesSource{{Name: "bot-peru"}},
		},
		Report: config.Report{
			TaxRate: 0.18,
			ProductRules: []domain.ProductRule{
				{Name: "CURSO PERU", Country: "PERU", Keywords: []string{"CURSO"}},
				{Name: "CURSO", Keywords: []string{"CURSO"}},
			},
		},
	}
}

func newReportService(t *testing.T) (*Service, *metamocks.MockIntegrator, *aggregatingmocks.MockAggregator) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	metaService := metamocks.NewMockIntegrator(ctrl)
	aggregator := aggregatingmocks.NewMockAggregator(ctrl)

	service := NewService(newReportConfig(), metaService, aggregator, nil)

	return service, metaService, aggregator
}

func sampleInsights() []domain.AdInsight {
	return []domain.AdInsight{
		{
			AccountID:    "act_1",
			CampaignID:   "c1",
			CampaignName: "CURSO TRADING PERU MARZO",
			AdsetID:      "s1",
			AdID:         "101",
			AdName:       "video-1",
			Spend:        100,
			Impressions:  10000,
			Reach:        8000,
			Clicks:       250,
			Delivery:     domain.DeliveryInCirculation,
			Country:      "PERU",
		},
		{
			AccountID:    "act_1",
			CampaignID:   "c2",
			CampaignName: "MENTORIA COLOMBIA",
			AdsetID:      "s2",
			AdID:         "202",
			AdName:       "imagen-1",
			Spend:        50,
			Impressions:  0,
			Reach:        0,
			Clicks:       0,
			Delivery:     domain.DeliveryPaused,
			Country:      "COLOMBIA",
		},
	}
}

func TestAdReportConciliaGastoConFacturacion(t *testing.T) {
	service, metaService, aggregator := newReportService(t)

	insights := sampleInsights()
	filters := &domain.InsightFilters{Range: domain.RangeLast7}

	metaService.EXPECT().FetchAdRows(gomock.Any(), "act_1", domain.RangeLast7).Return(insights, nil)
	metaService.EXPECT().EnrichStatuses(gomock.Any(), gomock.Len(2)).Return(insights, nil)

	aggregator.EXPECT().RevenueByAd(gomock.Any(), domain.RangeLast7, "").Return(map[string]*domain.AdRevenue{
		"101": {TotalUSD: 400, TotalLocal: 1500, Currency: "PEN", Rate: 3.75, Sales: 4, Country: "PERU"},
	}, nil, nil)
	aggregator.EXPECT().MessagesByAd(gomock.Any(), domain.RangeLast7, "").Return(map[string]int{"101": 50}, nil, nil)

	report, err := service.AdReport(context.Background(), filters)
	require.NoError(t, err)
	assert.Empty(t, report.Errores)
	require.Len(t, report.Rows, 2)

	row := report.Rows[0]
	assert.Equal(t, float64(100), row.Spend)
	assert.Equal(t, float64(18), row.Tax)
	assert.Equal(t, float64(118), row.SpendWithTax)
	assert.Equal(t, float64(10), row.CPM)
	assert.Equal(t, float64(400), row.RevenueUSD)
	assert.InDelta(t, 3.39, row.ROAS, 0.001)
	assert.Equal(t, float64(282), row.Profit)
	assert.InDelta(t, 2.39, row.ROI, 0.001)
	assert.InDelta(t, 0.47, row.CostPerClick, 0.001)
	assert.Equal(t, 50, row.Messages)
	assert.Equal(t, 0.2, row.MessageRate)
	assert.InDelta(t, 2.36, row.CostPerMessage, 0.001)
	assert.Equal(t, 4, row.Sales)
	assert.Equal(t, 0.08, row.CVR)
	assert.InDelta(t, 29.5, row.CostPerSale, 0.001)
	assert.Equal(t, "CURSO PERU", row.Product)
}

func TestAdReportSinFacturacionProduceRazonesFinitas(t *testing.T) {
	service, metaService, aggregator := newReportService(t)

	insights := sampleInsights()
	filters := &domain.InsightFilters{Range: domain.RangeLast7}

	metaService.EXPECT().FetchAdRows(gomock.Any(), "act_1", domain.RangeLast7).Return(insights, nil)
	metaService.EXPECT().EnrichStatuses(gomock.Any(), gomock.Any()).Return(insights, nil)
	aggregator.EXPECT().RevenueByAd(gomock.Any(), domain.RangeLast7, "").Return(nil, nil, nil)
	aggregator.EXPECT().MessagesByAd(gomock.Any(), domain.RangeLast7, "").Return(nil, nil, nil)

	report, err := service.AdReport(context.Background(), filters)
	require.NoError(t, err)

	for _, row := range append(report.Rows, report.Totals) {
		for name, v := range map[string]float64{
			"roas":              row.ROAS,
			"roi":               row.ROI,
			"cpm":               row.CPM,
			"costo_por_clic":    row.CostPerClick,
			"costo_por_mensaje": row.CostPerMessage,
			"cvr":               row.CVR,
			"costo_por_compra":  row.CostPerSale,
		} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "métrica %s no finita", name)
		}
	}

	// Sin facturación la utilidad es el gasto con impuesto en negativo
	row := report.Rows[0]
	assert.Zero(t, row.ROAS)
	assert.Equal(t, float64(-118), row.Profit)
	assert.Equal(t, float64(-1), row.ROI)
}

func TestAdReportCuentaCaidaNoCortaElReporte(t *testing.T) {
	service, metaService, aggregator := newReportService(t)
	service.cfg.Meta.AccountIDs = []string{"act_1", "act_2"}

	insights := sampleInsights()[:1]
	filters := &domain.InsightFilters{Range: domain.RangeToday}

	metaService.EXPECT().FetchAdRows(gomock.Any(), "act_1", domain.RangeToday).Return(nil, errors.New("(#17) rate limit"))
	metaService.EXPECT().FetchAdRows(gomock.Any(), "act_2", domain.RangeToday).Return(insights, nil)
	metaService.EXPECT().EnrichStatuses(gomock.Any(), gomock.Len(1)).Return(insights, nil)
	aggregator.EXPECT().RevenueByAd(gomock.Any(), domain.RangeToday, "").Return(nil, []string{"pedidos bot-peru: timeout"}, nil)
	aggregator.EXPECT().MessagesByAd(gomock.Any(), domain.RangeToday, "").Return(nil, nil, nil)

	report, err := service.AdReport(context.Background(), filters)
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	require.Len(t, report.Errores, 2)
	assert.Contains(t, report.Errores[0], "act_1")
	assert.Contains(t, report.Errores[1], "bot-peru")
}

func TestAdReportFiltraPorPaisEnNombreDeCampana(t *testing.T) {
	service, metaService, aggregator := newReportService(t)

	insights := sampleInsights()
	filters := &domain.InsightFilters{Range: domain.RangeLast7, Country: "perú"}

	metaService.EXPECT().FetchAdRows(gomock.Any(), "act_1", domain.RangeLast7).Return(insights, nil)
	metaService.EXPECT().EnrichStatuses(gomock.Any(), gomock.Any()).Return(insights, nil)
	aggregator.EXPECT().RevenueByAd(gomock.Any(), domain.RangeLast7, "perú").Return(nil, nil, nil)
	aggregator.EXPECT().MessagesByAd(gomock.Any(), domain.RangeLast7, "perú").Return(nil, nil, nil)

	report, err := service.AdReport(context.Background(), filters)
	require.NoError(t, err)

	require.Len(t, report.Rows, 1)
	assert.Equal(t, "101", report.Rows[0].AdID)
}

func TestAdReportConfiguracionIncompleta(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *config.Config)
		expected error
	}{
		{
			name:     "sin token",
			mutate:   func(cfg *config.Config) { cfg.Meta.AccessToken = "" },
			expected: ErrNoAccessToken,
		},
		{
			name:     "sin cuentas",
			mutate:   func(cfg *config.Config) { cfg.Meta.AccountIDs = nil },
			expected: ErrNoAccounts,
		},
		{
			name:     "sin fuentes de ventas",
			mutate:   func(cfg *config.Config) { cfg.Sales.Sources = nil },
			expected: ErrNoSources,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newReportService(t)
			tt.mutate(service.cfg)

			_, err := service.AdReport(context.Background(), &domain.InsightFilters{Range: domain.RangeToday})
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestTotalsRowRecalculaRazonesDesdeSumas(t *testing.T) {
	rows := []domain.ReportRow{
		{Spend: 100, Tax: 18, SpendWithTax: 118, RevenueUSD: 200, Impressions: 10000, Clicks: 100, Messages: 20, Sales: 2},
		{Spend: 50, Tax: 9, SpendWithTax: 59, RevenueUSD: 0, Impressions: 5000, Clicks: 50, Messages: 5, Sales: 0},
	}

	totals := TotalsRow(rows)

	assert.Equal(t, float64(150), totals.Spend)
	assert.Equal(t, float64(177), totals.SpendWithTax)
	assert.Equal(t, float64(200), totals.RevenueUSD)
	assert.Equal(t, 15000, totals.Impressions)
	assert.Equal(t, 150, totals.Clicks)

	// Razones desde las sumas, no promedio de razones
	assert.InDelta(t, 200.0/177.0, totals.ROAS, 0.005)
	assert.Equal(t, float64(10), totals.CPM)
	assert.InDelta(t, 177.0/150.0, totals.CostPerClick, 0.005)
}

func TestProductReportAgrupaEnOrdenDeReglas(t *testing.T) {
	service, metaService, aggregator := newReportService(t)

	insights := []domain.AdInsight{
		{AccountID: "act_1", CampaignName: "CURSO TRADING COLOMBIA", AdID: "1", Spend: 10},
		{AccountID: "act_1", CampaignName: "CURSO TRADING PERU", AdID: "2", Spend: 20},
		{AccountID: "act_1", CampaignName: "WEBINAR GRATIS", AdID: "3", Spend: 5},
	}
	filters := &domain.InsightFilters{Range: domain.RangeLast7}

	metaService.EXPECT().FetchAdRows(gomock.Any(), "act_1", domain.RangeLast7).Return(insights, nil)
	metaService.EXPECT().EnrichStatuses(gomock.Any(), gomock.Any()).Return(insights, nil)
	aggregator.EXPECT().RevenueByAd(gomock.Any(), domain.RangeLast7, "").Return(nil, nil, nil)
	aggregator.EXPECT().MessagesByAd(gomock.Any(), domain.RangeLast7, "").Return(nil, nil, nil)

	products, err := service.ProductReport(context.Background(), filters)
	require.NoError(t, err)

	// La campaña sin regla queda fuera; la regla con país va primero
	require.Len(t, products, 2)
	assert.Equal(t, "CURSO PERU", products[0].Product)
	require.Len(t, products[0].Rows, 1)
	assert.Equal(t, "2", products[0].Rows[0].AdID)

	assert.Equal(t, "CURSO", products[1].Product)
	require.Len(t, products[1].Rows, 1)
	assert.Equal(t, "1", products[1].Rows[0].AdID)
}

func TestMultiRangeReportRecorreTodosLosRangos(t *testing.T) {
	service, metaService, aggregator := newReportService(t)

	for _, rng := range domain.AllRanges {
		metaService.EXPECT().FetchAdRows(gomock.Any(), "act_1", rng).Return(nil, nil)
		aggregator.EXPECT().RevenueByAd(gomock.Any(), rng, "").Return(nil, nil, nil)
		aggregator.EXPECT().MessagesByAd(gomock.Any(), rng, "").Return(nil, nil, nil)
	}

	multi, err := service.MultiRangeReport(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, multi.Ranges, len(domain.AllRanges))
	for i, rng := range domain.AllRanges {
		assert.Equal(t, string(rng), multi.Ranges[i].Range)
	}
}

func TestAdSpendNormalizaElID(t *testing.T) {
	service, metaService, _ := newReportService(t)

	metaService.EXPECT().SpendByAdID(gomock.Any(), "555", domain.RangeLast7).Return(42.5071, nil)

	spend, err := service.AdSpend(context.Background(), "Ads-555", domain.RangeLast7)
	require.NoError(t, err)
	assert.Equal(t, 42.51, spend)
}
