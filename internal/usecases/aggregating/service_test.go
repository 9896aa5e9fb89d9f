package aggregating

import (
	"context"
	"testing"
	"time"

	exchangemocks "github.com/jlunac/ads-revenue-api/infrastructure/integrator/exchange/mocks"
	ventasmocks "github.com/jlunac/ads-revenue-api/infrastructure/integrator/ventasbot/mocks"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *ventasmocks.MockSource, *exchangemocks.MockExchanger) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	source := ventasmocks.NewMockSource(ctrl)
	exchanger := exchangemocks.NewMockExchanger(ctrl)

	service := NewService(source, exchanger)
	service.now = func() time.Time { return testNow }

	return service, source, exchanger
}

func TestRevenueByAdUnificaVariantesDeID(t *testing.T) {
	service, source, exchanger := newTestService(t)

	orders := []domain.OrderRecord{
		{AdID: "Ads-555", Amount: 100, Country: "Perú", CreatedAt: testNow.AddDate(0, 0, -2)},
		{AdID: "555", Amount: 100, Country: "PERU", CreatedAt: testNow.AddDate(0, 0, -3)},
		{AdID: "", Amount: 50, Country: "PERU", CreatedAt: testNow.AddDate(0, 0, -2)},
	}

	source.EXPECT().Orders(gomock.Any()).Return(orders, nil, nil)
	exchanger.EXPECT().CurrencyForCountry("PERU").Return("PEN").AnyTimes()
	exchanger.EXPECT().RateFor(gomock.Any(), "PEN").Return(3.75).AnyTimes()

	revenue, notes, err := service.RevenueByAd(context.Background(), domain.RangeLast7, "")
	require.NoError(t, err)
	assert.Empty(t, notes)
	require.Len(t, revenue, 1)

	entry := revenue["555"]
	require.NotNil(t, entry)
	assert.Equal(t, 2, entry.Sales)
	assert.Equal(t, float64(200), entry.TotalLocal)
	assert.InDelta(t, 53.33, entry.TotalUSD, 0.001)
	assert.Equal(t, "PEN", entry.Currency)
	assert.Equal(t, 3.75, entry.Rate)
	assert.Equal(t, "PERU", entry.Country)
}

func TestRevenueByAdRespetaVentanaYFiltroDePais(t *testing.T) {
	service, source, exchanger := newTestService(t)

	orders := []domain.OrderRecord{
		{AdID: "1", Amount: 100, Country: "PERU", CreatedAt: testNow.AddDate(0, 0, -2)},
		{AdID: "2", Amount: 100, Country: "PERU", CreatedAt: testNow.AddDate(0, 0, -40)},
		{AdID: "3", Amount: 90000, Country: "COLOMBIA", CreatedAt: testNow.AddDate(0, 0, -2)},
	}

	source.EXPECT().Orders(gomock.Any()).Return(orders, nil, nil)
	exchanger.EXPECT().CurrencyForCountry("PERU").Return("PEN").AnyTimes()
	exchanger.EXPECT().RateFor(gomock.Any(), "PEN").Return(3.75).AnyTimes()

	revenue, _, err := service.RevenueByAd(context.Background(), domain.RangeLast7, "peru")
	require.NoError(t, err)

	require.Len(t, revenue, 1)
	assert.NotNil(t, revenue["1"])
}

func TestRevenueByAdRangoMaximoNoFiltraFechas(t *testing.T) {
	service, source, exchanger := newTestService(t)

	orders := []domain.OrderRecord{
		{AdID: "1", Amount: 100, Country: "PERU", CreatedAt: testNow.AddDate(-2, 0, 0)},
		{AdID: "1", Amount: 100, Country: "PERU", CreatedAt: testNow},
	}

	source.EXPECT().Orders(gomock.Any()).Return(orders, nil, nil)
	exchanger.EXPECT().CurrencyForCountry("PERU").Return("PEN").AnyTimes()
	exchanger.EXPECT().RateFor(gomock.Any(), "PEN").Return(3.75).AnyTimes()

	revenue, _, err := service.RevenueByAd(context.Background(), domain.RangeMax, "")
	require.NoError(t, err)
	require.NotNil(t, revenue["1"])
	assert.Equal(t, 2, revenue["1"].Sales)
}

func TestMessagesByAdComparaPorDiaCalendario(t *testing.T) {
	service, source, _ := newTestService(t)

	yesterday := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	messages := []domain.MessageRecord{
		{AdID: "Ads-7", Country: "PERU", CreatedAt: yesterday},
		{AdID: "7", Country: "PERU", CreatedAt: yesterday},
		{AdID: "8", Country: "PERU", CreatedAt: testNow},
	}

	source.EXPECT().Messages(gomock.Any()).Return(messages, nil, nil)

	counts, notes, err := service.MessagesByAd(context.Background(), domain.RangeYday, "")
	require.NoError(t, err)
	assert.Empty(t, notes)

	assert.Equal(t, 2, counts["7"])
	assert.Zero(t, counts["8"])
}

func TestSalesByProductAgrupaPorPais(t *testing.T) {
	service, source, exchanger := newTestService(t)

	orders := []domain.OrderRecord{
		{AdID: "1", Amount: 100, Country: "PERU", Product: "Curso Trading", CreatedAt: testNow.AddDate(0, -1, 0)},
		{AdID: "2", Amount: 187.5, Country: "PERU", Product: "CURSO TRADING PRO", CreatedAt: testNow.AddDate(0, -2, 0)},
		{AdID: "3", Amount: 82000, Country: "COLOMBIA", Product: "curso trading", CreatedAt: testNow.AddDate(0, -1, 0)},
		{AdID: "4", Amount: 500, Country: "MEXICO", Product: "MENTORIA", CreatedAt: testNow.AddDate(0, -1, 0)},
	}

	source.EXPECT().Orders(gomock.Any()).Return(orders, nil, nil)
	exchanger.EXPECT().CurrencyForCountry("PERU").Return("PEN").AnyTimes()
	exchanger.EXPECT().CurrencyForCountry("COLOMBIA").Return("COP").AnyTimes()
	exchanger.EXPECT().HistoricalRate(gomock.Any(), gomock.Any(), "PEN").Return(3.75).AnyTimes()
	exchanger.EXPECT().HistoricalRate(gomock.Any(), gomock.Any(), "COP").Return(4100.0).AnyTimes()

	summary, notes, err := service.SalesByProduct(context.Background(), "curso trading", "")
	require.NoError(t, err)
	assert.Empty(t, notes)

	assert.Equal(t, "CURSO TRADING", summary.Product)
	assert.Equal(t, 3, summary.Sales)
	assert.Equal(t, 4, summary.SourceRows)
	require.Len(t, summary.ByCountry, 2)

	// Orden alfabético por país
	colombia := summary.ByCountry[0]
	assert.Equal(t, "COLOMBIA", colombia.Country)
	assert.Equal(t, "COP", colombia.Currency)
	assert.Equal(t, 1, colombia.Sales)
	assert.InDelta(t, 20.0, colombia.TotalUSD, 0.001)

	peru := summary.ByCountry[1]
	assert.Equal(t, "PERU", peru.Country)
	assert.Equal(t, 2, peru.Sales)
	assert.Equal(t, 287.5, peru.TotalLocal)
	assert.InDelta(t, 76.67, peru.TotalUSD, 0.001)

	assert.InDelta(t, 96.67, summary.TotalUSD, 0.001)
}
