package exchange

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/exchange/exchangeclient/mocks"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Exchange.CacheTTLMinutes = 360
	cfg.Exchange.HistoricalTTLMinutes = 1440

	svc := New(cfg, client, nil).(*Service)
	return svc, client
}

func TestRatesUsaRespaldoCuandoLaAPIFalla(t *testing.T) {
	svc, client := newTestService(t)

	client.EXPECT().
		FetchLatest(gomock.Any()).
		Return(nil, errors.New("timeout"))

	rates := svc.Rates(context.Background())

	assert.Equal(t, 1.0, rates["USD"])
	assert.Equal(t, 3.75, rates["PEN"])
	assert.Equal(t, 4100.0, rates["COP"])
	assert.Equal(t, 17.5, rates["MXN"])
}

func TestRatesCompletaMonedasFaltantesConRespaldo(t *testing.T) {
	svc, client := newTestService(t)

	client.EXPECT().
		FetchLatest(gomock.Any()).
		Return(map[string]float64{"PEN": 3.70, "CLP": 940.0}, nil)

	rates := svc.Rates(context.Background())

	// La tasa real reemplaza al respaldo; las faltantes se completan.
	assert.Equal(t, 3.70, rates["PEN"])
	assert.Equal(t, 940.0, rates["CLP"])
	assert.Equal(t, 1.0, rates["USD"])
	assert.Equal(t, 4100.0, rates["COP"])
}

func TestRatesCacheaDentroDelTTL(t *testing.T) {
	svc, client := newTestService(t)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// Una única llamada a la API para dos lecturas consecutivas.
	client.EXPECT().
		FetchLatest(gomock.Any()).
		Return(map[string]float64{"PEN": 3.80}, nil).
		Times(1)

	first := svc.Rates(context.Background())

	now = now.Add(5 * time.Hour)
	second := svc.Rates(context.Background())

	assert.Equal(t, first["PEN"], second["PEN"])
}

func TestRatesRefrescaDespuesDelTTL(t *testing.T) {
	svc, client := newTestService(t)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	gomock.InOrder(
		client.EXPECT().
			FetchLatest(gomock.Any()).
			Return(map[string]float64{"PEN": 3.80}, nil),
		client.EXPECT().
			FetchLatest(gomock.Any()).
			Return(map[string]float64{"PEN": 3.65}, nil),
	)

	assert.Equal(t, 3.80, svc.Rates(context.Background())["PEN"])

	now = now.Add(7 * time.Hour)
	assert.Equal(t, 3.65, svc.Rates(context.Background())["PEN"])
}

func TestHistoricalRateUSDSiempreEsUno(t *testing.T) {
	svc, _ := newTestService(t)

	rate := svc.HistoricalRate(context.Background(), time.Now(), "USD")

	assert.Equal(t, 1.0, rate)
}

func TestHistoricalRateCacheaPorFechaYMoneda(t *testing.T) {
	svc, client := newTestService(t)

	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	client.EXPECT().
		FetchHistorical(gomock.Any(), date, "PEN").
		Return(3.72, nil).
		Times(1)

	assert.Equal(t, 3.72, svc.HistoricalRate(context.Background(), date, "PEN"))
	assert.Equal(t, 3.72, svc.HistoricalRate(context.Background(), date, "PEN"))
}

func TestHistoricalRateDegradaATasaVigente(t *testing.T) {
	svc, client := newTestService(t)

	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	client.EXPECT().
		FetchHistorical(gomock.Any(), date, "MXN").
		Return(0.0, errors.New("servicio caído"))

	client.EXPECT().
		FetchLatest(gomock.Any()).
		Return(nil, errors.New("también caído"))

	// Doble falla: termina en la tabla de respaldo.
	assert.Equal(t, 17.5, svc.HistoricalRate(context.Background(), date, "MXN"))
}

func TestCurrencyForCountry(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		country  string
		expected string
	}{
		{"Perú con tilde", "Perú", "PEN"},
		{"colombia en minúsculas", "colombia", "COP"},
		{"México", "México", "MXN"},
		{"Chile", "CHILE", "CLP"},
		{"Argentina", "Argentina", "ARS"},
		{"Ecuador usa USD", "Ecuador", "USD"},
		{"Panamá usa USD", "Panamá", "USD"},
		{"país desconocido usa USD", "Brasil", "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.CurrencyForCountry(tt.country))
		})
	}
}
