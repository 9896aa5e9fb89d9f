package exchange

import (
	"context"
	"sync"
	"time"

	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/exchange/exchangeclient"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/pkg/metrics"
	"github.com/jlunac/ads-revenue-api/pkg/normalize"
	"github.com/sirupsen/logrus"
)

// fallbackRates es la tabla de respaldo cuando las APIs de cambio no
// responden. El reporte nunca se cae por falta de tasa.
var fallbackRates = map[string]float64{
	"PEN": 3.75,
	"COP": 4100,
	"MXN": 17.5,
	"USD": 1,
}

// countryCurrency mapea el país normalizado a su moneda local.
var countryCurrency = map[string]string{
	"PERU":           "PEN",
	"COLOMBIA":       "COP",
	"MEXICO":         "MXN",
	"CHILE":          "CLP",
	"ARGENTINA":      "ARS",
	"ECUADOR":        "USD",
	"PANAMA":         "USD",
	"ESTADOS UNIDOS": "USD",
}

// Exchanger entrega tasas de cambio sin fallar nunca: si las APIs no
// responden degrada a la tabla de respaldo con un log de advertencia.
type Exchanger interface {
	Rates(ctx context.Context) map[string]float64
	RateFor(ctx context.Context, currency string) float64
	HistoricalRate(ctx context.Context, date time.Time, currency string) float64
	CurrencyForCountry(country string) string
}

type histEntry struct {
	rate      float64
	fetchedAt time.Time
}

type Service struct {
	cfg     *config.Config
	client  exchangeclient.Client
	metrics *metrics.Metrics

	cacheTTL time.Duration
	histTTL  time.Duration

	ratesMu   sync.RWMutex
	rates     map[string]float64
	fetchedAt time.Time

	histMu sync.RWMutex
	hist   map[string]histEntry

	now func() time.Time
}

func New(cfg *config.Config, client exchangeclient.Client, m *metrics.Metrics) Exchanger {
	return &Service{
		cfg:      cfg,
		client:   client,
		metrics:  m,
		cacheTTL: time.Duration(cfg.Exchange.CacheTTLMinutes) * time.Minute,
		histTTL:  time.Duration(cfg.Exchange.HistoricalTTLMinutes) * time.Minute,
		hist:     make(map[string]histEntry),
		now:      time.Now,
	}
}

// Rates devuelve la tabla vigente de monedas locales por USD.
func (s *Service) Rates(ctx context.Context) map[string]float64 {
	s.ratesMu.RLock()
	if s.rates != nil && s.now().Sub(s.fetchedAt) < s.cacheTTL {
		defer s.ratesMu.RUnlock()
		return s.rates
	}
	s.ratesMu.RUnlock()

	start := s.now()
	fetched, err := s.client.FetchLatest(ctx)
	if err != nil {
		s.recordCall("exchange_latest", "error", start)
		logrus.WithError(err).Warn("Tipos de cambio no disponibles, usando tabla de respaldo")

		s.ratesMu.RLock()
		defer s.ratesMu.RUnlock()
		if s.rates != nil {
			// Tabla vencida pero real: preferible al respaldo fijo.
			return s.rates
		}
		return fallbackRates
	}
	s.recordCall("exchange_latest", "ok", start)

	// El respaldo completa las monedas que la API no incluya.
	for currency, rate := range fallbackRates {
		if _, ok := fetched[currency]; !ok {
			fetched[currency] = rate
		}
	}

	s.ratesMu.Lock()
	s.rates = fetched
	s.fetchedAt = s.now()
	s.ratesMu.Unlock()

	logrus.WithField("monedas", len(fetched)).Debug("Tabla de tipos de cambio actualizada")

	return fetched
}

// RateFor devuelve la tasa vigente de una moneda; 1 si no se conoce,
// para que una moneda nueva nunca anule la facturación.
func (s *Service) RateFor(ctx context.Context, currency string) float64 {
	rates := s.Rates(ctx)
	if rate, ok := rates[currency]; ok && rate > 0 {
		return rate
	}

	if rate, ok := fallbackRates[currency]; ok {
		return rate
	}

	logrus.WithField("moneda", currency).Warn("Moneda sin tasa conocida, usando 1")
	return 1
}

// HistoricalRate devuelve la tasa de una moneda en una fecha pasada.
// USD siempre es 1. Si el servicio histórico falla, degrada a la tasa
// vigente.
func (s *Service) HistoricalRate(ctx context.Context, date time.Time, currency string) float64 {
	if currency == "USD" {
		return 1
	}

	key := date.Format(time.DateOnly) + ":" + currency

	s.histMu.RLock()
	if entry, ok := s.hist[key]; ok && s.now().Sub(entry.fetchedAt) < s.histTTL {
		s.histMu.RUnlock()
		return entry.rate
	}
	s.histMu.RUnlock()

	start := s.now()
	rate, err := s.client.FetchHistorical(ctx, date, currency)
	if err != nil {
		s.recordCall("exchange_historical", "error", start)
		logrus.WithError(err).WithFields(logrus.Fields{
			"fecha":  date.Format(time.DateOnly),
			"moneda": currency,
		}).Warn("Tasa histórica no disponible, usando tasa vigente")
		return s.RateFor(ctx, currency)
	}
	s.recordCall("exchange_historical", "ok", start)

	s.histMu.Lock()
	s.hist[key] = histEntry{rate: rate, fetchedAt: s.now()}
	s.histMu.Unlock()

	return rate
}

// CurrencyForCountry devuelve la moneda local de un país; USD si no
// está en el mapa.
func (s *Service) CurrencyForCountry(country string) string {
	if currency, ok := countryCurrency[normalize.Text(country)]; ok {
		return currency
	}
	return "USD"
}

func (s *Service) recordCall(api, status string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordExternalAPICall(api, status, s.now().Sub(start))
	}
}
