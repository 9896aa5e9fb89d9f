package aggregating

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/exchange"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/ventasbot"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/pkg/normalize"
	"github.com/jlunac/ads-revenue-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Aggregator consolida los pedidos y mensajes del bot de ventas por
// anuncio, convirtiendo montos locales a USD con el tipo de cambio.
type Aggregator interface {
	RevenueByAd(ctx context.Context, rng domain.RangeKey, countryFilter string) (map[string]*domain.AdRevenue, []string, error)
	MessagesByAd(ctx context.Context, rng domain.RangeKey, countryFilter string) (map[string]int, []string, error)
	SalesByProduct(ctx context.Context, product, countryFilter string) (*domain.SalesSummary, []string, error)
}

type Service struct {
	source    ventasbot.Source
	exchanger exchange.Exchanger
	now       func() time.Time
}

func NewService(source ventasbot.Source, exchanger exchange.Exchanger) *Service {
	return &Service{
		source:    source,
		exchanger: exchanger,
		now:       time.Now,
	}
}

// RevenueByAd agrupa los pedidos de la ventana por ID de anuncio
// normalizado. Pedidos sin anuncio atribuible se descartan. El filtro
// de país se evalúa como contención: el país del pedido contiene el
// texto filtrado.
func (s *Service) RevenueByAd(ctx context.Context, rng domain.RangeKey, countryFilter string) (map[string]*domain.AdRevenue, []string, error) {
	orders, notes, err := s.source.Orders(ctx)
	if err != nil {
		return nil, notes, err
	}

	start, end, bounded := rng.Window(s.now())
	filter := normalize.Text(countryFilter)

	revenue := make(map[string]*domain.AdRevenue)
	skipped := 0

	for _, order := range orders {
		adID := normalize.AdID(order.AdID)
		if adID == "" {
			skipped++
			continue
		}

		if bounded && (order.CreatedAt.Before(start) || order.CreatedAt.After(end)) {
			continue
		}

		country := normalize.Text(order.Country)
		if filter != "" && !strings.Contains(country, filter) {
			continue
		}

		currency := s.exchanger.CurrencyForCountry(country)
		rate := s.exchanger.RateFor(ctx, currency)

		entry, ok := revenue[adID]
		if !ok {
			entry = &domain.AdRevenue{
				Currency: currency,
				Country:  country,
			}
			revenue[adID] = entry
		}

		entry.Rate = rate
		entry.TotalLocal += order.Amount
		entry.TotalUSD += utils.SafeDiv(order.Amount, rate)
		entry.Sales++
	}

	for _, entry := range revenue {
		entry.TotalLocal = utils.RoundWithTwoDecimalPlace(entry.TotalLocal)
		entry.TotalUSD = utils.RoundWithTwoDecimalPlace(entry.TotalUSD)
	}

	if skipped > 0 {
		logrus.WithField("descartados", skipped).Warn("Pedidos sin anuncio atribuible fuera del agregado")
	}

	return revenue, notes, nil
}

// MessagesByAd cuenta los primeros mensajes por anuncio. A diferencia
// de los pedidos, la ventana se compara por día calendario: el feed de
// mensajes trae fechas sin hora.
func (s *Service) MessagesByAd(ctx context.Context, rng domain.RangeKey, countryFilter string) (map[string]int, []string, error) {
	messages, notes, err := s.source.Messages(ctx)
	if err != nil {
		return nil, notes, err
	}

	start, end, bounded := rng.Window(s.now())
	if bounded {
		start = utils.TruncateToDay(start)
		end = utils.EndOfDay(end)
	}

	filter := normalize.Text(countryFilter)
	counts := make(map[string]int)

	for _, message := range messages {
		adID := normalize.AdID(message.AdID)
		if adID == "" {
			continue
		}

		day := utils.TruncateToDay(message.CreatedAt)
		if bounded && (day.Before(start) || day.After(end)) {
			continue
		}

		if filter != "" && !strings.Contains(normalize.Text(message.Country), filter) {
			continue
		}

		counts[adID]++
	}

	return counts, notes, nil
}

// SalesByProduct responde la consulta histórica de ventas: todos los
// pedidos cuyo producto contiene el texto buscado, agrupados por país.
// Al cruzar todo el histórico, cada pedido se convierte con el tipo de
// cambio de su propia fecha.
func (s *Service) SalesByProduct(ctx context.Context, product, countryFilter string) (*domain.SalesSummary, []string, error) {
	orders, notes, err := s.source.Orders(ctx)
	if err != nil {
		return nil, notes, err
	}

	wanted := normalize.Text(product)
	filter := normalize.Text(countryFilter)

	summary := &domain.SalesSummary{
		Product:    wanted,
		SourceRows: len(orders),
	}
	byCountry := make(map[string]*domain.CountrySales)

	for _, order := range orders {
		if wanted != "" && !strings.Contains(normalize.Text(order.Product), wanted) {
			continue
		}

		country := normalize.Text(order.Country)
		if filter != "" && !strings.Contains(country, filter) {
			continue
		}

		currency := s.exchanger.CurrencyForCountry(country)
		rate := s.exchanger.HistoricalRate(ctx, order.CreatedAt, currency)
		usd := utils.SafeDiv(order.Amount, rate)

		entry, ok := byCountry[country]
		if !ok {
			entry = &domain.CountrySales{
				Country:  country,
				Currency: currency,
			}
			byCountry[country] = entry
		}

		entry.Sales++
		entry.TotalLocal += order.Amount
		entry.TotalUSD += usd

		summary.Sales++
		summary.TotalUSD += usd
	}

	for _, entry := range byCountry {
		entry.TotalLocal = utils.RoundWithTwoDecimalPlace(entry.TotalLocal)
		entry.TotalUSD = utils.RoundWithTwoDecimalPlace(entry.TotalUSD)
		summary.ByCountry = append(summary.ByCountry, *entry)
	}

	sort.Slice(summary.ByCountry, func(i, j int) bool {
		return summary.ByCountry[i].Country < summary.ByCountry[j].Country
	})

	summary.TotalUSD = utils.RoundWithTwoDecimalPlace(summary.TotalUSD)

	return summary, notes, nil
}
