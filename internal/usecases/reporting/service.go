package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/internal/usecases/aggregating"
	"github.com/jlunac/ads-revenue-api/pkg/metrics"
	"github.com/jlunac/ads-revenue-api/pkg/normalize"
	"github.com/jlunac/ads-revenue-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Reporter construye el reporte conciliado anuncio a ingreso: cruza el
// desempeño publicitario de Meta con los pedidos y mensajes del bot de
// ventas.
type Reporter interface {
	AdReport(ctx context.Context, filters *domain.InsightFilters) (*domain.AccountReport, error)
	MultiRangeReport(ctx context.Context, country, product string) (*domain.MultiRangeReport, error)
	ProductReport(ctx context.Context, filters *domain.InsightFilters) ([]domain.ProductReport, error)
	AdSpend(ctx context.Context, adID string, rng domain.RangeKey) (float64, error)
}

type Service struct {
	cfg        *config.Config
	meta       meta.Integrator
	aggregator aggregating.Aggregator
	metrics    *metrics.Metrics
}

func NewService(
	cfg *config.Config,
	metaService meta.Integrator,
	aggregator aggregating.Aggregator,
	m *metrics.Metrics,
) *Service {
	return &Service{
		cfg:        cfg,
		meta:       metaService,
		aggregator: aggregator,
		metrics:    m,
	}
}

// ensureConfig corta el reporte antes de tocar APIs externas cuando la
// configuración está incompleta.
func (s *Service) ensureConfig() error {
	if s.cfg.Meta.AccessToken == "" {
		return ErrNoAccessToken
	}

	if len(s.cfg.Meta.AccountIDs) == 0 {
		return ErrNoAccounts
	}

	if len(s.cfg.Sales.Sources) == 0 {
		return ErrNoSources
	}

	return nil
}

// AdReport arma el reporte de un rango para todas las cuentas
// configuradas. Las fallas por cuenta no cortan el reporte: se acumulan
// en Errores y se concilia lo que sí respondió.
func (s *Service) AdReport(ctx context.Context, filters *domain.InsightFilters) (*domain.AccountReport, error) {
	if err := s.ensureConfig(); err != nil {
		return nil, err
	}

	started := time.Now()

	report := &domain.AccountReport{Range: string(filters.Range)}

	var insights []domain.AdInsight

	for _, accountID := range s.cfg.Meta.AccountIDs {
		rows, err := s.meta.FetchAdRows(ctx, accountID, filters.Range)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).Error("No se pudo leer la cuenta publicitaria")
			report.Errores = append(report.Errores, fmt.Sprintf("cuenta %s: %v", accountID, err))
			continue
		}

		insights = append(insights, rows...)
	}

	if len(insights) > 0 {
		enriched, err := s.meta.EnrichStatuses(ctx, insights)
		if err != nil {
			logrus.WithError(err).Warn("No se pudieron consultar los estados, quedan como UNKNOWN")
			report.Errores = append(report.Errores, fmt.Sprintf("estados: %v", err))
		} else {
			insights = enriched
		}
	}

	insights = filterInsights(insights, filters, s.cfg.Report.ProductRules)

	revenue, notes, err := s.aggregator.RevenueByAd(ctx, filters.Range, filters.Country)
	if err != nil {
		report.Errores = append(report.Errores, fmt.Sprintf("pedidos: %v", err))
	}
	report.Errores = append(report.Errores, notes...)

	messages, notes, err := s.aggregator.MessagesByAd(ctx, filters.Range, filters.Country)
	if err != nil {
		report.Errores = append(report.Errores, fmt.Sprintf("mensajes: %v", err))
	}
	report.Errores = append(report.Errores, notes...)

	report.Rows = s.buildRows(insights, revenue, messages)
	report.Totals = TotalsRow(report.Rows)

	if s.metrics != nil {
		status := "ok"
		if len(report.Errores) > 0 {
			status = "parcial"
		}
		s.metrics.RecordReportBuild(string(filters.Range), status, len(report.Rows), time.Since(started))
	}

	return report, nil
}

// MultiRangeReport arma el reporte de todos los rangos conocidos, en
// el orden canónico, con totales por rango.
func (s *Service) MultiRangeReport(ctx context.Context, country, product string) (*domain.MultiRangeReport, error) {
	if err := s.ensureConfig(); err != nil {
		return nil, err
	}

	multi := &domain.MultiRangeReport{}

	for _, rng := range domain.AllRanges {
		report, err := s.AdReport(ctx, &domain.InsightFilters{
			Range:   rng,
			Country: country,
			Product: product,
		})
		if err != nil {
			return nil, err
		}

		for _, note := range report.Errores {
			multi.Errores = append(multi.Errores, fmt.Sprintf("%s: %s", rng, note))
		}
		report.Errores = nil

		multi.Ranges = append(multi.Ranges, *report)
	}

	return multi, nil
}

// ProductReport agrupa las filas del rango por producto según las
// reglas configuradas. Las campañas que no coinciden con ninguna regla
// quedan fuera. El orden de salida es el orden de las reglas.
func (s *Service) ProductReport(ctx context.Context, filters *domain.InsightFilters) ([]domain.ProductReport, error) {
	report, err := s.AdReport(ctx, filters)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.ReportRow)
	for _, row := range report.Rows {
		if row.Product == "" {
			continue
		}
		grouped[row.Product] = append(grouped[row.Product], row)
	}

	var products []domain.ProductReport

	for _, rule := range s.cfg.Report.ProductRules {
		rows, ok := grouped[rule.Name]
		if !ok {
			continue
		}
		delete(grouped, rule.Name)

		products = append(products, domain.ProductReport{
			Product: rule.Name,
			Rows:    rows,
			Totals:  TotalsRow(rows),
		})
	}

	return products, nil
}

// AdSpend consulta el gasto de un solo anuncio.
func (s *Service) AdSpend(ctx context.Context, adID string, rng domain.RangeKey) (float64, error) {
	if s.cfg.Meta.AccessToken == "" {
		return 0, ErrNoAccessToken
	}

	spend, err := s.meta.SpendByAdID(ctx, normalize.AdID(adID), rng)
	if err != nil {
		return 0, err
	}

	return utils.RoundWithTwoDecimalPlace(spend), nil
}

// filterInsights aplica los filtros de país y producto sobre las filas
// de Meta y asigna el producto de cada campaña. Para las campañas la
// contención va al revés que en los pedidos: el nombre de la campaña
// contiene al país filtrado.
func filterInsights(insights []domain.AdInsight, filters *domain.InsightFilters, rules []domain.ProductRule) []domain.AdInsight {
	country := normalize.Text(filters.Country)
	product := normalize.Text(filters.Product)

	filtered := insights[:0]

	for _, insight := range insights {
		name := normalize.Text(insight.CampaignName)

		if country != "" && !strings.Contains(name, country) {
			continue
		}

		if product != "" {
			matched, ok := domain.MatchProduct(insight.CampaignName, rules)
			if !ok || normalize.Text(matched) != product {
				continue
			}
		}

		filtered = append(filtered, insight)
	}

	return filtered
}

// buildRows concilia cada anuncio con su facturación y sus mensajes.
// Toda razón con denominador cero vale cero, nunca NaN ni infinito.
func (s *Service) buildRows(
	insights []domain.AdInsight,
	revenue map[string]*domain.AdRevenue,
	messages map[string]int,
) []domain.ReportRow {
	taxRate := s.cfg.Report.TaxRate
	rows := make([]domain.ReportRow, 0, len(insights))

	for _, insight := range insights {
		adID := normalize.AdID(insight.AdID)

		row := domain.ReportRow{
			AccountID:    insight.AccountID,
			CampaignID:   insight.CampaignID,
			CampaignName: insight.CampaignName,
			AdsetID:      insight.AdsetID,
			AdsetName:    insight.AdsetName,
			AdID:         adID,
			AdName:       insight.AdName,
			Impressions:  insight.Impressions,
			Reach:        insight.Reach,
			Clicks:       insight.Clicks,
			Messages:     messages[adID],
			Budget:       insight.AdsetBudget,
			Delivery:     insight.Delivery,
			Country:      insight.Country,
		}

		row.Spend = insight.Spend
		row.Tax = insight.Spend * taxRate
		row.SpendWithTax = row.Spend + row.Tax

		if rev, ok := revenue[adID]; ok {
			row.RevenueLocal = rev.TotalLocal
			row.RevenueUSD = rev.TotalUSD
			row.Currency = rev.Currency
			row.Rate = rev.Rate
			row.Sales = rev.Sales
		}

		if product, ok := domain.MatchProduct(insight.CampaignName, s.cfg.Report.ProductRules); ok {
			row.Product = product
		}

		computeRatios(&row)
		rows = append(rows, row)
	}

	return rows
}

// computeRatios calcula las métricas derivadas de una fila a partir de
// sus bases y redondea los montos a dos decimales.
func computeRatios(row *domain.ReportRow) {
	row.ROAS = utils.SafeDiv(row.RevenueUSD, row.SpendWithTax)
	row.Profit = row.RevenueUSD - row.SpendWithTax
	row.ROI = utils.SafeDiv(row.Profit, row.SpendWithTax)

	row.CPM = utils.SafeDiv(row.Spend, float64(row.Impressions)) * 1000
	row.CostPerClick = utils.SafeDiv(row.SpendWithTax, float64(row.Clicks))

	row.MessageRate = utils.SafeDiv(float64(row.Messages), float64(row.Clicks))
	row.CostPerMessage = utils.SafeDiv(row.SpendWithTax, float64(row.Messages))

	row.CVR = utils.SafeDiv(float64(row.Sales), float64(row.Messages))
	row.CostPerSale = utils.SafeDiv(row.SpendWithTax, float64(row.Sales))

	row.Spend = utils.RoundWithTwoDecimalPlace(row.Spend)
	row.Tax = utils.RoundWithTwoDecimalPlace(row.Tax)
	row.SpendWithTax = utils.RoundWithTwoDecimalPlace(row.SpendWithTax)
	row.Profit = utils.RoundWithTwoDecimalPlace(row.Profit)
	row.ROAS = utils.RoundWithTwoDecimalPlace(row.ROAS)
	row.ROI = utils.RoundWithTwoDecimalPlace(row.ROI)
	row.CPM = utils.RoundWithTwoDecimalPlace(row.CPM)
	row.CostPerClick = utils.RoundWithTwoDecimalPlace(row.CostPerClick)
	row.MessageRate = utils.RoundWithTwoDecimalPlace(row.MessageRate)
	row.CostPerMessage = utils.RoundWithTwoDecimalPlace(row.CostPerMessage)
	row.CVR = utils.RoundWithTwoDecimalPlace(row.CVR)
	row.CostPerSale = utils.RoundWithTwoDecimalPlace(row.CostPerSale)
}

// TotalsRow suma las bases de todas las filas y recalcula las razones
// desde las sumas, no promediando las razones por fila.
func TotalsRow(rows []domain.ReportRow) domain.ReportRow {
	totals := domain.ReportRow{AdName: "TOTALES"}

	for _, row := range rows {
		totals.Spend += row.Spend
		totals.Tax += row.Tax
		totals.SpendWithTax += row.SpendWithTax
		totals.RevenueUSD += row.RevenueUSD
		totals.Impressions += row.Impressions
		totals.Reach += row.Reach
		totals.Clicks += row.Clicks
		totals.Messages += row.Messages
		totals.Sales += row.Sales
		totals.Budget += row.Budget
	}

	computeRatios(&totals)
	totals.RevenueUSD = utils.RoundWithTwoDecimalPlace(totals.RevenueUSD)

	return totals
}
