package meta

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	metadomain "github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/domain"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/metaclient"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/pkg/normalize"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Integrator es la fachada de Meta que consume el resto de la
// aplicación: filas de desempeño, estados, y la campaña guiada.
type Integrator interface {
	FetchAdRows(ctx context.Context, accountID string, rng domain.RangeKey) ([]domain.AdInsight, error)
	EnrichStatuses(ctx context.Context, rows []domain.AdInsight) ([]domain.AdInsight, error)
	SpendByAdID(ctx context.Context, adID string, rng domain.RangeKey) (float64, error)
	ValidatePage(ctx context.Context, pageID string) (string, error)
	CreateWhatsAppCampaign(ctx context.Context, req *domain.WhatsAppCampaignRequest) (*domain.WhatsAppCampaignResult, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client

	now func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// FetchAdRows descarga y parsea las filas de insights de una cuenta.
// Una fila con números malformados no se descarta: el campo queda en
// cero y se deja registro.
func (s *MetaIntegrator) FetchAdRows(ctx context.Context, accountID string, rng domain.RangeKey) ([]domain.AdInsight, error) {
	timeName, timeValue := rng.TimeParam(s.now())

	raw, err := s.Client.GetAdInsightsByAccountID(ctx, accountID, timeName, timeValue)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"rango":      string(rng),
			"error":      err.Error(),
		}).Error("insights: fallo al consultar insights de la cuenta")
		return nil, err
	}

	rows := make([]domain.AdInsight, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, s.factoryAdInsight(accountID, r))
	}

	return rows, nil
}

// factoryAdInsight convierte la fila cruda en el tipo de dominio.
func (s *MetaIntegrator) factoryAdInsight(accountID string, r metadomain.AdInsightRow) domain.AdInsight {
	spend := parseFloat(r.Spend, r.AdID, "spend")

	return domain.AdInsight{
		AccountID:    accountID,
		CampaignID:   r.CampaignID,
		CampaignName: r.CampaignName,
		AdsetID:      r.AdsetID,
		AdsetName:    r.AdsetName,
		AdID:         r.AdID,
		AdName:       r.AdName,
		Spend:        spend,
		Impressions:  parseInt(r.Impressions, r.AdID, "impressions"),
		Reach:        parseInt(r.Reach, r.AdID, "reach"),
		Clicks:       parseInt(r.UniqueInlineLinkClicks, r.AdID, "unique_inline_link_clicks"),

		AdStatus:       domain.StatusUnknown,
		AdsetStatus:    domain.StatusUnknown,
		CampaignStatus: domain.StatusUnknown,
		Delivery:       domain.DeliveryPaused,

		Country: domain.CountryFromText(normalize.Text(r.CampaignName)),
	}
}

func parseFloat(value, adID, field string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"campo": field,
			"valor": value,
		}).Warn("insights: error al convertir valor numérico")
		return 0
	}

	return f
}

func parseInt(value, adID, field string) int {
	if value == "" {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"campo": field,
			"valor": value,
		}).Warn("insights: error al convertir valor entero")
		return 0
	}

	return n
}

// EnrichStatuses consulta por lotes el estado efectivo de anuncios,
// conjuntos y campañas, más el presupuesto del conjunto. Una consulta
// fallida deja el estado en UNKNOWN sin botar el reporte.
func (s *MetaIntegrator) EnrichStatuses(ctx context.Context, rows []domain.AdInsight) ([]domain.AdInsight, error) {
	adIDs := uniqueIDs(rows, func(r domain.AdInsight) string { return r.AdID })
	adsetIDs := uniqueIDs(rows, func(r domain.AdInsight) string { return r.AdsetID })
	campaignIDs := uniqueIDs(rows, func(r domain.AdInsight) string { return r.CampaignID })

	requests := make([]metadomain.BatchRequest, 0, len(adIDs)+len(adsetIDs)+len(campaignIDs))
	for _, id := range adIDs {
		requests = append(requests, metadomain.BatchRequest{
			Method:      "GET",
			RelativeURL: fmt.Sprintf("%s?fields=effective_status", id),
		})
	}
	for _, id := range adsetIDs {
		requests = append(requests, metadomain.BatchRequest{
			Method:      "GET",
			RelativeURL: fmt.Sprintf("%s?fields=effective_status,daily_budget,lifetime_budget", id),
		})
	}
	for _, id := range campaignIDs {
		requests = append(requests, metadomain.BatchRequest{
			Method:      "GET",
			RelativeURL: fmt.Sprintf("%s?fields=effective_status", id),
		})
	}

	if len(requests) == 0 {
		return rows, nil
	}

	responses, err := s.Client.ExecuteBatch(ctx, requests)
	if err != nil {
		return nil, err
	}
	if len(responses) != len(requests) {
		return nil, fmt.Errorf("el lote devolvió %d respuestas para %d solicitudes", len(responses), len(requests))
	}

	statuses := make(map[string]domain.EntityStatus, len(requests))
	budgets := make(map[string]float64, len(adsetIDs))

	ids := append(append(append([]string{}, adIDs...), adsetIDs...), campaignIDs...)
	for i, resp := range responses {
		id := ids[i]
		statuses[id] = domain.StatusUnknown

		if resp.Code != 200 {
			logrus.WithFields(logrus.Fields{
				"entity_id": id,
				"code":      resp.Code,
			}).Warn("insights: consulta de estado fallida en el lote")
			continue
		}

		var body metadomain.EntityStatusBody
		if err := json.Unmarshal([]byte(resp.Body), &body); err != nil || body.EffectiveStatus == "" {
			logrus.WithField("entity_id", id).Warn("insights: cuerpo de estado ilegible en el lote")
			continue
		}

		statuses[id] = domain.EntityStatus(body.EffectiveStatus)

		if budget := parseBudget(body); budget > 0 {
			budgets[id] = budget
		}
	}

	enriched := make([]domain.AdInsight, len(rows))
	for i, row := range rows {
		row.AdStatus = statusOrUnknown(statuses, row.AdID)
		row.AdsetStatus = statusOrUnknown(statuses, row.AdsetID)
		row.CampaignStatus = statusOrUnknown(statuses, row.CampaignID)
		row.AdsetBudget = budgets[row.AdsetID]
		row.Delivery = domain.ResolveDelivery(row.AdStatus, row.AdsetStatus, row.CampaignStatus)
		enriched[i] = row
	}

	return enriched, nil
}

// parseBudget convierte el presupuesto de unidades menores a mayores,
// prefiriendo el diario sobre el de por vida.
func parseBudget(body metadomain.EntityStatusBody) float64 {
	raw := body.DailyBudget
	if raw == "" {
		raw = body.LifetimeBudget
	}
	if raw == "" {
		return 0
	}

	cents, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": body.ID,
			"valor":     raw,
		}).Warn("insights: presupuesto ilegible")
		return 0
	}

	return cents / 100
}

func statusOrUnknown(statuses map[string]domain.EntityStatus, id string) domain.EntityStatus {
	if st, ok := statuses[id]; ok {
		return st
	}
	return domain.StatusUnknown
}

func uniqueIDs(rows []domain.AdInsight, get func(domain.AdInsight) string) []string {
	seen := make(map[string]bool, len(rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		id := get(r)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// SpendByAdID consulta el gasto de un solo anuncio en un rango.
func (s *MetaIntegrator) SpendByAdID(ctx context.Context, adID string, rng domain.RangeKey) (float64, error) {
	timeName, timeValue := rng.TimeParam(s.now())

	row, err := s.Client.GetAdInsightsByAdID(ctx, adID, timeName, timeValue)
	if err != nil {
		return 0, err
	}
	if row == nil {
		return 0, nil
	}

	return parseFloat(row.Spend, adID, "spend"), nil
}

// ValidatePage verifica que la página exista y devuelve su nombre.
func (s *MetaIntegrator) ValidatePage(ctx context.Context, pageID string) (string, error) {
	page, err := s.Client.GetPage(ctx, pageID)
	if err != nil {
		return "", err
	}
	return page.Name, nil
}

var nonDigits = regexp.MustCompile(`\D`)

// WhatsAppLink arma el enlace wa.me con el mensaje de bienvenida ya
// codificado.
func WhatsAppLink(phone, welcomeMessage string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	link := "https://wa.me/" + digits
	if welcomeMessage != "" {
		link += "?text=" + url.QueryEscape(welcomeMessage)
	}
	return link
}

// CreateWhatsAppCampaign crea en cadena campaña, conjunto, creativo y
// anuncio. Todo nace en pausa para revisión manual.
func (s *MetaIntegrator) CreateWhatsAppCampaign(ctx context.Context, req *domain.WhatsAppCampaignRequest) (*domain.WhatsAppCampaignResult, error) {
	campaignParams := url.Values{}
	campaignParams.Set("name", req.CampaignName)
	campaignParams.Set("objective", metadomain.ObjectiveEngagement)
	campaignParams.Set("status", metadomain.StatusPausedOnCreate)
	campaignParams.Set("special_ad_categories", "[]")

	campaignID, err := s.Client.CreateObject(ctx, fmt.Sprintf("act_%s/campaigns", req.AccountID), campaignParams)
	if err != nil {
		return nil, err
	}

	targeting, err := json.Marshal(map[string]any{
		"geo_locations": map[string]any{"countries": req.Countries},
		"age_min":       req.AgeMin,
		"age_max":       req.AgeMax,
	})
	if err != nil {
		return nil, err
	}

	adsetParams := url.Values{}
	adsetParams.Set("name", req.CampaignName+" - Conjunto")
	adsetParams.Set("campaign_id", campaignID)
	adsetParams.Set("daily_budget", strconv.Itoa(int(req.DailyBudget*100)))
	adsetParams.Set("billing_event", metadomain.BillingEventImpressions)
	adsetParams.Set("optimization_goal", metadomain.OptimizationGoal)
	adsetParams.Set("bid_strategy", metadomain.BidStrategyLowestCost)
	adsetParams.Set("destination_type", metadomain.DestinationWhatsApp)
	adsetParams.Set("promoted_object", fmt.Sprintf(`{"page_id":"%s"}`, req.PageID))
	adsetParams.Set("targeting", string(targeting))
	adsetParams.Set("status", metadomain.StatusPausedOnCreate)

	adsetID, err := s.Client.CreateObject(ctx, fmt.Sprintf("act_%s/adsets", req.AccountID), adsetParams)
	if err != nil {
		return nil, err
	}

	linkData := map[string]any{
		"link":    WhatsAppLink(req.PhoneNumber, req.WelcomeMessage),
		"message": req.AdText,
	}
	if req.Headline != "" {
		linkData["name"] = req.Headline
	}
	if req.ImageURL != "" {
		linkData["picture"] = req.ImageURL
	}

	storySpec, err := json.Marshal(map[string]any{
		"page_id":   req.PageID,
		"link_data": linkData,
	})
	if err != nil {
		return nil, err
	}

	creativeParams := url.Values{}
	creativeParams.Set("name", req.CampaignName+" - Creativo")
	creativeParams.Set("object_story_spec", string(storySpec))

	creativeID, err := s.Client.CreateObject(ctx, fmt.Sprintf("act_%s/adcreatives", req.AccountID), creativeParams)
	if err != nil {
		return nil, err
	}

	adParams := url.Values{}
	adParams.Set("name", req.CampaignName+" - Anuncio")
	adParams.Set("adset_id", adsetID)
	adParams.Set("creative", fmt.Sprintf(`{"creative_id":"%s"}`, creativeID))
	adParams.Set("status", metadomain.StatusPausedOnCreate)

	adID, err := s.Client.CreateObject(ctx, fmt.Sprintf("act_%s/ads", req.AccountID), adParams)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  req.AccountID,
		"campaign_id": campaignID,
		"adset_id":    adsetID,
		"ad_id":       adID,
	}).Info("Campaña de WhatsApp creada en pausa")

	return &domain.WhatsAppCampaignResult{
		CampaignID: campaignID,
		AdsetID:    adsetID,
		CreativeID: creativeID,
		AdID:       adID,
	}, nil
}
