package meta

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/domain"
	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/domain"
)

func newTestIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	svc := New(&config.Config{}, client)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}

	return svc, client
}

func TestFetchAdRowsParseaYDetectaPais(t *testing.T) {
	svc, client := newTestIntegrator(t)

	client.EXPECT().
		GetAdInsightsByAccountID(gomock.Any(), "111", "date_preset", "yesterday").
		Return([]metadomain.AdInsightRow{
			{
				CampaignID:             "c1",
				CampaignName:           "Ventas Perú - Marzo",
				AdsetID:                "s1",
				AdsetName:              "Conjunto 1",
				AdID:                   "a1",
				AdName:                 "Anuncio 1",
				Spend:                  "12.50",
				Impressions:            "1000",
				Reach:                  "800",
				UniqueInlineLinkClicks: "45",
			},
			{
				CampaignID:   "c2",
				CampaignName: "Campaña sin destino",
				AdID:         "a2",
				Spend:        "no-numerico",
				Impressions:  "",
			},
		}, nil)

	rows, err := svc.FetchAdRows(context.Background(), "111", domain.RangeYday)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 12.50, rows[0].Spend)
	assert.Equal(t, 1000, rows[0].Impressions)
	assert.Equal(t, 800, rows[0].Reach)
	assert.Equal(t, 45, rows[0].Clicks)
	assert.Equal(t, "PERU", rows[0].Country)
	assert.Equal(t, domain.StatusUnknown, rows[0].AdStatus)

	// Números malformados degradan a cero sin botar la fila.
	assert.Equal(t, 0.0, rows[1].Spend)
	assert.Equal(t, 0, rows[1].Impressions)
	assert.Equal(t, domain.CountryNotFound, rows[1].Country)
}

func TestEnrichStatusesConsolidaJerarquia(t *testing.T) {
	svc, client := newTestIntegrator(t)

	rows := []domain.AdInsight{
		{AdID: "a1", AdsetID: "s1", CampaignID: "c1"},
		{AdID: "a2", AdsetID: "s1", CampaignID: "c1"},
	}

	// Orden de solicitudes: anuncios, conjuntos, campañas.
	client.EXPECT().
		ExecuteBatch(gomock.Any(), gomock.Len(4)).
		Return([]metadomain.BatchResponse{
			{Code: 200, Body: `{"id":"a1","effective_status":"ACTIVE"}`},
			{Code: 200, Body: `{"id":"a2","effective_status":"PAUSED"}`},
			{Code: 200, Body: `{"id":"s1","effective_status":"ACTIVE","daily_budget":"1500"}`},
			{Code: 200, Body: `{"id":"c1","effective_status":"ACTIVE"}`},
		}, nil)

	enriched, err := svc.EnrichStatuses(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	assert.Equal(t, domain.DeliveryInCirculation, enriched[0].Delivery)
	assert.Equal(t, domain.DeliveryPaused, enriched[1].Delivery)

	// Presupuesto en unidades menores dividido entre 100.
	assert.Equal(t, 15.0, enriched[0].AdsetBudget)
	assert.Equal(t, 15.0, enriched[1].AdsetBudget)
}

func TestEnrichStatusesFallaParcialDejaUnknown(t *testing.T) {
	svc, client := newTestIntegrator(t)

	rows := []domain.AdInsight{
		{AdID: "a1", AdsetID: "s1", CampaignID: "c1"},
	}

	client.EXPECT().
		ExecuteBatch(gomock.Any(), gomock.Len(3)).
		Return([]metadomain.BatchResponse{
			{Code: 400, Body: `{"error":{"message":"no permitido"}}`},
			{Code: 200, Body: `{"id":"s1","effective_status":"ACTIVE"}`},
			{Code: 200, Body: `cuerpo ilegible`},
		}, nil)

	enriched, err := svc.EnrichStatuses(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusUnknown, enriched[0].AdStatus)
	assert.Equal(t, domain.StatusActive, enriched[0].AdsetStatus)
	assert.Equal(t, domain.StatusUnknown, enriched[0].CampaignStatus)

	// UNKNOWN nunca cuenta como activo.
	assert.Equal(t, domain.DeliveryPaused, enriched[0].Delivery)
}

func TestSpendByAdIDSinDatosDevuelveCero(t *testing.T) {
	svc, client := newTestIntegrator(t)

	client.EXPECT().
		GetAdInsightsByAdID(gomock.Any(), "a9", "date_preset", "maximum").
		Return(nil, nil)

	spend, err := svc.SpendByAdID(context.Background(), "a9", domain.RangeMax)
	require.NoError(t, err)
	assert.Equal(t, 0.0, spend)
}

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		message  string
		expected string
	}{
		{
			name:     "número con formato y mensaje",
			phone:    "+51 999 888 777",
			message:  "Hola, quiero más información",
			expected: "https://wa.me/51999888777?text=Hola%2C+quiero+m%C3%A1s+informaci%C3%B3n",
		},
		{
			name:     "sin mensaje no agrega query",
			phone:    "51999888777",
			message:  "",
			expected: "https://wa.me/51999888777",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WhatsAppLink(tt.phone, tt.message))
		})
	}
}

func TestCreateWhatsAppCampaignEncadenaCreaciones(t *testing.T) {
	svc, client := newTestIntegrator(t)

	req := &domain.WhatsAppCampaignRequest{
		AccountID:      "111",
		PageID:         "p1",
		CampaignName:   "WSP Perú",
		DailyBudget:    20,
		Countries:      []string{"PE"},
		AgeMin:         18,
		AgeMax:         55,
		PhoneNumber:    "51999888777",
		WelcomeMessage: "Hola",
		AdText:         "Escríbenos",
	}

	gomock.InOrder(
		client.EXPECT().
			CreateObject(gomock.Any(), "act_111/campaigns", gomock.Any()).
			Return("camp1", nil),
		client.EXPECT().
			CreateObject(gomock.Any(), "act_111/adsets", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params url.Values) (string, error) {
				// El presupuesto viaja en centavos.
				assert.Equal(t, "2000", params["daily_budget"][0])
				return "set1", nil
			}),
		client.EXPECT().
			CreateObject(gomock.Any(), "act_111/adcreatives", gomock.Any()).
			Return("cre1", nil),
		client.EXPECT().
			CreateObject(gomock.Any(), "act_111/ads", gomock.Any()).
			Return("ad1", nil),
	)

	result, err := svc.CreateWhatsAppCampaign(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "camp1", result.CampaignID)
	assert.Equal(t, "set1", result.AdsetID)
	assert.Equal(t, "cre1", result.CreativeID)
	assert.Equal(t, "ad1", result.AdID)
}
