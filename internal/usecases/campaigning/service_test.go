package campaigning

import (
	"context"
	"errors"
	"testing"

	metamocks "github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/mocks"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validRequest() *domain.WhatsAppCampaignRequest {
	return &domain.WhatsAppCampaignRequest{
		AccountID:      "act_1",
		PageID:         "page_9",
		CampaignName:   "CURSO TRADING PERU ABRIL",
		DailyBudget:    20,
		Countries:      []string{"pe", "CO"},
		AgeMin:         20,
		AgeMax:         45,
		PhoneNumber:    "+51999888777",
		WelcomeMessage: "Hola, quiero más información",
		AdText:         "Aprende a operar desde cero",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *domain.WhatsAppCampaignRequest)
		wantErr string
	}{
		{
			name:   "solicitud completa",
			mutate: func(req *domain.WhatsAppCampaignRequest) {},
		},
		{
			name:    "sin cuenta",
			mutate:  func(req *domain.WhatsAppCampaignRequest) { req.AccountID = "" },
			wantErr: "account_id",
		},
		{
			name:    "presupuesto en cero",
			mutate:  func(req *domain.WhatsAppCampaignRequest) { req.DailyBudget = 0 },
			wantErr: "presupuesto",
		},
		{
			name:    "sin paises",
			mutate:  func(req *domain.WhatsAppCampaignRequest) { req.Countries = nil },
			wantErr: "país",
		},
		{
			name:    "codigo de pais largo",
			mutate:  func(req *domain.WhatsAppCampaignRequest) { req.Countries = []string{"PER"} },
			wantErr: "código de país inválido",
		},
		{
			name:    "edades invertidas",
			mutate:  func(req *domain.WhatsAppCampaignRequest) { req.AgeMin = 50; req.AgeMax = 30 },
			wantErr: "edad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := Validate(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateNormalizaCodigosDePais(t *testing.T) {
	req := validRequest()
	require.NoError(t, Validate(req))
	assert.Equal(t, []string{"PE", "CO"}, req.Countries)
}

func TestCreateWhatsAppCampaignVerificaLaPagina(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := metamocks.NewMockIntegrator(ctrl)
	service := NewService(metaService)

	req := validRequest()

	gomock.InOrder(
		metaService.EXPECT().ValidatePage(gomock.Any(), "page_9").Return("Academia Trading", nil),
		metaService.EXPECT().CreateWhatsAppCampaign(gomock.Any(), req).Return(&domain.WhatsAppCampaignResult{
			CampaignID: "c1", AdsetID: "s1", CreativeID: "cr1", AdID: "a1",
		}, nil),
	)

	result, err := service.CreateWhatsAppCampaign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "a1", result.AdID)
}

func TestCreateWhatsAppCampaignPaginaInvalidaNoCrea(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := metamocks.NewMockIntegrator(ctrl)
	service := NewService(metaService)

	metaService.EXPECT().ValidatePage(gomock.Any(), "page_9").Return("", errors.New("(#803) no existe"))

	_, err := service.CreateWhatsAppCampaign(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page_9")
}
