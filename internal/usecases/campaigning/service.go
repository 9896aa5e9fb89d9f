package campaigning

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Campaigner crea campañas guiadas de WhatsApp. Todo se crea en pausa:
// el analista revisa en el administrador de anuncios antes de activar.
type Campaigner interface {
	CreateWhatsAppCampaign(ctx context.Context, req *domain.WhatsAppCampaignRequest) (*domain.WhatsAppCampaignResult, error)
	ValidatePage(ctx context.Context, pageID string) (string, error)
}

type Service struct {
	meta meta.Integrator
}

func NewService(metaService meta.Integrator) *Service {
	return &Service{meta: metaService}
}

var countryCode = regexp.MustCompile(`^[A-Z]{2}$`)

// Validate revisa la solicitud antes de encadenar creaciones: un paso
// inválido a mitad de cadena dejaría objetos huérfanos en la cuenta.
func Validate(req *domain.WhatsAppCampaignRequest) error {
	if req == nil {
		return fmt.Errorf("solicitud vacía")
	}

	required := map[string]string{
		"account_id":         req.AccountID,
		"page_id":            req.PageID,
		"nombre_campana":     req.CampaignName,
		"telefono":           req.PhoneNumber,
		"mensaje_bienvenida": req.WelcomeMessage,
		"texto_anuncio":      req.AdText,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("falta el campo %s", field)
		}
	}

	if req.DailyBudget <= 0 {
		return fmt.Errorf("el presupuesto diario debe ser mayor que cero")
	}

	if len(req.Countries) == 0 {
		return fmt.Errorf("debe indicar al menos un país de segmentación")
	}

	for i, code := range req.Countries {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if !countryCode.MatchString(normalized) {
			return fmt.Errorf("código de país inválido: %q", code)
		}
		req.Countries[i] = normalized
	}

	if req.AgeMin != 0 && req.AgeMax != 0 && req.AgeMin > req.AgeMax {
		return fmt.Errorf("la edad mínima no puede superar la máxima")
	}

	return nil
}

// CreateWhatsAppCampaign valida la solicitud, verifica que la página
// exista y delega la cadena de creación.
func (s *Service) CreateWhatsAppCampaign(ctx context.Context, req *domain.WhatsAppCampaignRequest) (*domain.WhatsAppCampaignResult, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	pageName, err := s.meta.ValidatePage(ctx, req.PageID)
	if err != nil {
		return nil, fmt.Errorf("página %s no verificable: %w", req.PageID, err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": req.AccountID,
		"page":       pageName,
		"campana":    req.CampaignName,
	}).Info("Creando campaña de WhatsApp")

	result, err := s.meta.CreateWhatsAppCampaign(ctx, req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": result.CampaignID,
		"adset_id":    result.AdsetID,
		"ad_id":       result.AdID,
	}).Info("Campaña de WhatsApp creada en pausa")

	return result, nil
}

// ValidatePage devuelve el nombre de la página si el token la alcanza.
func (s *Service) ValidatePage(ctx context.Context, pageID string) (string, error) {
	if strings.TrimSpace(pageID) == "" {
		return "", fmt.Errorf("falta el page_id")
	}
	return s.meta.ValidatePage(ctx, pageID)
}
