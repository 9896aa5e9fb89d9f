package ventasbot

import (
	"context"
	"fmt"
	"time"

	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/ventasbot/ventasclient"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Source consolida pedidos y mensajes de todas las fuentes
// configuradas, en el orden en que fueron configuradas. Una fuente
// caída no corta la consolidación: su error se acumula y se sigue.
type Source interface {
	Orders(ctx context.Context) ([]domain.OrderRecord, []string, error)
	Messages(ctx context.Context) ([]domain.MessageRecord, []string, error)
}

type VentasIntegrator struct {
	cfg    *config.Config
	Client ventasclient.Client
}

func New(cfg *config.Config, client ventasclient.Client) *VentasIntegrator {
	return &VentasIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Layouts de fecha aceptados en los feeds del bot.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *VentasIntegrator) Orders(ctx context.Context) ([]domain.OrderRecord, []string, error) {
	var records []domain.OrderRecord
	var sourceErrors []string

	for _, source := range s.cfg.Sales.Sources {
		rows, err := s.Client.FetchOrders(ctx, source)
		if err != nil {
			logrus.WithError(err).WithField("fuente", source.Name).Error("ventas: fuente de pedidos no disponible")
			sourceErrors = append(sourceErrors, fmt.Sprintf("pedidos %s: %v", source.Name, err))
			continue
		}

		skipped := 0
		for _, row := range rows {
			createdAt, ok := parseDate(row.Fecha)
			if !ok {
				skipped++
				continue
			}

			records = append(records, domain.OrderRecord{
				AdID:      row.Anuncio,
				Amount:    row.Precio,
				Country:   row.Pais,
				Product:   row.Producto,
				CreatedAt: createdAt,
			})
		}

		if skipped > 0 {
			logrus.WithFields(logrus.Fields{
				"fuente":      source.Name,
				"descartados": skipped,
			}).Warn("ventas: pedidos con fecha ilegible descartados")
		}
	}

	return records, sourceErrors, nil
}

func (s *VentasIntegrator) Messages(ctx context.Context) ([]domain.MessageRecord, []string, error) {
	var records []domain.MessageRecord
	var sourceErrors []string

	for _, source := range s.cfg.Sales.Sources {
		rows, err := s.Client.FetchMessages(ctx, source)
		if err != nil {
			logrus.WithError(err).WithField("fuente", source.Name).Error("ventas: fuente de mensajes no disponible")
			sourceErrors = append(sourceErrors, fmt.Sprintf("mensajes %s: %v", source.Name, err))
			continue
		}

		skipped := 0
		for _, row := range rows {
			createdAt, ok := parseDate(row.Fecha)
			if !ok {
				skipped++
				continue
			}

			records = append(records, domain.MessageRecord{
				AdID:      row.Anuncio,
				Country:   row.Pais,
				CreatedAt: createdAt,
			})
		}

		if skipped > 0 {
			logrus.WithFields(logrus.Fields{
				"fuente":      source.Name,
				"descartados": skipped,
			}).Warn("ventas: mensajes con fecha ilegible descartados")
		}
	}

	return records, sourceErrors, nil
}
