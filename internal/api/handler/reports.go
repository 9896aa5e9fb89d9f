package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/internal/usecases/reporting"
	"github.com/jlunac/ads-revenue-api/pkg/apiErrors"
)

// parseReportFilters arma los filtros del reporte desde la query string.
// El rango es obligatorio; país y producto son opcionales.
func parseReportFilters(r *http.Request) (*domain.InsightFilters, error) {
	rangeParam := r.URL.Query().Get("range")
	if rangeParam == "" {
		return nil, errors.New("el parámetro range es obligatorio")
	}

	rng, err := domain.ParseRange(rangeParam)
	if err != nil {
		return nil, err
	}

	return &domain.InsightFilters{
		Range:   rng,
		Country: r.URL.Query().Get("country"),
		Product: r.URL.Query().Get("product"),
	}, nil
}

// writeConfigError traduce los errores de configuración del reporte a
// sus códigos CFG correspondientes. Devuelve false si el error no es
// de configuración.
func writeConfigError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, reporting.ErrNoAccessToken):
		apiErrors.WriteError(w, apiErrors.ErrMissingToken, err.Error(), nil)
	case errors.Is(err, reporting.ErrNoAccounts):
		apiErrors.WriteError(w, apiErrors.ErrMissingAccounts, err.Error(), nil)
	case errors.Is(err, reporting.ErrNoSources):
		apiErrors.WriteError(w, apiErrors.ErrMissingSources, err.Error(), nil)
	default:
		return false
	}
	return true
}

// GetAdReport devuelve el reporte conciliado de anuncios para un rango.
func GetAdReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		report, err := service.AdReport(r.Context(), filters)
		if err != nil {
			if writeConfigError(w, err) {
				return
			}
			logrus.WithError(err).Error("Error construyendo el reporte de anuncios")
			apiErrors.WriteError(w, apiErrors.ErrMetaAPI, "Error al construir el reporte", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Error enviando el reporte de anuncios")
		}
	}
}

// GetMultiRangeReport construye el reporte para todos los rangos en una
// sola respuesta. País y producto son opcionales.
func GetMultiRangeReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country := r.URL.Query().Get("country")
		product := r.URL.Query().Get("product")

		report, err := service.MultiRangeReport(r.Context(), country, product)
		if err != nil {
			if writeConfigError(w, err) {
				return
			}
			logrus.WithError(err).Error("Error construyendo el reporte multi rango")
			apiErrors.WriteError(w, apiErrors.ErrMetaAPI, "Error al construir el reporte", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Error enviando el reporte multi rango")
		}
	}
}

// GetProductReport agrupa las filas del reporte por producto según las
// reglas configuradas.
func GetProductReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		reports, err := service.ProductReport(r.Context(), filters)
		if err != nil {
			if writeConfigError(w, err) {
				return
			}
			logrus.WithError(err).Error("Error construyendo el reporte por producto")
			apiErrors.WriteError(w, apiErrors.ErrMetaAPI, "Error al construir el reporte", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reports); err != nil {
			logrus.WithError(err).Error("Error enviando el reporte por producto")
		}
	}
}
