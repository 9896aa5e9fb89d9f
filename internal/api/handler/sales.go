package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/internal/usecases/aggregating"
	"github.com/jlunac/ads-revenue-api/pkg/apiErrors"
)

type salesSummaryResponse struct {
	Summary *domain.SalesSummary `json:"resumen"`
	Notes   []string             `json:"notas,omitempty"`
}

// GetSalesSummary consulta las ventas históricas de un producto,
// agrupadas por país. El producto es obligatorio.
func GetSalesSummary(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product := r.URL.Query().Get("product")
		if product == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "El parámetro product es obligatorio", nil)
			return
		}

		summary, notes, err := service.SalesByProduct(r.Context(), product, r.URL.Query().Get("country"))
		if err != nil {
			logrus.WithError(err).Error("Error consultando ventas por producto")
			apiErrors.WriteError(w, apiErrors.ErrSalesSource, "Error al consultar la fuente de ventas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(salesSummaryResponse{
			Summary: summary,
			Notes:   notes,
		}); err != nil {
			logrus.WithError(err).Error("Error enviando el resumen de ventas")
		}
	}
}
