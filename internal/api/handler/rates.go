package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/exchange"
)

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"tasas"`
}

// GetRates devuelve las tasas de cambio vigentes contra el dólar. Si el
// proveedor externo está caído se responden las tasas de respaldo.
func GetRates(service exchange.Exchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates := service.Rates(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ratesResponse{
			Base:  "USD",
			Rates: rates,
		}); err != nil {
			logrus.WithError(err).Error("Error enviando las tasas de cambio")
		}
	}
}
