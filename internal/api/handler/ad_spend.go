package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/internal/usecases/reporting"
	"github.com/jlunac/ads-revenue-api/pkg/apiErrors"
)

type adSpendResponse struct {
	AdID  string  `json:"anuncio"`
	Range string  `json:"rango"`
	Spend float64 `json:"gasto"`
}

// GetAdSpend devuelve el gasto de un anuncio puntual en el rango pedido.
// El ID acepta cualquiera de las variantes con prefijo.
func GetAdSpend(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del anuncio no proporcionado", nil)
			return
		}

		rng, err := domain.ParseRange(r.URL.Query().Get("range"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		spend, err := service.AdSpend(r.Context(), adID, rng)
		if err != nil {
			if writeConfigError(w, err) {
				return
			}
			logrus.WithError(err).WithField("ad_id", adID).Error("Error consultando el gasto del anuncio")
			apiErrors.WriteError(w, apiErrors.ErrMetaAPI, "Error al consultar el gasto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(adSpendResponse{
			AdID:  adID,
			Range: string(rng),
			Spend: spend,
		}); err != nil {
			logrus.WithError(err).Error("Error enviando la respuesta de gasto")
		}
	}
}
