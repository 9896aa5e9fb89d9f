package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jlunac/ads-revenue-api/internal/domain"
	"github.com/jlunac/ads-revenue-api/internal/usecases/campaigning"
	"github.com/jlunac/ads-revenue-api/pkg/apiErrors"
)

// CreateWhatsAppCampaign crea la cadena campaña, conjunto, creativo y
// anuncio para una campaña de mensajes de WhatsApp.
func CreateWhatsAppCampaign(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.WhatsAppCampaignRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error al decodificar la solicitud", nil)
			return
		}

		// Validar acá para responder 400 antes de tocar la API de Meta.
		if err := campaigning.Validate(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := service.CreateWhatsAppCampaign(r.Context(), &req)
		if err != nil {
			logrus.WithError(err).Error("Error creando la campaña de WhatsApp")
			apiErrors.WriteError(w, apiErrors.ErrMetaAPI, "Error al crear la campaña", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Error enviando la respuesta de campaña")
		}
	}
}
