package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jlunac/ads-revenue-api/internal/scheduler"
	"github.com/jlunac/ads-revenue-api/pkg/apiErrors"
)

// RunReportSync dispara manualmente la sincronización del snapshot del
// reporte histórico. La corrida ocurre en segundo plano; el estado se
// consulta por el endpoint de status.
func RunReportSync(service *scheduler.ReportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReportSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización no disponible", nil)
			return
		}

		service.TriggerManualSync()

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Sincronización iniciada con éxito",
			"type":    "report-sync",
		})
	}
}

// GetReportSyncStatus devuelve el estado de la sincronización programada.
func GetReportSyncStatus(service *scheduler.ReportSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización no disponible", nil)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"report-sync": service.GetStatus(),
		})
	}
}
