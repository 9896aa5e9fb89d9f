package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error de la API.
const (
	// Autenticación (AUTH_*)
	ErrInvalidCredentials    = "AUTH_001" // Credenciales inválidas
	ErrUserDisabled          = "AUTH_002" // Usuario desactivado
	ErrUserNotFound          = "AUTH_003" // Usuario no encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrInsufficientPrivilege = "AUTH_005" // Privilegios insuficientes
	ErrUserAlreadyExists     = "AUTH_006" // El usuario ya existe

	// Validación (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Solicitud inválida
	ErrMissingRequiredData = "VAL_002" // Faltan datos obligatorios
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Configuración (CFG_*): faltas detectadas antes de llamar a
	// cualquier API externa.
	ErrMissingToken    = "CFG_001" // Falta el token de acceso de Meta
	ErrMissingAccounts = "CFG_002" // No hay cuentas publicitarias configuradas
	ErrMissingSources  = "CFG_003" // No hay fuentes de ventas configuradas

	// Servidor y upstream (SRV_*)
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de base de datos
	ErrMetaAPI           = "SRV_003" // Error de la API de Meta
	ErrSalesSource       = "SRV_004" // Error de la fuente de ventas
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrMissingToken:          http.StatusBadRequest,
	ErrMissingAccounts:       http.StatusBadRequest,
	ErrMissingSources:        http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrMetaAPI:               http.StatusBadGateway,
	ErrSalesSource:           http.StatusBadGateway,
}

// APIError es la forma estándar de error que devuelve la API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError serializa el error estándar a la respuesta HTTP.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError envuelve un error Go en un error de API.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Error desconocido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
