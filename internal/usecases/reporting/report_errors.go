package reporting

import "errors"

// Errores de configuración detectados antes de llamar a cualquier API
// externa. El handler los traduce a códigos CFG_*.
var (
	ErrNoAccessToken = errors.New("falta el token de acceso de Meta")
	ErrNoAccounts    = errors.New("no hay cuentas publicitarias configuradas")
	ErrNoSources     = errors.New("no hay fuentes de ventas configuradas")
)
