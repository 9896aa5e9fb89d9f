package metadomain

// ErrorResponse es la estructura de error de la API de Graph.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contiene los detalles del error de la API de Graph.
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired indica si el error corresponde a un token vencido.
// El código 190 y los subcódigos 460, 463 y 467 señalan problemas de
// token en la API de Graph.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" &&
			(e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
