package metadomain

// BatchRequest es una sub-solicitud del endpoint batch de Graph.
type BatchRequest struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
}

// BatchResponse es la respuesta de una sub-solicitud. Body llega como
// string JSON y se decodifica según lo pedido.
type BatchResponse struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}

// EntityStatusBody es el cuerpo esperado al consultar el estado y
// presupuesto de una entidad publicitaria.
type EntityStatusBody struct {
	ID              string `json:"id"`
	EffectiveStatus string `json:"effective_status"`

	// Presupuestos en unidades menores de la moneda de la cuenta.
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
}
