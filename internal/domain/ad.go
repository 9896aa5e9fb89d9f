package domain

// EntityStatus es el estado efectivo de una entidad publicitaria en Meta
// (anuncio, conjunto de anuncios o campaña).
type EntityStatus string

const (
	StatusActive   EntityStatus = "ACTIVE"
	StatusPaused   EntityStatus = "PAUSED"
	StatusDeleted  EntityStatus = "DELETED"
	StatusArchived EntityStatus = "ARCHIVED"

	// StatusUnknown es el centinela cuando la consulta de estado falla.
	// Nunca se confunde con un estado real devuelto por la API.
	StatusUnknown EntityStatus = "UNKNOWN"
)

// Active indica si la entidad está entregando anuncios.
func (s EntityStatus) Active() bool {
	return s == StatusActive
}

// DeliveryStatus es el estado consolidado que ve el analista:
// un anuncio circula solo si toda su jerarquía está activa.
type DeliveryStatus string

const (
	DeliveryInCirculation DeliveryStatus = "EN CIRCULACIÓN"
	DeliveryPaused        DeliveryStatus = "EN PAUSA"
)

// ResolveDelivery consolida los tres niveles de la jerarquía publicitaria.
func ResolveDelivery(ad, adset, campaign EntityStatus) DeliveryStatus {
	if ad.Active() && adset.Active() && campaign.Active() {
		return DeliveryInCirculation
	}
	return DeliveryPaused
}

// AdInsight es una fila de desempeño a nivel anuncio, ya parseada
// desde la API de insights y enriquecida con estados y presupuesto.
type AdInsight struct {
	AccountID    string `json:"account_id"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdsetID      string `json:"adset_id"`
	AdsetName    string `json:"adset_name"`
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`

	Spend       float64 `json:"gasto"`
	Impressions int     `json:"impresiones"`
	Reach       int     `json:"alcance"`
	Clicks      int     `json:"clics"`

	AdStatus       EntityStatus `json:"estado_anuncio"`
	AdsetStatus    EntityStatus `json:"estado_conjunto"`
	CampaignStatus EntityStatus `json:"estado_campana"`

	// AdsetBudget está en unidades mayores de la moneda de la cuenta.
	// Se prefiere el presupuesto diario sobre el de por vida.
	AdsetBudget float64 `json:"presupuesto_conjunto"`

	Delivery DeliveryStatus `json:"estado_general"`

	// Country se deriva del nombre de la campaña; "N/A" si no se reconoce.
	Country string `json:"pais"`
}
