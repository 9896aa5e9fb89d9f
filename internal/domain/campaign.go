package domain

// WhatsAppCampaignRequest describe la campaña guiada de mensajes:
// campaña, conjunto, creativo y anuncio se crean en cadena.
type WhatsAppCampaignRequest struct {
	AccountID    string `json:"account_id"`
	PageID       string `json:"page_id"`
	CampaignName string `json:"nombre_campana"`

	// DailyBudget está en unidades mayores; la API lo exige en centavos.
	DailyBudget float64 `json:"presupuesto_diario"`

	// Countries son códigos de país de dos letras para la segmentación.
	Countries []string `json:"paises"`

	AgeMin int `json:"edad_min,omitempty"`
	AgeMax int `json:"edad_max,omitempty"`

	// PhoneNumber es el número de WhatsApp destino, con código de país.
	PhoneNumber string `json:"telefono"`

	// WelcomeMessage se precarga en el enlace wa.me.
	WelcomeMessage string `json:"mensaje_bienvenida"`

	ImageURL string `json:"imagen_url,omitempty"`
	AdText   string `json:"texto_anuncio"`
	Headline string `json:"titulo,omitempty"`
}

// WhatsAppCampaignResult devuelve los IDs creados en cada paso.
type WhatsAppCampaignResult struct {
	CampaignID string `json:"campaign_id"`
	AdsetID    string `json:"adset_id"`
	CreativeID string `json:"creative_id"`
	AdID       string `json:"ad_id"`
}
