package metadomain

// CreateResponse es la respuesta de los endpoints de creación.
type CreateResponse struct {
	ID string `json:"id"`
}

// Page es la respuesta mínima al validar una página de Facebook.
type Page struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Constantes de la campaña guiada de WhatsApp.
const (
	ObjectiveEngagement     = "OUTCOME_ENGAGEMENT"
	OptimizationGoal        = "CONVERSATIONS"
	BillingEventImpressions = "IMPRESSIONS"
	BidStrategyLowestCost   = "LOWEST_COST_WITHOUT_CAP"
	DestinationWhatsApp     = "WHATSAPP"
	StatusPausedOnCreate    = "PAUSED"
)
