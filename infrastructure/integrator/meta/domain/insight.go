package metadomain

// AdInsightRow es una fila cruda del endpoint de insights a nivel
// anuncio. Los números llegan como strings y se parsean después.
type AdInsightRow struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdsetID      string `json:"adset_id"`
	AdsetName    string `json:"adset_name"`
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`

	Spend                  string `json:"spend"`
	Impressions            string `json:"impressions"`
	Reach                  string `json:"reach"`
	UniqueInlineLinkClicks string `json:"unique_inline_link_clicks"`
}

// Paging es el cursor de paginación de la API de Graph.
type Paging struct {
	Next string `json:"next"`
}

// InsightsResponse es la página de respuesta del endpoint de insights.
type InsightsResponse struct {
	Data   []AdInsightRow `json:"data"`
	Paging Paging         `json:"paging"`
}
