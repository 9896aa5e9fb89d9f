package domain

import "time"

// ReportRow es una fila del reporte conciliado anuncio a ingreso.
// Todos los montos financieros están expresados en USD salvo
// RevenueLocal, que conserva la moneda local de la venta.
type ReportRow struct {
	AccountID    string `json:"account_id"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campana"`
	AdsetID      string `json:"adset_id"`
	AdsetName    string `json:"conjunto"`
	AdID         string `json:"ad_id"`
	AdName       string `json:"anuncio"`

	Spend        float64 `json:"gasto"`
	Tax          float64 `json:"igv"`
	SpendWithTax float64 `json:"gasto_total"`

	RevenueLocal float64 `json:"facturacion_local"`
	RevenueUSD   float64 `json:"facturacion_usd"`
	Currency     string  `json:"moneda"`
	Rate         float64 `json:"tipo_cambio"`

	ROAS   float64 `json:"roas"`
	Profit float64 `json:"utilidad"`
	ROI    float64 `json:"roi"`

	Impressions  int     `json:"impresiones"`
	Reach        int     `json:"alcance"`
	Clicks       int     `json:"clics"`
	CostPerClick float64 `json:"costo_por_clic"`
	CPM          float64 `json:"cpm"`

	Messages       int     `json:"mensajes"`
	MessageRate    float64 `json:"porcentaje_mensajes"`
	CostPerMessage float64 `json:"costo_por_mensaje"`

	Sales       int     `json:"ventas"`
	CVR         float64 `json:"cvr"`
	CostPerSale float64 `json:"costo_por_compra"`

	Budget   float64        `json:"presupuesto"`
	Delivery DeliveryStatus `json:"estado_general"`
	Country  string         `json:"pais"`
	Product  string         `json:"producto,omitempty"`
}

// AccountReport agrupa las filas de un rango con su fila de totales.
// Errores acumula las fallas por cuenta que no impidieron el reporte.
type AccountReport struct {
	Range   string      `json:"rango"`
	Rows    []ReportRow `json:"filas"`
	Totals  ReportRow   `json:"totales"`
	Errores []string    `json:"errores,omitempty"`
}

// ProductReport agrupa las filas de un producto con sus totales.
type ProductReport struct {
	Product string      `json:"producto"`
	Rows    []ReportRow `json:"filas"`
	Totals  ReportRow   `json:"totales"`
}

// MultiRangeReport contiene el reporte de todos los rangos conocidos.
type MultiRangeReport struct {
	Ranges  []AccountReport `json:"rangos"`
	Errores []string        `json:"errores,omitempty"`
}

// ReportSnapshot es una foto diaria del reporte persistida por el
// sincronizador. Hay a lo sumo una por rango y día.
type ReportSnapshot struct {
	ID        string         `json:"id"`
	Range     string         `json:"rango"`
	Date      time.Time      `json:"fecha"`
	Report    *AccountReport `json:"reporte"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}
