package domain

import "time"

// OrderRecord es un pedido consolidado tal como llega de la fuente de
// ventas. Amount está en la moneda local del país del pedido.
type OrderRecord struct {
	AdID      string    `json:"anuncio"`
	Amount    float64   `json:"precio"`
	Country   string    `json:"pais"`
	Product   string    `json:"producto"`
	CreatedAt time.Time `json:"fecha"`
}

// MessageRecord es un primer mensaje entrante atribuido a un anuncio.
type MessageRecord struct {
	AdID      string    `json:"anuncio"`
	Country   string    `json:"pais"`
	CreatedAt time.Time `json:"fecha"`
}

// AdRevenue es la facturación agregada de un anuncio dentro de una
// ventana de fechas. La clave de agregación es el ID normalizado.
type AdRevenue struct {
	TotalUSD   float64
	TotalLocal float64
	Currency   string
	Rate       float64
	Sales      int
	Country    string
}

// CountrySales resume ventas de un producto dentro de un país.
type CountrySales struct {
	Country    string  `json:"pais"`
	Currency   string  `json:"moneda"`
	Sales      int     `json:"ventas"`
	TotalLocal float64 `json:"total_local"`
	TotalUSD   float64 `json:"total_usd"`
}

// SalesSummary es la respuesta de la consulta de ventas por producto.
type SalesSummary struct {
	Product    string         `json:"producto"`
	Sales      int            `json:"ventas"`
	TotalUSD   float64        `json:"total_usd"`
	ByCountry  []CountrySales `json:"por_pais"`
	SourceRows int            `json:"pedidos_leidos"`
}
