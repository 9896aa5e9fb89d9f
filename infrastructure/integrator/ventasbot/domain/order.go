package ventasdomain

// OrderRow es un pedido crudo tal como lo exporta el bot de ventas.
type OrderRow struct {
	Fecha    string  `json:"fecha"`
	Pais     string  `json:"pais"`
	Producto string  `json:"producto"`
	Anuncio  string  `json:"anuncio"`
	Precio   float64 `json:"precio"`
}

// MessageRow es un primer mensaje crudo del bot de ventas.
type MessageRow struct {
	Fecha   string `json:"fecha"`
	Pais    string `json:"pais"`
	Anuncio string `json:"anuncio"`
}
