package exchangeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/pkg/errors"
)

// Client consulta las dos APIs públicas de tipo de cambio: la tabla
// vigente y la histórica por fecha. Ambas devuelven unidades de
// moneda local por USD.
type Client interface {
	FetchLatest(ctx context.Context) (map[string]float64, error)
	FetchHistorical(ctx context.Context, date time.Time, currency string) (float64, error)
}

type ExchangeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ExchangeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *ExchangeClient) FetchLatest(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Exchange.LatestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error al crear la solicitud de tipos de cambio")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error al consultar la tabla de tipos de cambio")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la consulta de tipos de cambio falló con estado: %s", resp.Status)
	}

	var response latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "error al decodificar la tabla de tipos de cambio")
	}

	if len(response.Rates) == 0 {
		return nil, errors.New("la tabla de tipos de cambio llegó vacía")
	}

	return response.Rates, nil
}

type historicalResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c *ExchangeClient) FetchHistorical(ctx context.Context, date time.Time, currency string) (float64, error) {
	endpoint, err := url.Parse(c.config.Exchange.HistoricalURL)
	if err != nil {
		return 0, errors.Wrap(err, "error al analizar la URL del servicio histórico")
	}
	endpoint.Path = endpoint.Path + "/" + date.Format(time.DateOnly)

	query := endpoint.Query()
	query.Set("from", "USD")
	query.Set("to", currency)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return 0, errors.Wrap(err, "error al crear la solicitud histórica")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "error al consultar el tipo de cambio histórico")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("la consulta histórica falló con estado: %s", resp.Status)
	}

	var response historicalResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, errors.Wrap(err, "error al decodificar la respuesta histórica")
	}

	rate, ok := response.Rates[currency]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("el servicio histórico no devolvió tasa para %s", currency)
	}

	return rate, nil
}
