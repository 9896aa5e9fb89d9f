package ventasclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	ventasdomain "github.com/jlunac/ads-revenue-api/infrastructure/integrator/ventasbot/domain"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/pkg/errors"
)

// Client descarga los feeds JSON que publica el bot de ventas por
// cada fuente configurada.
type Client interface {
	FetchOrders(ctx context.Context, source config.SalesSource) ([]ventasdomain.OrderRow, error)
	FetchMessages(ctx context.Context, source config.SalesSource) ([]ventasdomain.MessageRow, error)
}

type VentasClient struct {
	httpClient *http.Client
}

func NewClient() Client {
	return &VentasClient{
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
	}
}

func (c *VentasClient) FetchOrders(ctx context.Context, source config.SalesSource) ([]ventasdomain.OrderRow, error) {
	var rows []ventasdomain.OrderRow
	if err := c.fetch(ctx, source, source.OrdersURL, &rows); err != nil {
		return nil, errors.Wrapf(err, "fuente %s: pedidos", source.Name)
	}
	return rows, nil
}

func (c *VentasClient) FetchMessages(ctx context.Context, source config.SalesSource) ([]ventasdomain.MessageRow, error) {
	var rows []ventasdomain.MessageRow
	if err := c.fetch(ctx, source, source.MessagesURL, &rows); err != nil {
		return nil, errors.Wrapf(err, "fuente %s: mensajes", source.Name)
	}
	return rows, nil
}

func (c *VentasClient) fetch(ctx context.Context, source config.SalesSource, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "error al crear la solicitud")
	}

	if source.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+source.AccessToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "error al ejecutar la solicitud")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("la solicitud falló con estado: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "error al decodificar la respuesta")
	}

	return nil
}
