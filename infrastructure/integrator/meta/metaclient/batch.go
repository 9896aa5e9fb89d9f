package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	metadomain "github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
)

// ExecuteBatch envía sub-solicitudes al endpoint batch de Graph en
// lotes del tamaño configurado. El resultado conserva el orden de las
// solicitudes; una sub-solicitud fallida llega con su código de error
// y no corta el lote.
func (c *MetaClient) ExecuteBatch(ctx context.Context, requests []metadomain.BatchRequest) ([]metadomain.BatchResponse, error) {
	batchSize := c.cfg.Meta.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	responses := make([]metadomain.BatchResponse, 0, len(requests))

	for start := 0; start < len(requests); start += batchSize {
		end := start + batchSize
		if end > len(requests) {
			end = len(requests)
		}

		chunk, err := c.executeChunk(ctx, requests[start:end])
		if err != nil {
			return nil, err
		}

		responses = append(responses, chunk...)
	}

	return responses, nil
}

func (c *MetaClient) executeChunk(ctx context.Context, chunk []metadomain.BatchRequest) ([]metadomain.BatchResponse, error) {
	payload, err := json.Marshal(chunk)
	if err != nil {
		return nil, errors.Wrap(err, "error al serializar el lote")
	}

	form := url.Values{}
	form.Set("access_token", c.cfg.Meta.AccessToken)
	form.Set("batch", string(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Meta.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "error al crear la solicitud de lote")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.doRequest(ctx, req, "meta_batch")
	if err != nil {
		return nil, err
	}

	var responses []metadomain.BatchResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, errors.Wrap(err, "error al decodificar la respuesta del lote")
	}

	return responses, nil
}
