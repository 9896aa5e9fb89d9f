package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	metadomain "github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
)

// CreateObject hace un POST de creación sobre un path de Graph
// ("act_123/campaigns", "act_123/adsets", ...) y devuelve el ID creado.
func (c *MetaClient) CreateObject(ctx context.Context, path string, params url.Values) (string, error) {
	params.Set("access_token", c.cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s", c.cfg.Meta.URL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(params.Encode()))
	if err != nil {
		return "", errors.Wrapf(err, "error al crear la solicitud para %s", path)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.doRequest(ctx, req, "meta_create")
	if err != nil {
		return "", err
	}

	var response metadomain.CreateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errors.Wrapf(err, "error al decodificar la respuesta de %s", path)
	}

	if response.ID == "" {
		return "", errors.Errorf("la creación en %s no devolvió ID", path)
	}

	return response.ID, nil
}

// GetPage valida que la página exista y sea accesible con el token.
func (c *MetaClient) GetPage(ctx context.Context, pageID string) (*metadomain.Page, error) {
	params := url.Values{}
	params.Set("fields", "id,name")
	params.Set("access_token", c.cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.cfg.Meta.URL, pageID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error al crear la solicitud de página")
	}

	body, err := c.doRequest(ctx, req, "meta_page")
	if err != nil {
		return nil, err
	}

	var page metadomain.Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, "error al decodificar la página")
	}

	return &page, nil
}
