package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	metadomain "github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// insightFields son los campos pedidos a nivel anuncio. El campo de
// clics canónico es unique_inline_link_clicks.
const insightFields = "campaign_name,adset_name,ad_name,ad_id,campaign_id,adset_id,spend,impressions,reach,unique_inline_link_clicks"

// GetAdInsightsByAccountID trae todas las filas de insights a nivel
// anuncio de una cuenta, siguiendo la paginación hasta agotarla.
func (c *MetaClient) GetAdInsightsByAccountID(ctx context.Context, accountID, timeParamName, timeParamValue string) ([]metadomain.AdInsightRow, error) {
	params := url.Values{}
	params.Set("fields", insightFields)
	params.Set("level", "ad")
	params.Set("limit", "500")
	params.Set(timeParamName, timeParamValue)
	params.Set("access_token", c.cfg.Meta.AccessToken)

	nextURL := fmt.Sprintf("%s/act_%s/insights?%s", c.cfg.Meta.URL, accountID, params.Encode())

	var rows []metadomain.AdInsightRow
	pages := 0

	for nextURL != "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, nextURL, nil)
		if err != nil {
			return nil, errors.Wrap(err, "error al crear la solicitud de insights")
		}

		body, err := c.doRequest(ctx, req, "meta_insights")
		if err != nil {
			return nil, err
		}

		var page metadomain.InsightsResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, errors.Wrap(err, "error al decodificar la página de insights")
		}

		rows = append(rows, page.Data...)
		nextURL = page.Paging.Next
		pages++
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"filas":      len(rows),
		"paginas":    pages,
	}).Debug("Insights de anuncios descargados")

	return rows, nil
}

// GetAdInsightsByAdID consulta los insights de un solo anuncio.
// Devuelve nil sin error cuando el anuncio no tiene datos en el rango.
func (c *MetaClient) GetAdInsightsByAdID(ctx context.Context, adID, timeParamName, timeParamValue string) (*metadomain.AdInsightRow, error) {
	params := url.Values{}
	params.Set("fields", insightFields)
	params.Set(timeParamName, timeParamValue)
	params.Set("access_token", c.cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/%s/insights?%s", c.cfg.Meta.URL, adID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error al crear la solicitud de insights del anuncio")
	}

	body, err := c.doRequest(ctx, req, "meta_insights")
	if err != nil {
		return nil, err
	}

	var page metadomain.InsightsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, "error al decodificar los insights del anuncio")
	}

	if len(page.Data) == 0 {
		return nil, nil
	}

	return &page.Data[0], nil
}
