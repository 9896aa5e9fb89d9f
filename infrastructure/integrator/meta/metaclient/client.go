package metaclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	metadomain "github.com/jlunac/ads-revenue-api/infrastructure/integrator/meta/domain"
	"github.com/jlunac/ads-revenue-api/internal/config"
	"github.com/jlunac/ads-revenue-api/pkg/metrics"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client encapsula todas las llamadas a la API de Graph.
type Client interface {
	GetAdInsightsByAccountID(ctx context.Context, accountID, timeParamName, timeParamValue string) ([]metadomain.AdInsightRow, error)
	GetAdInsightsByAdID(ctx context.Context, adID, timeParamName, timeParamValue string) (*metadomain.AdInsightRow, error)
	ExecuteBatch(ctx context.Context, requests []metadomain.BatchRequest) ([]metadomain.BatchResponse, error)
	CreateObject(ctx context.Context, path string, params url.Values) (string, error)
	GetPage(ctx context.Context, pageID string) (*metadomain.Page, error)
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	rps := cfg.Meta.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		metrics: m,
	}
}

// doRequest ejecuta una solicitud respetando el límite de tasa y
// devuelve el cuerpo ya validado contra el sobre de error de Graph.
func (c *MetaClient) doRequest(ctx context.Context, req *http.Request, api string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "espera del limitador de tasa interrumpida")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordCall(api, "error", start)
		return nil, errors.Wrap(err, "error al ejecutar la solicitud a Graph")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordCall(api, "error", start)
		return nil, errors.Wrap(err, "error al leer la respuesta de Graph")
	}

	if resp.StatusCode != http.StatusOK {
		c.recordCall(api, "error", start)
		return nil, c.handleErrorBody(resp.StatusCode, body)
	}

	c.recordCall(api, "ok", start)
	return body, nil
}

// handleErrorBody extrae el mensaje del sobre {error:{...}} de Graph.
func (c *MetaClient) handleErrorBody(status int, body []byte) error {
	var envelope metadomain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		return errors.Errorf("la API de Graph respondió %d: %s", status, string(body))
	}

	if envelope.IsTokenExpired() {
		logrus.WithFields(logrus.Fields{
			"code":    envelope.Error.Code,
			"subcode": envelope.Error.ErrorSubcode,
		}).Error("El token de acceso de Meta está vencido")
	}

	return errors.Errorf("la API de Graph respondió %d: %s", status, envelope.Error.Message)
}

func (c *MetaClient) recordCall(api, status string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(api, status, time.Since(start))
	}
}
