package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jlunac/ads-revenue-api/infrastructure/integrator/exchange"
	"github.com/jlunac/ads-revenue-api/internal/api/handler/router"
	"github.com/jlunac/ads-revenue-api/internal/scheduler"
	"github.com/jlunac/ads-revenue-api/internal/usecases/aggregating"
	"github.com/jlunac/ads-revenue-api/internal/usecases/authenticating"
	"github.com/jlunac/ads-revenue-api/internal/usecases/campaigning"
	"github.com/jlunac/ads-revenue-api/internal/usecases/reporting"
	"github.com/jlunac/ads-revenue-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/ads",
			Method:      http.MethodGet,
			Handler:     GetAdReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/ranges",
			Method:      http.MethodGet,
			Handler:     GetMultiRangeReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
		{
			Path:        "/v1/reports/products",
			Method:      http.MethodGet,
			Handler:     GetProductReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads/:id/spend",
			Method:      http.MethodGet,
			Handler:     GetAdSpend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/summary",
			Method:      http.MethodGet,
			Handler:     GetSalesSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Rates(service exchange.Exchanger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rates",
			Method:      http.MethodGet,
			Handler:     GetRates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaigning.Campaigner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/whatsapp",
			Method:      http.MethodPost,
			Handler:     CreateWhatsAppCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(service *scheduler.ReportSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/report-sync/run",
			Method:      http.MethodPost,
			Handler:     RunReportSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/report-sync/status",
			Method:      http.MethodGet,
			Handler:     GetReportSyncStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
