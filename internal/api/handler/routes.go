package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func Healthcheck(dependencies map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies),
		},
	}
}

func Dashboard(service reporting.Reporter, authEnabled bool) []router.Route {
	ownerOnly := []func(http.Handler) http.Handler{middleware.OwnerOnly(authEnabled)}

	return []router.Route{
		{
			Path:        "/v1/dashboard/:people_id/profile",
			Method:      http.MethodGet,
			Handler:     GetProfile(service),
			Middlewares: ownerOnly,
		},
		{
			Path:        "/v1/dashboard/:people_id/sales",
			Method:      http.MethodGet,
			Handler:     GetSalesReport(service),
			Middlewares: ownerOnly,
		},
		{
			Path:        "/v1/dashboard/:people_id/orders",
			Method:      http.MethodGet,
			Handler:     GetOrderManagementReport(service),
			Middlewares: ownerOnly,
		},
		{
			Path:        "/v1/dashboard/:people_id/kpi",
			Method:      http.MethodGet,
			Handler:     GetKPIReport(service),
			Middlewares: ownerOnly,
		},
		{
			Path:        "/v1/dashboard/:people_id/goals",
			Method:      http.MethodPut,
			Handler:     SaveGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authEnabled)},
		},
	}
}

func Authentication(authenticator authenticating.Authenticator, authEnabled bool) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/:people_id/token",
			Method:      http.MethodPost,
			Handler:     GenerateEmbedToken(authenticator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authEnabled)},
		},
	}
}

func CronJobs(services CronJobServices, authEnabled bool) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authEnabled)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(authEnabled)},
		},
	}
}
