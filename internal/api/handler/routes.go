package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/finance-pilot-api/internal/api/handler/router"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/pilot"
	"github.com/vfg2006/finance-pilot-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Pilot(service pilot.PilotService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pilot/today",
			Method:      http.MethodGet,
			Handler:     GetTodayRecommendation(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pilot/days/:date",
			Method:      http.MethodGet,
			Handler:     GetRecommendationByDate(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pilot/history",
			Method:      http.MethodGet,
			Handler:     ListRecommendationHistory(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pilot/checkins/:date",
			Method:      http.MethodPut,
			Handler:     SaveEmotionalCheckin(service),
			Middlewares: []alice.Constructor{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/jobs/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
	}
}
