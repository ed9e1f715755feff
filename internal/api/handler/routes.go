package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sajangez/sajangez-api/internal/api/handler/router"
	"github.com/sajangez/sajangez-api/internal/scheduler"
	"github.com/sajangez/sajangez-api/internal/usecases/authenticating"
	"github.com/sajangez/sajangez-api/internal/usecases/comparing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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
			Path:    "/v1/signup",
			Method:  http.MethodPost,
			Handler: Signup(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Stores(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/me/stores",
			Method:  http.MethodGet,
			Handler: ListStores(service),
		},
		{
			Path:    "/v1/me/stores",
			Method:  http.MethodPost,
			Handler: AddStore(service),
		},
		{
			Path:    "/v1/me/stores/:id",
			Method:  http.MethodPut,
			Handler: EditStore(service),
		},
		{
			Path:    "/v1/me/stores/:id/selected",
			Method:  http.MethodPut,
			Handler: SelectStore(service),
		},
	}
}

func Sales(deps ReportDependencies) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(deps),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: SaveSale(deps),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(deps),
		},
	}
}

func Report(deps ReportDependencies) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: GetReport(deps),
		},
	}
}

func Comparison(authService authenticating.Authenticator, compareService comparing.Service, deps ReportDependencies) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/comparison",
			Method:  http.MethodGet,
			Handler: GetComparison(authService, compareService, deps),
		},
		{
			Path:    "/v1/comparison/districts/toggle",
			Method:  http.MethodPost,
			Handler: ToggleComparisonDistrict(authService, compareService),
		},
		{
			Path:    "/v1/comparison/business-type",
			Method:  http.MethodPut,
			Handler: SetComparisonBusinessType(authService, compareService),
		},
		{
			Path:    "/v1/comparison/districts",
			Method:  http.MethodGet,
			Handler: ListDistricts(compareService),
		},
		{
			Path:    "/v1/comparison/business-types",
			Method:  http.MethodGet,
			Handler: ListBusinessTypes(compareService),
		},
	}
}

func Connectivity(probe *scheduler.ConnectivityProbeService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/connectivity/status",
			Method:  http.MethodGet,
			Handler: GetConnectivityStatus(probe),
		},
		{
			Path:    "/v1/connectivity/probe",
			Method:  http.MethodPost,
			Handler: TriggerConnectivityProbe(probe),
		},
	}
}
