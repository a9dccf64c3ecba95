package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-manager-api/infrastructure/cache"
	"github.com/vfg2006/ads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/ads-manager-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/copywriting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/subscribing"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.SelfOrAdmin(userIDParam)},
		},
	}
}

func userIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func Subscriptions(service subscribing.Subscriber) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/plans",
			Method:  http.MethodGet,
			Handler: ListPlans(service),
		},
		{
			Path:    "/v1/subscription",
			Method:  http.MethodGet,
			Handler: GetSubscription(service),
		},
		{
			Path:    "/v1/subscription/can-use-ai",
			Method:  http.MethodGet,
			Handler: CanUseAI(service),
		},
		{
			Path:    "/v1/subscription/checkout",
			Method:  http.MethodPost,
			Handler: CreateCheckout(service),
		},
		{
			Path:    "/v1/subscription/cancel",
			Method:  http.MethodPost,
			Handler: CancelSubscription(service),
		},
		{
			Path:    "/v1/webhooks/billing",
			Method:  http.MethodPost,
			Handler: BillingWebhook(service),
		},
	}
}

func MetaAccounts(service connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta-accounts",
			Method:  http.MethodGet,
			Handler: ListMetaAccounts(service),
		},
		{
			Path:    "/v1/meta-accounts",
			Method:  http.MethodPost,
			Handler: ConnectMetaAccount(service),
		},
		{
			Path:    "/v1/meta-accounts/ad-accounts",
			Method:  http.MethodPost,
			Handler: ListAvailableAdAccounts(service),
		},
		{
			Path:    "/v1/meta-accounts/:id",
			Method:  http.MethodDelete,
			Handler: DisconnectMetaAccount(service),
		},
	}
}

// AI aplica o limite por minuto em todas as rotas de geração.
func AI(service copywriting.Copywriter, c cache.Cache, perMinute int) []router.Route {
	limited := middlewares{middleware.RateLimit(c, "ai", perMinute, time.Minute)}

	return []router.Route{
		{Path: "/v1/ai/title", Method: http.MethodPost, Handler: GenerateTitle(service), Middlewares: limited},
		{Path: "/v1/ai/description", Method: http.MethodPost, Handler: GenerateDescription(service), Middlewares: limited},
		{Path: "/v1/ai/cta", Method: http.MethodPost, Handler: GenerateCallToAction(service), Middlewares: limited},
		{Path: "/v1/ai/complete", Method: http.MethodPost, Handler: GenerateCompleteCopy(service), Middlewares: limited},
		{Path: "/v1/ai/variations", Method: http.MethodPost, Handler: GenerateVariations(service), Middlewares: limited},
		{Path: "/v1/ai/optimize", Method: http.MethodPost, Handler: OptimizeCopy(service), Middlewares: limited},
	}
}

func Campaigns(service campaigning.Campaigner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateCampaignStatus(service),
		},
		{
			Path:    "/v1/campaigns/:id/insights",
			Method:  http.MethodGet,
			Handler: GetCampaignInsights(service),
		},
	}
}

func Ads(service advertising.Advertiser) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/v1/ads",
			Method:  http.MethodPost,
			Handler: CreateAd(service),
		},
		{
			Path:    "/v1/ads/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateAdStatus(service),
		},
		{
			Path:    "/v1/ads/:id/publish",
			Method:  http.MethodPost,
			Handler: PublishAd(service),
		},
		{
			Path:    "/v1/ads/:id/insights",
			Method:  http.MethodGet,
			Handler: GetAdInsights(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
