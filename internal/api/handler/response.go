package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/copywriting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/subscribing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// currentUser devolve as claims do token ou escreve 401.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", map[string]any{name: raw})
		return 0, false
	}
	return id, true
}

// writeServiceError traduz os erros dos casos de uso para a resposta padronizada.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	code := codeFor(err)

	entry := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		entry.Error(fallback)
	} else {
		entry.Warn(fallback)
	}

	apiErrors.WriteError(w, code, messageFor(err, code, fallback), nil)
}

func codeFor(err error) string {
	var (
		authErr     *authenticating.AuthError
		subErr      *subscribing.SubscriptionError
		accountErr  *connecting.AccountError
		campaignErr *campaigning.CampaignError
		adErr       *advertising.AdError
		copyErr     *copywriting.CopyError
	)

	switch {
	case errors.As(err, &authErr):
		return authErr.Code
	case errors.As(err, &subErr):
		return subErr.Code
	case errors.As(err, &accountErr):
		return accountErr.Code
	case errors.As(err, &campaignErr):
		return campaignErr.Code
	case errors.As(err, &adErr):
		return adErr.Code
	case errors.As(err, &copyErr):
		return copyErr.Code
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		return apiErrors.ErrInvalidCredentials
	case errors.Is(err, advertising.ErrUnauthorized),
		errors.Is(err, campaigning.ErrCampaignNotFound),
		errors.Is(err, advertising.ErrAdNotFound):
		return apiErrors.ErrResourceNotFound
	case errors.Is(err, subscribing.ErrNoSubscription):
		return apiErrors.ErrNoSubscription
	case errors.Is(err, subscribing.ErrPlanLimitReached):
		return apiErrors.ErrPlanLimitReached
	}

	return apiErrors.ErrInternalServer
}

// Erros internos não vazam detalhes para o cliente. Falhas de provedor
// externo seguem com a mensagem original.
func messageFor(err error, code, fallback string) string {
	if code == apiErrors.ErrExternalService {
		return err.Error()
	}
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		return fallback
	}
	return err.Error()
}
