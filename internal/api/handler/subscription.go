package handler

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/subscribing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// webhooks maiores que isso não vêm do provedor
const maxWebhookBody = 1 << 20

func ListPlans(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plans, err := service.GetPlans(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar planos")
			return
		}

		if plans == nil {
			plans = []*domain.SubscriptionPlan{}
		}
		writeJSON(w, http.StatusOK, plans)
	}
}

// GetSubscription devolve null quando o usuário nunca assinou.
func GetSubscription(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		current, err := service.GetCurrent(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar assinatura")
			return
		}

		writeJSON(w, http.StatusOK, current)
	}
}

func CanUseAI(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		resp, err := service.CanUseAI(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao verificar uso de IA")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func CreateCheckout(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCheckout")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CheckoutRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.PlanID <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "planId é obrigatório", nil)
			return
		}
		req.Origin = r.Header.Get("Origin")

		resp, err := service.CreateCheckout(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar checkout")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func CancelSubscription(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CancelSubscription")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		sub, err := service.Cancel(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao cancelar assinatura")
			return
		}

		writeJSON(w, http.StatusOK, sub)
	}
}

// BillingWebhook responde 200 para todo evento aceito, inclusive os ignorados.
func BillingWebhook(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo do webhook", nil)
			return
		}

		if err := service.HandleWebhook(r.Context(), payload, r.Header); err != nil {
			writeServiceError(w, r, err, "Erro ao processar webhook")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	}
}
