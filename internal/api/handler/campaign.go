package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func ListCampaigns(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaigns, err := service.List(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar campanhas")
			return
		}

		if campaigns == nil {
			campaigns = []*domain.Campaign{}
		}
		writeJSON(w, http.StatusOK, campaigns)
	}
}

func GetCampaign(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaignID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		campaign, err := service.Get(r.Context(), claims.UserID, campaignID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func CreateCampaign(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

func UpdateCampaignStatus(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaignStatus")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaignID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.UpdateStatus(r.Context(), claims.UserID, campaignID, req.Status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status da campanha")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func GetCampaignInsights(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaignID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		insight, err := service.GetInsights(r.Context(), claims.UserID, campaignID, r.URL.Query().Get("datePreset"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar insights da campanha")
			return
		}

		writeJSON(w, http.StatusOK, insight)
	}
}
