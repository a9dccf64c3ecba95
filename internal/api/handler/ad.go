package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func ListAds(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		ads, err := service.List(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar anúncios")
			return
		}

		if ads == nil {
			ads = []*domain.AdWithDetails{}
		}
		writeJSON(w, http.StatusOK, ads)
	}
}

// CreateAd grava o rascunho do anúncio. A publicação na Meta é uma chamada separada.
func CreateAd(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAd")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CreateAdRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Create(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar anúncio")
			return
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

func PublishAd(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PublishAd")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		adID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		var req domain.PublishAdRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.PageID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "pageId é obrigatório", nil)
			return
		}

		ad, err := service.Publish(r.Context(), claims.UserID, adID, req.PageID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao publicar anúncio")
			return
		}

		writeJSON(w, http.StatusOK, ad)
	}
}

func UpdateAdStatus(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAdStatus")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		adID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		ad, err := service.UpdateStatus(r.Context(), claims.UserID, adID, req.Status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status do anúncio")
			return
		}

		writeJSON(w, http.StatusOK, ad)
	}
}

func GetAdInsights(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		adID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		insight, err := service.GetInsights(r.Context(), claims.UserID, adID, r.URL.Query().Get("datePreset"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar insights do anúncio")
			return
		}

		writeJSON(w, http.StatusOK, insight)
	}
}
