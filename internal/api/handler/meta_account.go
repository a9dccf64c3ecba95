package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

type availableAdAccountsRequest struct {
	AccessToken string `json:"accessToken"`
}

func ListMetaAccounts(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		accounts, err := service.List(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar contas da Meta")
			return
		}

		if accounts == nil {
			accounts = []*domain.MetaAccount{}
		}
		writeJSON(w, http.StatusOK, accounts)
	}
}

// ListAvailableAdAccounts lista as contas que o token do usuário enxerga,
// antes de qualquer conexão ser salva.
func ListAvailableAdAccounts(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		var req availableAdAccountsRequest
		if err := decodeBody(r, &req); err != nil || req.AccessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "accessToken é obrigatório", nil)
			return
		}

		accounts, err := service.ListAvailable(r.Context(), req.AccessToken)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar contas de anúncios")
			return
		}

		if accounts == nil {
			accounts = []domain.AdAccountInfo{}
		}
		writeJSON(w, http.StatusOK, accounts)
	}
}

func ConnectMetaAccount(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ConnectMetaAccount")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ConnectMetaAccountRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		account, err := service.Connect(r.Context(), claims.UserID, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao conectar conta da Meta")
			return
		}

		writeJSON(w, http.StatusCreated, account)
	}
}

func DisconnectMetaAccount(service connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DisconnectMetaAccount")

		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		accountID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		if err := service.Disconnect(r.Context(), claims.UserID, accountID); err != nil {
			writeServiceError(w, r, err, "Erro ao desconectar conta da Meta")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
