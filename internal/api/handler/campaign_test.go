package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/ads-manager-api/internal/usecases/subscribing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestCreateCampaign(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		errorCode    string
	}{
		{
			name:         "criada",
			expectedCode: http.StatusCreated,
		},
		{
			name:         "limite do plano",
			err:          subscribing.NewSubscriptionError(subscribing.ErrPlanLimitReached, apiErrors.ErrPlanLimitReached, 2, "3 de 3 campanhas"),
			expectedCode: http.StatusForbidden,
			errorCode:    apiErrors.ErrPlanLimitReached,
		},
		{
			name:         "erro na Meta",
			err:          campaigning.NewCampaignError(campaigning.ErrMetaSync, apiErrors.ErrExternalService, 7, "(#100) Invalid parameter"),
			expectedCode: http.StatusBadGateway,
			errorCode:    apiErrors.ErrExternalService,
		},
		{
			name:         "conta de outro usuário",
			err:          campaigning.NewCampaignError(campaigning.ErrMetaAccountNotFound, apiErrors.ErrResourceNotFound, 0, ""),
			expectedCode: http.StatusNotFound,
			errorCode:    apiErrors.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCampaigner(gomock.NewController(t))

			req := domain.CreateCampaignRequest{MetaAccountID: 4, Name: "Black Friday", Objective: "OUTCOME_TRAFFIC"}
			if tt.err != nil {
				svc.EXPECT().Create(gomock.Any(), 2, req).Return(nil, tt.err)
			} else {
				svc.EXPECT().Create(gomock.Any(), 2, req).
					Return(&domain.Campaign{ID: 7, UserID: 2, Name: "Black Friday", Status: domain.StatusPaused, SyncStatus: domain.SyncSynced}, nil)
			}

			rec := serve(Campaigns(svc), http.MethodPost, "/v1/campaigns",
				`{"metaAccountId":4,"name":"Black Friday","objective":"OUTCOME_TRAFFIC"}`, client)

			requireStatus(t, rec, tt.expectedCode)
			if tt.errorCode != "" {
				assert.Equal(t, tt.errorCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

// O erro da Meta chega ao cliente com a mensagem do provedor.
func TestCreateCampaign_ProviderMessage(t *testing.T) {
	svc := mocks.NewMockCampaigner(gomock.NewController(t))
	svc.EXPECT().Create(gomock.Any(), 2, gomock.Any()).
		Return(nil, campaigning.NewCampaignError(campaigning.ErrMetaSync, apiErrors.ErrExternalService, 7, "(#100) Invalid parameter"))

	rec := serve(Campaigns(svc), http.MethodPost, "/v1/campaigns", `{"metaAccountId":4,"name":"X","objective":"OUTCOME_TRAFFIC"}`, client)

	requireStatus(t, rec, http.StatusBadGateway)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)
	assert.Contains(t, apiErr.Message, "(#100) Invalid parameter")
}

func TestCreateCampaign_InternalErrorHidesDetails(t *testing.T) {
	svc := mocks.NewMockCampaigner(gomock.NewController(t))
	svc.EXPECT().Create(gomock.Any(), 2, gomock.Any()).
		Return(nil, errors.New("pq: relation \"campaigns\" does not exist"))

	rec := serve(Campaigns(svc), http.MethodPost, "/v1/campaigns", `{"metaAccountId":4,"name":"X","objective":"OUTCOME_TRAFFIC"}`, client)

	requireStatus(t, rec, http.StatusInternalServerError)
	assert.NotContains(t, decodeAPIError(t, rec).Message, "pq:")
}

func TestUpdateCampaignStatus(t *testing.T) {
	t.Run("status inválido", func(t *testing.T) {
		svc := mocks.NewMockCampaigner(gomock.NewController(t))
		svc.EXPECT().UpdateStatus(gomock.Any(), 2, 7, "archived").
			Return(nil, campaigning.NewCampaignError(campaigning.ErrInvalidStatus, apiErrors.ErrInvalidFormat, 7, "archived"))

		rec := serve(Campaigns(svc), http.MethodPut, "/v1/campaigns/7/status", `{"status":"archived"}`, client)

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("pausada", func(t *testing.T) {
		svc := mocks.NewMockCampaigner(gomock.NewController(t))
		svc.EXPECT().UpdateStatus(gomock.Any(), 2, 7, "paused").
			Return(&domain.Campaign{ID: 7, Status: domain.StatusPaused, SyncStatus: domain.SyncSynced}, nil)

		rec := serve(Campaigns(svc), http.MethodPut, "/v1/campaigns/7/status", `{"status":"paused"}`, client)

		requireStatus(t, rec, http.StatusOK)
	})
}

func TestGetCampaign_NotFound(t *testing.T) {
	svc := mocks.NewMockCampaigner(gomock.NewController(t))
	svc.EXPECT().Get(gomock.Any(), 2, 99).Return(nil, campaigning.ErrCampaignNotFound)

	rec := serve(Campaigns(svc), http.MethodGet, "/v1/campaigns/99", "", client)

	requireStatus(t, rec, http.StatusNotFound)
}
