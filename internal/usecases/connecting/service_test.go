package connecting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Connector, *mocks.MockMetaAccountRepository, *metamocks.MockIntegrator) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMetaAccountRepository(ctrl)
	integrator := metamocks.NewMockIntegrator(ctrl)
	return NewService(repo, integrator), repo, integrator
}

func TestConnect(t *testing.T) {
	expiresAt := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	req := domain.ConnectMetaAccountRequest{AccessToken: "curto", AdAccountID: "act_123"}

	tests := []struct {
		name        string
		req         domain.ConnectMetaAccountRequest
		setup       func(repo *mocks.MockMetaAccountRepository, integrator *metamocks.MockIntegrator)
		expectedErr error
		validate    func(t *testing.T, account *domain.MetaAccount)
	}{
		{
			name: "troca pelo token de longa duração",
			req:  req,
			setup: func(repo *mocks.MockMetaAccountRepository, integrator *metamocks.MockIntegrator) {
				integrator.EXPECT().GetAdAccount(gomock.Any(), "curto", "act_123").
					Return(&domain.AdAccountInfo{ID: "act_123", Name: "Loja"}, nil)
				integrator.EXPECT().ExchangeToken(gomock.Any(), "curto").
					Return(&domain.LongLivedToken{AccessToken: "longo", ExpiresAt: &expiresAt}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.MetaAccount) (*domain.MetaAccount, error) {
						a.ID = 4
						return a, nil
					})
			},
			validate: func(t *testing.T, account *domain.MetaAccount) {
				assert.Equal(t, 4, account.ID)
				assert.Equal(t, "longo", account.AccessToken)
				assert.Equal(t, expiresAt, *account.TokenExpiresAt)
				assert.Equal(t, "Loja", *account.AdAccountName)
				assert.True(t, account.Active)
			},
		},
		{
			name: "sem app configurado guarda o token original",
			req:  req,
			setup: func(repo *mocks.MockMetaAccountRepository, integrator *metamocks.MockIntegrator) {
				integrator.EXPECT().GetAdAccount(gomock.Any(), "curto", "act_123").
					Return(&domain.AdAccountInfo{ID: "act_123"}, nil)
				integrator.EXPECT().ExchangeToken(gomock.Any(), "curto").
					Return(nil, metaclient.ErrTokenExchangeNotConfigured)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.MetaAccount) (*domain.MetaAccount, error) {
						return a, nil
					})
			},
			validate: func(t *testing.T, account *domain.MetaAccount) {
				assert.Equal(t, "curto", account.AccessToken)
				assert.Nil(t, account.TokenExpiresAt)
			},
		},
		{
			name: "token expirado",
			req:  req,
			setup: func(repo *mocks.MockMetaAccountRepository, integrator *metamocks.MockIntegrator) {
				integrator.EXPECT().GetAdAccount(gomock.Any(), "curto", "act_123").
					Return(nil, &metadomain.APIError{StatusCode: 400, Details: metadomain.ErrorDetails{Code: 190}})
			},
			expectedErr: ErrInvalidMetaToken,
		},
		{
			name: "erro genérico da Meta",
			req:  req,
			setup: func(repo *mocks.MockMetaAccountRepository, integrator *metamocks.MockIntegrator) {
				integrator.EXPECT().GetAdAccount(gomock.Any(), "curto", "act_123").
					Return(nil, errors.New("timeout"))
			},
			expectedErr: ErrMetaIntegration,
		},
		{
			name:        "dados ausentes",
			req:         domain.ConnectMetaAccountRequest{AccessToken: " "},
			setup:       func(repo *mocks.MockMetaAccountRepository, integrator *metamocks.MockIntegrator) {},
			expectedErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, integrator := newTestService(t)
			tt.setup(repo, integrator)

			account, err := svc.Connect(context.Background(), 1, tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, account)
		})
	}
}

func TestDisconnect(t *testing.T) {
	t.Run("desconectar duas vezes mantém active=0 sem erro", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().GetByID(gomock.Any(), 4).Return(&domain.MetaAccount{ID: 4, UserID: 1, Active: true}, nil)
		repo.EXPECT().GetByID(gomock.Any(), 4).Return(&domain.MetaAccount{ID: 4, UserID: 1, Active: false}, nil)
		repo.EXPECT().SetActive(gomock.Any(), 4, false).Return(nil).Times(2)

		require.NoError(t, svc.Disconnect(context.Background(), 1, 4))
		require.NoError(t, svc.Disconnect(context.Background(), 1, 4))
	})

	t.Run("conta de outro usuário é tratada como inexistente", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetByID(gomock.Any(), 4).Return(&domain.MetaAccount{ID: 4, UserID: 2}, nil)

		err := svc.Disconnect(context.Background(), 1, 4)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("conta inexistente", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetByID(gomock.Any(), 4).Return(nil, nil)

		err := svc.Disconnect(context.Background(), 1, 4)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestListAvailable(t *testing.T) {
	svc, _, integrator := newTestService(t)
	integrator.EXPECT().ListAdAccounts(gomock.Any(), "tok").
		Return([]domain.AdAccountInfo{{ID: "act_1", Name: "A"}, {ID: "act_2", Name: "B"}}, nil)

	accounts, err := svc.ListAvailable(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	_, err = svc.ListAvailable(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
