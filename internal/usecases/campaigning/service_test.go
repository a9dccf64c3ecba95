package campaigning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/ads-manager-api/infrastructure/cache/mocks"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	submocks "github.com/vfg2006/ads-manager-api/internal/usecases/subscribing/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	campaigns    *mocks.MockCampaignRepository
	accounts     *mocks.MockMetaAccountRepository
	meta         *metamocks.MockIntegrator
	entitlements *submocks.MockSubscriber
	cache        *cachemocks.MockCache
}

func newTestService(t *testing.T) (Campaigner, *testDeps) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		campaigns:    mocks.NewMockCampaignRepository(ctrl),
		accounts:     mocks.NewMockMetaAccountRepository(ctrl),
		meta:         metamocks.NewMockIntegrator(ctrl),
		entitlements: submocks.NewMockSubscriber(ctrl),
		cache:        cachemocks.NewMockCache(ctrl),
	}
	svc := NewService(deps.campaigns, deps.accounts, deps.meta, deps.entitlements, deps.cache, 15*time.Minute)
	return svc, deps
}

func ptr[T any](v T) *T { return &v }

func ownedAccount() *domain.MetaAccount {
	return &domain.MetaAccount{ID: 3, UserID: 1, AccessToken: "tok", AdAccountID: "act_9", Active: true}
}

func TestCreateCampaign(t *testing.T) {
	req := domain.CreateCampaignRequest{MetaAccountID: 3, Name: "Black Friday", Objective: "outcome_traffic"}

	t.Run("cria pendente e sincroniza como pausada", func(t *testing.T) {
		svc, deps := newTestService(t)

		gomock.InOrder(
			deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(ownedAccount(), nil),
			deps.entitlements.EXPECT().CanCreateCampaign(gomock.Any(), 1).Return(nil),
			deps.campaigns.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
					assert.Equal(t, domain.SyncPending, c.SyncStatus)
					assert.Equal(t, "OUTCOME_TRAFFIC", c.Objective)
					c.ID = 10
					return c, nil
				}),
			deps.meta.EXPECT().CreateCampaign(gomock.Any(), "tok", "act_9", gomock.Any()).Return("120", nil),
			deps.campaigns.EXPECT().UpdateSync(gomock.Any(), 10, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int, upd domain.SyncUpdate) error {
					assert.Equal(t, "120", *upd.ExternalID)
					assert.Equal(t, domain.StatusPaused, *upd.Status)
					assert.Equal(t, domain.SyncSynced, upd.SyncStatus)
					return nil
				}),
		)

		campaign, err := svc.Create(context.Background(), 1, req)
		require.NoError(t, err)
		assert.Equal(t, "120", *campaign.MetaCampaignID)
		assert.Equal(t, domain.StatusPaused, campaign.Status)
	})

	t.Run("falha remota marca a linha como failed", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(ownedAccount(), nil)
		deps.entitlements.EXPECT().CanCreateCampaign(gomock.Any(), 1).Return(nil)
		deps.campaigns.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
				c.ID = 10
				return c, nil
			})
		deps.meta.EXPECT().CreateCampaign(gomock.Any(), "tok", "act_9", gomock.Any()).Return("", errors.New("objetivo inválido"))
		deps.campaigns.EXPECT().UpdateSync(gomock.Any(), 10, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, upd domain.SyncUpdate) error {
				assert.Equal(t, domain.SyncFailed, upd.SyncStatus)
				assert.Equal(t, "objetivo inválido", *upd.SyncError)
				assert.Nil(t, upd.ExternalID)
				return nil
			})

		_, err := svc.Create(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrMetaSync)
	})

	t.Run("conta Meta de outro usuário", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.MetaAccount{ID: 3, UserID: 2, Active: true}, nil)

		_, err := svc.Create(context.Background(), 1, req)
		assert.ErrorIs(t, err, ErrMetaAccountNotFound)
	})

	t.Run("limite do plano", func(t *testing.T) {
		svc, deps := newTestService(t)
		limitErr := errors.New("limite atingido")
		deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(ownedAccount(), nil)
		deps.entitlements.EXPECT().CanCreateCampaign(gomock.Any(), 1).Return(limitErr)

		_, err := svc.Create(context.Background(), 1, req)
		assert.ErrorIs(t, err, limitErr)
	})
}

func TestUpdateCampaignStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		remoteID  *string
		setupMeta func(m *metamocks.MockIntegrator)
		finalSync domain.SyncStatus
		expectErr error
	}{
		{
			name:     "deleted com id remoto apaga na Meta",
			status:   "deleted",
			remoteID: ptr("120"),
			setupMeta: func(m *metamocks.MockIntegrator) {
				m.EXPECT().DeleteCampaign(gomock.Any(), "tok", "120").Return(nil)
			},
			finalSync: domain.SyncSynced,
		},
		{
			name:      "deleted sem id remoto só altera a linha local",
			status:    "deleted",
			setupMeta: func(m *metamocks.MockIntegrator) {},
			finalSync: domain.SyncSynced,
		},
		{
			name:     "active envia ACTIVE",
			status:   "ACTIVE",
			remoteID: ptr("120"),
			setupMeta: func(m *metamocks.MockIntegrator) {
				m.EXPECT().UpdateCampaignStatus(gomock.Any(), "tok", "120", domain.StatusActive).Return(nil)
			},
			finalSync: domain.SyncSynced,
		},
		{
			name:     "erro da Meta marca failed",
			status:   "paused",
			remoteID: ptr("120"),
			setupMeta: func(m *metamocks.MockIntegrator) {
				m.EXPECT().UpdateCampaignStatus(gomock.Any(), "tok", "120", domain.StatusPaused).Return(errors.New("boom"))
			},
			finalSync: domain.SyncFailed,
			expectErr: ErrMetaSync,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)

			deps.campaigns.EXPECT().GetByID(gomock.Any(), 10).
				Return(&domain.Campaign{ID: 10, UserID: 1, MetaAccountID: 3, MetaCampaignID: tt.remoteID}, nil)
			deps.campaigns.EXPECT().UpdateSync(gomock.Any(), 10, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int, upd domain.SyncUpdate) error {
					assert.Equal(t, domain.SyncPending, upd.SyncStatus)
					require.NotNil(t, upd.Status)
					return nil
				})
			if tt.remoteID != nil {
				deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(ownedAccount(), nil)
			}
			tt.setupMeta(deps.meta)
			deps.campaigns.EXPECT().UpdateSync(gomock.Any(), 10, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int, upd domain.SyncUpdate) error {
					assert.Equal(t, tt.finalSync, upd.SyncStatus)
					return nil
				})

			campaign, err := svc.UpdateStatus(context.Background(), 1, 10, tt.status)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.finalSync, campaign.SyncStatus)
		})
	}

	t.Run("status fora do vocabulário", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.UpdateStatus(context.Background(), 1, 10, "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("campanha de outro usuário é tratada como inexistente", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.campaigns.EXPECT().GetByID(gomock.Any(), 10).Return(&domain.Campaign{ID: 10, UserID: 2}, nil)

		_, err := svc.UpdateStatus(context.Background(), 1, 10, "paused")
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("falha ao finalizar linha local não devolve campanha", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.campaigns.EXPECT().GetByID(gomock.Any(), 10).
			Return(&domain.Campaign{ID: 10, UserID: 1, MetaAccountID: 3}, nil)
		deps.campaigns.EXPECT().UpdateSync(gomock.Any(), 10, gomock.Any()).Return(nil)
		deps.campaigns.EXPECT().UpdateSync(gomock.Any(), 10, gomock.Any()).Return(errors.New("conexão perdida"))

		campaign, err := svc.UpdateStatus(context.Background(), 1, 10, "paused")
		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.Nil(t, campaign)
	})
}

func TestCampaignInsightsInvalidDatePreset(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetInsights(context.Background(), 1, 10, "last_90d")
	assert.ErrorIs(t, err, ErrInvalidDatePreset)
	assert.NotErrorIs(t, err, ErrInvalidStatus)
}

func TestCampaignInsightsUsesCache(t *testing.T) {
	svc, deps := newTestService(t)

	deps.campaigns.EXPECT().GetByID(gomock.Any(), 10).
		Return(&domain.Campaign{ID: 10, UserID: 1, MetaAccountID: 3, MetaCampaignID: ptr("120")}, nil).Times(2)

	deps.cache.EXPECT().Get(gomock.Any(), "insights:campaign:10:last_7d").Return(nil, false, nil)
	deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(ownedAccount(), nil)
	deps.meta.EXPECT().GetCampaignInsights(gomock.Any(), "tok", "120", domain.DatePresetLast7d).
		Return(&domain.AdInsight{Impressions: 1000, Clicks: 25}, nil)

	var stored []byte
	deps.cache.EXPECT().Set(gomock.Any(), "insights:campaign:10:last_7d", gomock.Any(), 15*time.Minute).
		DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			stored = value
			return nil
		})

	first, err := svc.GetInsights(context.Background(), 1, 10, "last_7d")
	require.NoError(t, err)
	assert.Equal(t, 1000, first.Impressions)

	deps.cache.EXPECT().Get(gomock.Any(), "insights:campaign:10:last_7d").DoAndReturn(
		func(context.Context, string) ([]byte, bool, error) { return stored, true, nil })

	second, err := svc.GetInsights(context.Background(), 1, 10, "last_7d")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
