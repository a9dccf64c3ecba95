package advertising

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

var fixedNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

type testDeps struct {
	ads          *mocks.MockAdRepository
	adSets       *mocks.MockAdSetRepository
	campaigns    *mocks.MockCampaignRepository
	creatives    *mocks.MockCreativeRepository
	metrics      *mocks.MockAdMetricRepository
	accounts     *mocks.MockMetaAccountRepository
	meta         *metamocks.MockIntegrator
	entitlements *submocks.MockSubscriber
	cache        *cachemocks.MockCache
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		ads:          mocks.NewMockAdRepository(ctrl),
		adSets:       mocks.NewMockAdSetRepository(ctrl),
		campaigns:    mocks.NewMockCampaignRepository(ctrl),
		creatives:    mocks.NewMockCreativeRepository(ctrl),
		metrics:      mocks.NewMockAdMetricRepository(ctrl),
		accounts:     mocks.NewMockMetaAccountRepository(ctrl),
		meta:         metamocks.NewMockIntegrator(ctrl),
		entitlements: submocks.NewMockSubscriber(ctrl),
		cache:        cachemocks.NewMockCache(ctrl),
	}

	svc := NewService(Repositories{
		Ads:          deps.ads,
		AdSets:       deps.adSets,
		Campaigns:    deps.campaigns,
		Creatives:    deps.creatives,
		Metrics:      deps.metrics,
		MetaAccounts: deps.accounts,
	}, deps.meta, deps.entitlements, deps.cache, 15*time.Minute)
	svc.now = func() time.Time { return fixedNow }

	return svc, deps
}

func ptr[T any](v T) *T { return &v }

func account() *domain.MetaAccount {
	return &domain.MetaAccount{ID: 3, UserID: 1, AccessToken: "tok", AdAccountID: "act_9", Active: true}
}

func createRequest() domain.CreateAdRequest {
	return domain.CreateAdRequest{
		CampaignID:   5,
		Name:         "Óculos",
		Title:        "Óculos de sol",
		Body:         "Proteção UV400 com estilo",
		CallToAction: "shop_now",
		LinkURL:      "https://loja.example/oculos",
		DailyBudget:  ptr(2000),
		Targeting:    &domain.Targeting{AgeMin: ptr(18)},
	}
}

func TestCreateAd_CampaignOfAnotherUser(t *testing.T) {
	svc, deps := newTestService(t)

	// campanha 5 pertence ao usuário 1; nenhuma outra dependência pode ser chamada
	deps.campaigns.EXPECT().GetByID(gomock.Any(), 5).
		Return(&domain.Campaign{ID: 5, UserID: 1, MetaAccountID: 3, MetaCampaignID: ptr("120")}, nil)

	_, err := svc.Create(context.Background(), 2, createRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "unauthorized", ErrUnauthorized.Error())
}

func TestCreateAd(t *testing.T) {
	t.Run("cria conjunto na Meta e anúncio como rascunho", func(t *testing.T) {
		svc, deps := newTestService(t)

		gomock.InOrder(
			deps.campaigns.EXPECT().GetByID(gomock.Any(), 5).
				Return(&domain.Campaign{ID: 5, UserID: 1, MetaAccountID: 3, MetaCampaignID: ptr("120")}, nil),
			deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(account(), nil),
			deps.entitlements.EXPECT().CanCreateAd(gomock.Any(), 1, 5).Return(nil),
			deps.adSets.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s *domain.AdSet) (*domain.AdSet, error) {
					assert.Equal(t, domain.SyncPending, s.SyncStatus)
					assert.JSONEq(t, `{"age_min":18}`, *s.Targeting)
					s.ID = 7
					return s, nil
				}),
			deps.meta.EXPECT().CreateAdSet(gomock.Any(), "tok", "act_9", "120", gomock.Any()).Return("230", nil),
			deps.adSets.EXPECT().UpdateSync(gomock.Any(), 7, domain.SyncUpdate{ExternalID: ptr("230"), SyncStatus: domain.SyncSynced}).Return(nil),
			deps.ads.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c *domain.Creative, a *domain.Ad) (*domain.Ad, error) {
					assert.Equal(t, "SHOP_NOW", c.CallToAction)
					assert.Equal(t, domain.StatusDraft, a.Status)
					assert.Equal(t, 7, a.AdSetID)
					a.ID = 11
					a.CreativeID = 9
					return a, nil
				}),
		)

		resp, err := svc.Create(context.Background(), 1, createRequest())
		require.NoError(t, err)
		assert.Equal(t, &domain.CreateAdResponse{AdID: 11, AdSetID: 7, CreativeID: 9}, resp)
	})

	t.Run("falha no conjunto remoto aborta sem criar anúncio", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.campaigns.EXPECT().GetByID(gomock.Any(), 5).
			Return(&domain.Campaign{ID: 5, UserID: 1, MetaAccountID: 3, MetaCampaignID: ptr("120")}, nil)
		deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(account(), nil)
		deps.entitlements.EXPECT().CanCreateAd(gomock.Any(), 1, 5).Return(nil)
		deps.adSets.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.AdSet) (*domain.AdSet, error) {
				s.ID = 7
				return s, nil
			})
		deps.meta.EXPECT().CreateAdSet(gomock.Any(), "tok", "act_9", "120", gomock.Any()).Return("", errors.New("orçamento baixo"))
		deps.adSets.EXPECT().UpdateSync(gomock.Any(), 7, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, upd domain.SyncUpdate) error {
				assert.Equal(t, domain.SyncFailed, upd.SyncStatus)
				return nil
			})

		_, err := svc.Create(context.Background(), 1, createRequest())
		assert.ErrorIs(t, err, ErrMetaSync)
	})

	t.Run("campanha sem id remoto", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.campaigns.EXPECT().GetByID(gomock.Any(), 5).Return(&domain.Campaign{ID: 5, UserID: 1}, nil)

		_, err := svc.Create(context.Background(), 1, createRequest())
		assert.ErrorIs(t, err, ErrCampaignNotSynced)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Create(context.Background(), 1, domain.CreateAdRequest{CampaignID: 5})

		var adErr *AdError
		require.ErrorAs(t, err, &adErr)
		assert.Equal(t, "name, title, body, linkUrl", adErr.Details)
	})
}

func draftDetails() *domain.AdWithDetails {
	return &domain.AdWithDetails{
		Ad:       domain.Ad{ID: 11, AdSetID: 7, CreativeID: 9, Name: "Óculos", Status: domain.StatusDraft},
		AdSet:    domain.AdSet{ID: 7, MetaAdSetID: ptr("230")},
		Campaign: domain.Campaign{ID: 5, UserID: 1, MetaAccountID: 3},
		Creative: domain.Creative{ID: 9, Title: "Óculos de sol", Body: "UV400"},
	}
}

func TestPublishAd(t *testing.T) {
	t.Run("cria criativo e anúncio pausado", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.ads.EXPECT().GetWithDetails(gomock.Any(), 11).Return(draftDetails(), nil)
		deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(account(), nil)
		deps.meta.EXPECT().CreateCreative(gomock.Any(), "tok", "act_9", "page_1", gomock.Any()).Return("cr_1", nil)
		deps.creatives.EXPECT().SetMetaCreativeID(gomock.Any(), 9, "cr_1").Return(nil)
		deps.meta.EXPECT().CreateAd(gomock.Any(), "tok", "act_9", "230", "cr_1", gomock.Any()).Return("ad_1", nil)
		deps.ads.EXPECT().UpdateSync(gomock.Any(), 11, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, upd domain.SyncUpdate) error {
				assert.Equal(t, "ad_1", *upd.ExternalID)
				assert.Equal(t, domain.StatusPaused, *upd.Status)
				return nil
			})

		ad, err := svc.Publish(context.Background(), 1, 11, "page_1")
		require.NoError(t, err)
		assert.Equal(t, "ad_1", *ad.MetaAdID)
		assert.Equal(t, domain.StatusPaused, ad.Status)
	})

	t.Run("reaproveita criativo já enviado", func(t *testing.T) {
		svc, deps := newTestService(t)
		details := draftDetails()
		details.Creative.MetaCreativeID = ptr("cr_old")

		deps.ads.EXPECT().GetWithDetails(gomock.Any(), 11).Return(details, nil)
		deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(account(), nil)
		deps.meta.EXPECT().CreateAd(gomock.Any(), "tok", "act_9", "230", "cr_old", gomock.Any()).Return("ad_1", nil)
		deps.ads.EXPECT().UpdateSync(gomock.Any(), 11, gomock.Any()).Return(nil)

		_, err := svc.Publish(context.Background(), 1, 11, "page_1")
		require.NoError(t, err)
	})

	t.Run("anúncio já publicado", func(t *testing.T) {
		svc, deps := newTestService(t)
		details := draftDetails()
		details.Ad.MetaAdID = ptr("ad_1")
		deps.ads.EXPECT().GetWithDetails(gomock.Any(), 11).Return(details, nil)

		_, err := svc.Publish(context.Background(), 1, 11, "page_1")
		assert.ErrorIs(t, err, ErrAlreadyPublished)
	})
}

func TestUpdateAdStatus(t *testing.T) {
	t.Run("deleted com id remoto chama DeleteAd", func(t *testing.T) {
		svc, deps := newTestService(t)
		details := draftDetails()
		details.Ad.MetaAdID = ptr("ad_1")

		deps.ads.EXPECT().GetWithDetails(gomock.Any(), 11).Return(details, nil)
		deps.ads.EXPECT().UpdateSync(gomock.Any(), 11, domain.SyncUpdate{Status: ptr(domain.StatusDeleted), SyncStatus: domain.SyncPending}).Return(nil)
		deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(account(), nil)
		deps.meta.EXPECT().DeleteAd(gomock.Any(), "tok", "ad_1").Return(nil)
		deps.ads.EXPECT().UpdateSync(gomock.Any(), 11, domain.SyncUpdate{SyncStatus: domain.SyncSynced}).Return(nil)

		ad, err := svc.UpdateStatus(context.Background(), 1, 11, "deleted")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDeleted, ad.Status)
	})

	t.Run("deleted sem id remoto não chama a Meta", func(t *testing.T) {
		svc, deps := newTestService(t)

		deps.ads.EXPECT().GetWithDetails(gomock.Any(), 11).Return(draftDetails(), nil)
		deps.ads.EXPECT().UpdateSync(gomock.Any(), 11, gomock.Any()).Return(nil).Times(2)

		_, err := svc.UpdateStatus(context.Background(), 1, 11, "deleted")
		require.NoError(t, err)
	})

	t.Run("anúncio de outro usuário", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.ads.EXPECT().GetWithDetails(gomock.Any(), 11).Return(draftDetails(), nil)

		_, err := svc.UpdateStatus(context.Background(), 2, 11, "paused")
		assert.ErrorIs(t, err, ErrAdNotFound)
	})
}

func TestGetAdInsights(t *testing.T) {
	svc, deps := newTestService(t)
	details := draftDetails()
	details.Ad.MetaAdID = ptr("ad_1")

	deps.ads.EXPECT().GetWithDetails(gomock.Any(), 11).Return(details, nil)
	deps.cache.EXPECT().Get(gomock.Any(), "insights:ad:11:today").Return(nil, false, nil)
	deps.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(account(), nil)
	deps.meta.EXPECT().GetAdInsights(gomock.Any(), "tok", "ad_1", domain.DatePresetToday).
		Return(&domain.AdInsight{Impressions: 500, Clicks: 10, Spend: 1250}, nil)
	deps.cache.EXPECT().Set(gomock.Any(), "insights:ad:11:today", gomock.Any(), 15*time.Minute).Return(nil)
	deps.metrics.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *domain.AdMetric) error {
			assert.Equal(t, 11, m.AdID)
			assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), m.Date)
			assert.Equal(t, 1250, m.Spend)
			return nil
		})

	insight, err := svc.GetInsights(context.Background(), 1, 11, "today")
	require.NoError(t, err)
	assert.Equal(t, 500, insight.Impressions)
}

func TestMetricFromInsight_UsesDateStop(t *testing.T) {
	metric := MetricFromInsight(4, &domain.AdInsight{Clicks: 3, DateStop: "2025-06-09"}, fixedNow)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), metric.Date)
	assert.Equal(t, 3, metric.Clicks)
}
