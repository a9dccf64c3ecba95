package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	submocks "github.com/vfg2006/ads-manager-api/internal/usecases/subscribing/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string { return &s }

type reconcilerMocks struct {
	campaigns *mocks.MockCampaignRepository
	adSets    *mocks.MockAdSetRepository
	ads       *mocks.MockAdRepository
	accounts  *mocks.MockMetaAccountRepository
	meta      *metamocks.MockIntegrator
	subs      *submocks.MockSubscriber
}

func newTestReconciler(t *testing.T, now time.Time) (*SyncReconciler, *reconcilerMocks) {
	ctrl := gomock.NewController(t)
	m := &reconcilerMocks{
		campaigns: mocks.NewMockCampaignRepository(ctrl),
		adSets:    mocks.NewMockAdSetRepository(ctrl),
		ads:       mocks.NewMockAdRepository(ctrl),
		accounts:  mocks.NewMockMetaAccountRepository(ctrl),
		meta:      metamocks.NewMockIntegrator(ctrl),
		subs:      submocks.NewMockSubscriber(ctrl),
	}

	reconciler := &SyncReconciler{
		config: ReconciliationConfig{PendingTimeout: 15 * time.Minute, BatchSize: 50, Enabled: true},
		repos: SyncRepositories{
			Campaigns:    m.campaigns,
			AdSets:       m.adSets,
			Ads:          m.ads,
			MetaAccounts: m.accounts,
		},
		metaService:   m.meta,
		subscriptions: m.subs,
		now:           func() time.Time { return now },
	}

	return reconciler, m
}

func TestSyncReconciler_RunOnce(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	before := now.Add(-15 * time.Minute)
	account := &domain.MetaAccount{ID: 3, AccessToken: "tok", Active: true}

	r, m := newTestReconciler(t, now)

	// campanha 1: pendente sem id remoto vira failed
	// campanha 2: id remoto e status deleted é apagada de novo na Meta
	m.campaigns.EXPECT().ListPendingSync(gomock.Any(), before, 50).Return([]*domain.Campaign{
		{ID: 1, MetaAccountID: 3, Status: domain.StatusDraft, SyncStatus: domain.SyncPending},
		{ID: 2, MetaAccountID: 3, MetaCampaignID: stringPtr("120"), Status: domain.StatusDeleted, SyncStatus: domain.SyncFailed},
	}, nil)
	m.campaigns.EXPECT().UpdateSync(gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, upd domain.SyncUpdate) error {
			assert.Equal(t, domain.SyncFailed, upd.SyncStatus)
			assert.Equal(t, errExternalIDNeverArrived, *upd.SyncError)
			return nil
		})
	m.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(account, nil).AnyTimes()
	m.meta.EXPECT().DeleteCampaign(gomock.Any(), "tok", "120").Return(nil)
	m.campaigns.EXPECT().UpdateSync(gomock.Any(), 2, domain.SyncUpdate{SyncStatus: domain.SyncSynced}).Return(nil)

	// conjunto com id remoto recebe o status local de novo
	m.adSets.EXPECT().ListPendingSync(gomock.Any(), before, 50).Return([]*domain.AdSet{
		{ID: 7, CampaignID: 2, MetaAdSetID: stringPtr("230"), Status: domain.StatusActive},
	}, nil)
	m.campaigns.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Campaign{ID: 2, MetaAccountID: 3}, nil)
	m.meta.EXPECT().UpdateAdSetStatus(gomock.Any(), "tok", "230", domain.StatusActive).Return(nil)
	m.adSets.EXPECT().UpdateSync(gomock.Any(), 7, domain.SyncUpdate{SyncStatus: domain.SyncSynced}).Return(nil)

	// anúncio cuja Meta continua falhando permanece failed
	m.ads.EXPECT().ListPendingSync(gomock.Any(), before, 50).Return([]*domain.Ad{
		{ID: 11, MetaAdID: stringPtr("ad_1"), Status: domain.StatusPaused},
	}, nil)
	m.ads.EXPECT().GetWithDetails(gomock.Any(), 11).
		Return(&domain.AdWithDetails{Campaign: domain.Campaign{MetaAccountID: 3}}, nil)
	m.meta.EXPECT().UpdateAdStatus(gomock.Any(), "tok", "ad_1", domain.StatusPaused).Return(errors.New("rate limit"))
	m.ads.EXPECT().UpdateSync(gomock.Any(), 11, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, upd domain.SyncUpdate) error {
			assert.Equal(t, domain.SyncFailed, upd.SyncStatus)
			assert.Equal(t, "rate limit", *upd.SyncError)
			return nil
		})

	m.subs.EXPECT().ReconcilePending(gomock.Any(), 15*time.Minute, 50).Return(2, nil)

	result := r.RunOnce(context.Background())

	assert.Equal(t, ReconcileResult{Failed: 1, Repushed: 2, Errors: 1, Subscriptions: 2}, result)
}

func TestSyncReconciler_DraftIsPushedAsPaused(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	r, m := newTestReconciler(t, now)
	r.subscriptions = nil

	m.campaigns.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), 50).Return([]*domain.Campaign{
		{ID: 1, MetaAccountID: 3, MetaCampaignID: stringPtr("120"), Status: domain.StatusDraft},
	}, nil)
	m.accounts.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.MetaAccount{ID: 3, AccessToken: "tok"}, nil)
	m.meta.EXPECT().UpdateCampaignStatus(gomock.Any(), "tok", "120", domain.StatusPaused).Return(nil)
	m.campaigns.EXPECT().UpdateSync(gomock.Any(), 1, gomock.Any()).Return(nil)
	m.adSets.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), 50).Return(nil, nil)
	m.ads.EXPECT().ListPendingSync(gomock.Any(), gomock.Any(), 50).Return(nil, errors.New("db fora"))

	result := r.RunOnce(context.Background())

	assert.Equal(t, 1, result.Repushed)
	assert.Equal(t, 1, result.Errors)
}
