package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func publishedAd(id, accountID int, metaAdID string) *domain.AdWithDetails {
	return &domain.AdWithDetails{
		Ad:       domain.Ad{ID: id, MetaAdID: stringPtr(metaAdID)},
		Campaign: domain.Campaign{MetaAccountID: accountID},
	}
}

func TestAdMetricsSyncService_processAds(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	mockMetricRepo := mocks.NewMockAdMetricRepository(ctrl)
	mockAccountRepo := mocks.NewMockMetaAccountRepository(ctrl)
	mockMeta := metamocks.NewMockIntegrator(ctrl)

	now := time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)
	var sleeps int32

	service := &AdMetricsSyncService{
		config:          AdMetricsSyncConfig{MaxConcurrentJobs: 2, RequestDelaySeconds: 2},
		adRepo:          mockAdRepo,
		metricRepo:      mockMetricRepo,
		metaAccountRepo: mockAccountRepo,
		metaService:     mockMeta,
		now:             func() time.Time { return now },
		sleep: func(d time.Duration) {
			assert.Equal(t, 2*time.Second, d)
			atomic.AddInt32(&sleeps, 1)
		},
	}

	ads := []*domain.AdWithDetails{
		publishedAd(1, 3, "ad_1"),
		publishedAd(2, 3, "ad_2"),
		publishedAd(3, 3, "ad_3"),
		publishedAd(4, 8, "ad_4"),
	}

	// a conta é buscada uma vez por conta, não por anúncio
	mockAccountRepo.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.MetaAccount{ID: 3, AccessToken: "tok", Active: true}, nil).Times(1)
	mockAccountRepo.EXPECT().GetByID(gomock.Any(), 8).Return(&domain.MetaAccount{ID: 8, Active: false}, nil).Times(1)

	mockMeta.EXPECT().GetAdInsights(gomock.Any(), "tok", "ad_1", domain.DatePresetYesterday).
		Return(&domain.AdInsight{Impressions: 100, DateStop: "2025-06-09"}, nil)
	mockMeta.EXPECT().GetAdInsights(gomock.Any(), "tok", "ad_2", domain.DatePresetYesterday).
		Return(&domain.AdInsight{}, nil)
	mockMeta.EXPECT().GetAdInsights(gomock.Any(), "tok", "ad_3", domain.DatePresetYesterday).
		Return(nil, errors.New("token expirado"))

	mockMetricRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *domain.AdMetric) error {
			assert.Equal(t, 1, m.AdID)
			assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), m.Date)
			assert.Equal(t, 100, m.Impressions)
			return nil
		})

	saved := service.processAds(context.Background(), ads)

	assert.Equal(t, 1, saved)
	assert.Equal(t, int32(3), atomic.LoadInt32(&sleeps))
}

func TestAdMetricsSyncService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdRepo := mocks.NewMockAdRepository(ctrl)

	service := &AdMetricsSyncService{adRepo: mockAdRepo, now: time.Now, syncRunning: true}

	// nenhuma chamada ao repositório com outra execução em andamento
	service.syncAllAdMetrics(context.Background())

	assert.True(t, service.syncRunning)
}

func TestAdMetricsSyncService_GetStatusDuringSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdRepo := mocks.NewMockAdRepository(ctrl)

	started := time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)
	service := &AdMetricsSyncService{adRepo: mockAdRepo, now: func() time.Time { return started }}

	listing := make(chan struct{})
	release := make(chan struct{})
	mockAdRepo.EXPECT().ListSyncable(gomock.Any()).DoAndReturn(func(context.Context) ([]*domain.AdWithDetails, error) {
		close(listing)
		<-release
		return nil, nil
	})

	done := make(chan struct{})
	go func() {
		service.syncAllAdMetrics(context.Background())
		close(done)
	}()

	<-listing
	status := service.GetStatus()
	assert.Equal(t, true, status["running"])
	assert.Equal(t, started, status["last_sync_started_at"])

	close(release)
	<-done

	assert.Equal(t, false, service.GetStatus()["running"])
}
