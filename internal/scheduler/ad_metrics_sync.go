package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/advertising"
)

// AdMetricsSyncConfig representa a configuração do agendador de métricas de anúncios
type AdMetricsSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AdMetricsSyncService grava diariamente o retrato de ontem de cada anúncio publicado
type AdMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdMetricsSyncConfig
	adRepo              repository.AdRepository
	metricRepo          repository.AdMetricRepository
	metaAccountRepo     repository.MetaAccountRepository
	metaService         meta.Integrator
	now                 func() time.Time
	sleep               func(time.Duration)
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAdMetricsSyncService cria uma nova instância do serviço de sincronização de métricas
func NewAdMetricsSyncService(
	adRepo repository.AdRepository,
	metricRepo repository.AdMetricRepository,
	metaAccountRepo repository.MetaAccountRepository,
	metaService meta.Integrator,
	appConfig *config.Config,
) *AdMetricsSyncService {
	syncConfig := AdMetricsSyncConfig{
		CronSchedule:        appConfig.AdMetricsSync.CronSchedule,
		RequestDelaySeconds: appConfig.AdMetricsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AdMetricsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AdMetricsSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas de anúncios carregada")

	return &AdMetricsSyncService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          syncConfig,
		adRepo:          adRepo,
		metricRepo:      metricRepo,
		metaAccountRepo: metaAccountRepo,
		metaService:     metaService,
		now:             time.Now,
		sleep:           time.Sleep,
	}
}

// Start inicia o agendador
func (s *AdMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAdMetrics(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AdMetricsSyncService) syncAllAdMetrics(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas de anúncios já em andamento, ignorando")
		return
	}
	startTime := s.now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ads, err := s.adRepo.ListSyncable(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar anúncios para sincronização de métricas")
		return
	}

	if len(ads) == 0 {
		logrus.Info("Nenhum anúncio publicado encontrado para sincronização de métricas")
		return
	}

	saved := s.processAds(ctx, ads)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"ads":      len(ads),
		"saved":    saved,
	}).Info("Sincronização de métricas de anúncios concluída")

	completedAt := s.now()
	s.syncMutex.Lock()
	s.lastSyncCompletedAt = completedAt
	s.syncMutex.Unlock()
}

// processAds distribui os anúncios entre no máximo MaxConcurrentJobs workers
// e devolve quantos retratos foram gravados.
func (s *AdMetricsSyncService) processAds(ctx context.Context, ads []*domain.AdWithDetails) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	saved := 0

	// o token é o mesmo para todos os anúncios da conta
	tokens := make(map[int]*domain.MetaAccount)

	for _, ad := range ads {
		account, ok := tokens[ad.Campaign.MetaAccountID]
		if !ok {
			var err error
			account, err = s.metaAccountRepo.GetByID(ctx, ad.Campaign.MetaAccountID)
			if err != nil {
				logrus.WithError(err).WithField("meta_account_id", ad.Campaign.MetaAccountID).Error("Erro ao buscar conta Meta")
			}
			tokens[ad.Campaign.MetaAccountID] = account
		}

		if account == nil || !account.Active {
			logrus.WithField("ad_id", ad.Ad.ID).Warn("Anúncio sem conta Meta ativa. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(ad *domain.AdWithDetails, account *domain.MetaAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if s.processAd(ctx, ad, account) {
				mu.Lock()
				saved++
				mu.Unlock()
			}

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(ad, account)
	}

	wg.Wait()
	return saved
}

func (s *AdMetricsSyncService) processAd(ctx context.Context, ad *domain.AdWithDetails, account *domain.MetaAccount) bool {
	fields := logrus.Fields{
		"ad_id":      ad.Ad.ID,
		"meta_ad_id": *ad.Ad.MetaAdID,
	}

	insight, err := s.metaService.GetAdInsights(ctx, account.AccessToken, *ad.Ad.MetaAdID, domain.DatePresetYesterday)
	if err != nil {
		logrus.WithError(err).WithFields(fields).Error("Erro ao obter insights do anúncio")
		return false
	}

	if insight.Empty() {
		logrus.WithFields(fields).Debug("Nenhum insight do anúncio para ontem")
		return false
	}

	yesterday := s.now().AddDate(0, 0, -1)
	metric := advertising.MetricFromInsight(ad.Ad.ID, insight, yesterday)

	if err := s.metricRepo.Upsert(ctx, metric); err != nil {
		logrus.WithError(err).WithFields(fields).Error("Erro ao salvar métricas do anúncio")
		return false
	}

	logrus.WithFields(fields).WithField("date", metric.Date.Format(time.DateOnly)).Info("Métricas do anúncio salvas com sucesso")
	return true
}

// TriggerManualSync inicia manualmente uma sincronização de métricas
func (s *AdMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de métricas de anúncios")
	go s.syncAllAdMetrics(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AdMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"running":                s.syncRunning,
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
