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
)

const errExternalIDNeverArrived = "id externo nunca foi recebido"

// PendingReconciler é a reconciliação de checkouts pendentes do provedor de pagamento.
type PendingReconciler interface {
	ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

// ReconciliationConfig representa a configuração do agendador de reconciliação
type ReconciliationConfig struct {
	CronSchedule   string
	PendingTimeout time.Duration
	BatchSize      int
	Enabled        bool
}

// ReconcileResult resume uma execução da reconciliação.
type ReconcileResult struct {
	Failed        int `json:"failed"`
	Repushed      int `json:"repushed"`
	Errors        int `json:"errors"`
	Subscriptions int `json:"subscriptions"`
}

type SyncRepositories struct {
	Campaigns    repository.CampaignRepository
	AdSets       repository.AdSetRepository
	Ads          repository.AdRepository
	MetaAccounts repository.MetaAccountRepository
}

// SyncReconciler fecha as sagas que ficaram no meio do caminho: linhas
// pendentes sem id remoto viram failed e linhas com id remoto recebem de novo
// o status local.
type SyncReconciler struct {
	scheduler     *gocron.Scheduler
	config        ReconciliationConfig
	repos         SyncRepositories
	metaService   meta.Integrator
	subscriptions PendingReconciler
	now           func() time.Time

	syncRunning     bool
	syncMutex       sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastResult      ReconcileResult
}

func NewSyncReconciler(
	repos SyncRepositories,
	metaService meta.Integrator,
	subscriptions PendingReconciler,
	appConfig *config.Config,
) *SyncReconciler {
	cfg := ReconciliationConfig{
		CronSchedule:   appConfig.Reconciliation.CronSchedule,
		PendingTimeout: appConfig.Reconciliation.PendingTimeout,
		BatchSize:      appConfig.Reconciliation.BatchSize,
		Enabled:        appConfig.Reconciliation.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cfg.CronSchedule,
		"pending_timeout": cfg.PendingTimeout.String(),
		"batch_size":      cfg.BatchSize,
		"enabled":         cfg.Enabled,
	}).Info("Configuração do agendador de reconciliação carregada")

	return &SyncReconciler{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        cfg,
		repos:         repos,
		metaService:   metaService,
		subscriptions: subscriptions,
		now:           time.Now,
	}
}

func (s *SyncReconciler) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reconciliação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SyncReconciler) run(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	result := s.RunOnce(ctx)

	s.syncMutex.Lock()
	s.lastCompletedAt = s.now()
	s.lastResult = result
	s.syncMutex.Unlock()
}

// RunOnce executa uma passada completa sobre campanhas, conjuntos, anúncios e
// checkouts pendentes.
func (s *SyncReconciler) RunOnce(ctx context.Context) ReconcileResult {
	startTime := s.now()
	before := startTime.Add(-s.config.PendingTimeout)
	var result ReconcileResult

	s.reconcileCampaigns(ctx, before, &result)
	s.reconcileAdSets(ctx, before, &result)
	s.reconcileAds(ctx, before, &result)

	if s.subscriptions != nil {
		changed, err := s.subscriptions.ReconcilePending(ctx, s.config.PendingTimeout, s.config.BatchSize)
		if err != nil {
			logrus.WithError(err).Error("Erro ao reconciliar assinaturas pendentes")
			result.Errors++
		}
		result.Subscriptions = changed
	}

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"failed":        result.Failed,
		"repushed":      result.Repushed,
		"errors":        result.Errors,
		"subscriptions": result.Subscriptions,
	}).Info("Reconciliação concluída")

	return result
}

// syncRow é a visão comum de campanha, conjunto e anúncio durante a reconciliação.
type syncRow struct {
	kind       string
	id         int
	externalID *string
	status     domain.Status
	account    func() (*domain.MetaAccount, error)
	push       func(token, externalID string, status domain.Status) error
	remove     func(token, externalID string) error
	update     func(upd domain.SyncUpdate) error
}

func (s *SyncReconciler) reconcileRow(row syncRow, result *ReconcileResult) {
	fields := logrus.Fields{"kind": row.kind, "id": row.id}

	if row.externalID == nil {
		msg := errExternalIDNeverArrived
		if err := row.update(domain.SyncUpdate{SyncStatus: domain.SyncFailed, SyncError: &msg}); err != nil {
			logrus.WithError(err).WithFields(fields).Error("Erro ao marcar linha como failed")
			result.Errors++
			return
		}
		logrus.WithFields(fields).Warn("Linha pendente sem id externo marcada como failed")
		result.Failed++
		return
	}

	account, err := row.account()
	if err == nil && account == nil {
		err = fmt.Errorf("conta Meta não encontrada")
	}
	if err == nil {
		status := row.status
		if status == domain.StatusDraft {
			status = domain.StatusPaused
		}
		if status == domain.StatusDeleted {
			err = row.remove(account.AccessToken, *row.externalID)
		} else {
			err = row.push(account.AccessToken, *row.externalID, status)
		}
	}

	if err != nil {
		msg := err.Error()
		if updErr := row.update(domain.SyncUpdate{SyncStatus: domain.SyncFailed, SyncError: &msg}); updErr != nil {
			logrus.WithError(updErr).WithFields(fields).Error("Erro ao registrar falha de sincronização")
		}
		logrus.WithError(err).WithFields(fields).Warn("Erro ao reenviar status para a Meta")
		result.Errors++
		return
	}

	if err := row.update(domain.SyncUpdate{SyncStatus: domain.SyncSynced}); err != nil {
		logrus.WithError(err).WithFields(fields).Error("Erro ao marcar linha como synced")
		result.Errors++
		return
	}
	result.Repushed++
}

func (s *SyncReconciler) reconcileCampaigns(ctx context.Context, before time.Time, result *ReconcileResult) {
	campaigns, err := s.repos.Campaigns.ListPendingSync(ctx, before, s.config.BatchSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas pendentes")
		result.Errors++
		return
	}

	for _, c := range campaigns {
		campaign := c
		s.reconcileRow(syncRow{
			kind:       "campaign",
			id:         campaign.ID,
			externalID: campaign.MetaCampaignID,
			status:     campaign.Status,
			account: func() (*domain.MetaAccount, error) {
				return s.repos.MetaAccounts.GetByID(ctx, campaign.MetaAccountID)
			},
			push: func(token, externalID string, status domain.Status) error {
				return s.metaService.UpdateCampaignStatus(ctx, token, externalID, status)
			},
			remove: func(token, externalID string) error {
				return s.metaService.DeleteCampaign(ctx, token, externalID)
			},
			update: func(upd domain.SyncUpdate) error {
				return s.repos.Campaigns.UpdateSync(ctx, campaign.ID, upd)
			},
		}, result)
	}
}

func (s *SyncReconciler) reconcileAdSets(ctx context.Context, before time.Time, result *ReconcileResult) {
	adSets, err := s.repos.AdSets.ListPendingSync(ctx, before, s.config.BatchSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar conjuntos de anúncios pendentes")
		result.Errors++
		return
	}

	for _, a := range adSets {
		adSet := a
		s.reconcileRow(syncRow{
			kind:       "ad_set",
			id:         adSet.ID,
			externalID: adSet.MetaAdSetID,
			status:     adSet.Status,
			account: func() (*domain.MetaAccount, error) {
				campaign, err := s.repos.Campaigns.GetByID(ctx, adSet.CampaignID)
				if err != nil || campaign == nil {
					return nil, err
				}
				return s.repos.MetaAccounts.GetByID(ctx, campaign.MetaAccountID)
			},
			push: func(token, externalID string, status domain.Status) error {
				return s.metaService.UpdateAdSetStatus(ctx, token, externalID, status)
			},
			remove: func(token, externalID string) error {
				return s.metaService.DeleteAdSet(ctx, token, externalID)
			},
			update: func(upd domain.SyncUpdate) error {
				return s.repos.AdSets.UpdateSync(ctx, adSet.ID, upd)
			},
		}, result)
	}
}

func (s *SyncReconciler) reconcileAds(ctx context.Context, before time.Time, result *ReconcileResult) {
	ads, err := s.repos.Ads.ListPendingSync(ctx, before, s.config.BatchSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar anúncios pendentes")
		result.Errors++
		return
	}

	for _, a := range ads {
		ad := a
		s.reconcileRow(syncRow{
			kind:       "ad",
			id:         ad.ID,
			externalID: ad.MetaAdID,
			status:     ad.Status,
			account: func() (*domain.MetaAccount, error) {
				details, err := s.repos.Ads.GetWithDetails(ctx, ad.ID)
				if err != nil || details == nil {
					return nil, err
				}
				return s.repos.MetaAccounts.GetByID(ctx, details.Campaign.MetaAccountID)
			},
			push: func(token, externalID string, status domain.Status) error {
				return s.metaService.UpdateAdStatus(ctx, token, externalID, status)
			},
			remove: func(token, externalID string) error {
				return s.metaService.DeleteAd(ctx, token, externalID)
			},
			update: func(upd domain.SyncUpdate) error {
				return s.repos.Ads.UpdateSync(ctx, ad.ID, upd)
			},
		}, result)
	}
}

// TriggerManualSync inicia manualmente uma reconciliação
func (s *SyncReconciler) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual")
	go s.run(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SyncReconciler) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"pending_timeout":   s.config.PendingTimeout.String(),
		"batch_size":        s.config.BatchSize,
		"running":           s.syncRunning,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_result":       s.lastResult,
	}
}
