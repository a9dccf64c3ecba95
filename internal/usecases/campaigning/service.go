package campaigning

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/cache"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Campaigner interface {
	List(ctx context.Context, userID int) ([]*domain.Campaign, error)
	Get(ctx context.Context, userID, campaignID int) (*domain.Campaign, error)
	Create(ctx context.Context, userID int, req domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateStatus(ctx context.Context, userID, campaignID int, status string) (*domain.Campaign, error)
	GetInsights(ctx context.Context, userID, campaignID int, preset string) (*domain.AdInsight, error)
}

// Entitlements é a parte da assinatura consultada antes de criar campanhas.
type Entitlements interface {
	CanCreateCampaign(ctx context.Context, userID int) error
}

type Service struct {
	campaignRepo    repository.CampaignRepository
	metaAccountRepo repository.MetaAccountRepository
	metaService     meta.Integrator
	entitlements    Entitlements
	cache           cache.Cache
	insightsTTL     time.Duration
}

func NewService(
	campaignRepo repository.CampaignRepository,
	metaAccountRepo repository.MetaAccountRepository,
	metaService meta.Integrator,
	entitlements Entitlements,
	c cache.Cache,
	insightsTTL time.Duration,
) Campaigner {
	return &Service{
		campaignRepo:    campaignRepo,
		metaAccountRepo: metaAccountRepo,
		metaService:     metaService,
		entitlements:    entitlements,
		cache:           c,
		insightsTTL:     insightsTTL,
	}
}

func (s *Service) List(ctx context.Context, userID int) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}
	return campaigns, nil
}

func (s *Service) Get(ctx context.Context, userID, campaignID int) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, campaignID, err.Error())
	}

	if campaign == nil || campaign.UserID != userID {
		return nil, NewCampaignError(ErrCampaignNotFound, errorcodes.ErrResourceNotFound, campaignID, "")
	}

	return campaign, nil
}

// Create grava a campanha como pendente antes de chamar a Meta. A linha só
// vira synced depois que o id remoto é persistido; falhas remotas deixam a
// linha como failed para o reconciliador.
func (s *Service) Create(ctx context.Context, userID int, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	objective := strings.ToUpper(strings.TrimSpace(req.Objective))
	if name == "" || objective == "" || req.MetaAccountID == 0 {
		return nil, NewCampaignError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, 0, "")
	}

	account, err := s.ownedAccount(ctx, userID, req.MetaAccountID)
	if err != nil {
		return nil, err
	}

	if err := s.entitlements.CanCreateCampaign(ctx, userID); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.Create(ctx, &domain.Campaign{
		UserID:        userID,
		MetaAccountID: account.ID,
		Name:          name,
		Objective:     objective,
		Status:        domain.StatusDraft,
		SyncStatus:    domain.SyncPending,
	})
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}

	metaCampaignID, err := s.metaService.CreateCampaign(ctx, account.AccessToken, account.AdAccountID, campaign)
	if err != nil {
		s.markFailed(ctx, campaign, err)
		return nil, NewCampaignError(ErrMetaSync, errorcodes.ErrExternalService, campaign.ID, err.Error())
	}

	paused := domain.StatusPaused
	upd := domain.SyncUpdate{ExternalID: &metaCampaignID, Status: &paused, SyncStatus: domain.SyncSynced}
	if err := s.campaignRepo.UpdateSync(ctx, campaign.ID, upd); err != nil {
		// a campanha existe na Meta; o reconciliador não tem o id para recuperar
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id":      campaign.ID,
			"meta_campaign_id": metaCampaignID,
		}).Error("Erro ao salvar id remoto da campanha")
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, campaign.ID, err.Error())
	}

	campaign.MetaCampaignID = &metaCampaignID
	campaign.Status = paused
	campaign.SyncStatus = domain.SyncSynced

	logrus.WithFields(logrus.Fields{
		"user_id":          userID,
		"campaign_id":      campaign.ID,
		"meta_campaign_id": metaCampaignID,
	}).Info("Campanha criada na Meta")

	return campaign, nil
}

// UpdateStatus registra a intenção local e, havendo id remoto, replica na Meta.
// deleted apaga o objeto remoto; os demais status são enviados em maiúsculas.
func (s *Service) UpdateStatus(ctx context.Context, userID, campaignID int, status string) (*domain.Campaign, error) {
	target, ok := domain.ParseStatus(status)
	if !ok {
		return nil, NewCampaignError(ErrInvalidStatus, errorcodes.ErrInvalidFormat, campaignID, status)
	}

	campaign, err := s.Get(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if err := s.campaignRepo.UpdateSync(ctx, campaignID, domain.SyncUpdate{Status: &target, SyncStatus: domain.SyncPending}); err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, campaignID, err.Error())
	}
	campaign.Status = target
	campaign.SyncStatus = domain.SyncPending

	if campaign.MetaCampaignID == nil {
		if err := s.finishLocal(ctx, campaign); err != nil {
			return nil, err
		}
		return campaign, nil
	}

	account, err := s.metaAccountRepo.GetByID(ctx, campaign.MetaAccountID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, campaignID, err.Error())
	}
	if account == nil {
		s.markFailed(ctx, campaign, ErrMetaAccountNotFound)
		return nil, NewCampaignError(ErrMetaAccountNotFound, errorcodes.ErrResourceNotFound, campaignID, "")
	}

	if target == domain.StatusDeleted {
		err = s.metaService.DeleteCampaign(ctx, account.AccessToken, *campaign.MetaCampaignID)
	} else {
		err = s.metaService.UpdateCampaignStatus(ctx, account.AccessToken, *campaign.MetaCampaignID, target)
	}
	if err != nil {
		s.markFailed(ctx, campaign, err)
		return nil, NewCampaignError(ErrMetaSync, errorcodes.ErrExternalService, campaignID, err.Error())
	}

	if err := s.campaignRepo.UpdateSync(ctx, campaignID, domain.SyncUpdate{SyncStatus: domain.SyncSynced}); err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, campaignID, err.Error())
	}
	campaign.SyncStatus = domain.SyncSynced

	return campaign, nil
}

// GetInsights consulta os insights agregados da campanha, com cache no Redis.
func (s *Service) GetInsights(ctx context.Context, userID, campaignID int, preset string) (*domain.AdInsight, error) {
	datePreset, ok := domain.ParseDatePreset(preset)
	if !ok {
		return nil, NewCampaignError(ErrInvalidDatePreset, errorcodes.ErrInvalidFormat, campaignID, preset)
	}

	campaign, err := s.Get(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if campaign.MetaCampaignID == nil {
		return &domain.AdInsight{}, nil
	}

	key := fmt.Sprintf("insights:campaign:%d:%s", campaignID, datePreset)
	if cached, found, err := s.cache.Get(ctx, key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao ler cache de insights")
	} else if found {
		var insight domain.AdInsight
		if err := json.Unmarshal(cached, &insight); err == nil {
			return &insight, nil
		}
	}

	account, err := s.metaAccountRepo.GetByID(ctx, campaign.MetaAccountID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, campaignID, err.Error())
	}
	if account == nil {
		return nil, NewCampaignError(ErrMetaAccountNotFound, errorcodes.ErrResourceNotFound, campaignID, "")
	}

	insight, err := s.metaService.GetCampaignInsights(ctx, account.AccessToken, *campaign.MetaCampaignID, datePreset)
	if err != nil {
		return nil, NewCampaignError(ErrMetaSync, errorcodes.ErrExternalService, campaignID, err.Error())
	}

	if raw, err := json.Marshal(insight); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.insightsTTL); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Erro ao gravar cache de insights")
		}
	}

	return insight, nil
}

func (s *Service) ownedAccount(ctx context.Context, userID, accountID int) (*domain.MetaAccount, error) {
	account, err := s.metaAccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}

	if account == nil || account.UserID != userID || !account.Active {
		return nil, NewCampaignError(ErrMetaAccountNotFound, errorcodes.ErrResourceNotFound, 0, "")
	}

	return account, nil
}

func (s *Service) finishLocal(ctx context.Context, campaign *domain.Campaign) error {
	if err := s.campaignRepo.UpdateSync(ctx, campaign.ID, domain.SyncUpdate{SyncStatus: domain.SyncSynced}); err != nil {
		return NewCampaignError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, campaign.ID, err.Error())
	}
	campaign.SyncStatus = domain.SyncSynced
	return nil
}

func (s *Service) markFailed(ctx context.Context, campaign *domain.Campaign, cause error) {
	msg := cause.Error()
	if err := s.campaignRepo.UpdateSync(ctx, campaign.ID, domain.SyncUpdate{SyncStatus: domain.SyncFailed, SyncError: &msg}); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("Erro ao marcar campanha como failed")
	}
	campaign.SyncStatus = domain.SyncFailed
	campaign.SyncError = &msg
}
