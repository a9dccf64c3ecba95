package advertising

import (
	"context"
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

type Advertiser interface {
	List(ctx context.Context, userID int) ([]*domain.AdWithDetails, error)
	Create(ctx context.Context, userID int, req domain.CreateAdRequest) (*domain.CreateAdResponse, error)
	Publish(ctx context.Context, userID, adID int, pageID string) (*domain.Ad, error)
	UpdateStatus(ctx context.Context, userID, adID int, status string) (*domain.Ad, error)
	GetInsights(ctx context.Context, userID, adID int, preset string) (*domain.AdInsight, error)
}

// Entitlements é a parte da assinatura consultada antes de criar anúncios.
type Entitlements interface {
	CanCreateAd(ctx context.Context, userID, campaignID int) error
}

type Service struct {
	adRepo          repository.AdRepository
	adSetRepo       repository.AdSetRepository
	campaignRepo    repository.CampaignRepository
	creativeRepo    repository.CreativeRepository
	metricRepo      repository.AdMetricRepository
	metaAccountRepo repository.MetaAccountRepository
	metaService     meta.Integrator
	entitlements    Entitlements
	cache           cache.Cache
	insightsTTL     time.Duration
	now             func() time.Time
}

type Repositories struct {
	Ads          repository.AdRepository
	AdSets       repository.AdSetRepository
	Campaigns    repository.CampaignRepository
	Creatives    repository.CreativeRepository
	Metrics      repository.AdMetricRepository
	MetaAccounts repository.MetaAccountRepository
}

func NewService(repos Repositories, metaService meta.Integrator, entitlements Entitlements, c cache.Cache, insightsTTL time.Duration) *Service {
	return &Service{
		adRepo:          repos.Ads,
		adSetRepo:       repos.AdSets,
		campaignRepo:    repos.Campaigns,
		creativeRepo:    repos.Creatives,
		metricRepo:      repos.Metrics,
		metaAccountRepo: repos.MetaAccounts,
		metaService:     metaService,
		entitlements:    entitlements,
		cache:           c,
		insightsTTL:     insightsTTL,
		now:             time.Now,
	}
}

var _ Advertiser = (*Service)(nil)

func (s *Service) List(ctx context.Context, userID int) ([]*domain.AdWithDetails, error) {
	ads, err := s.adRepo.ListWithDetailsByUser(ctx, userID)
	if err != nil {
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}
	return ads, nil
}

// Create monta o conjunto de anúncios na Meta e guarda criativo e anúncio
// como rascunho. A criação remota do anúncio acontece em Publish.
func (s *Service) Create(ctx context.Context, userID int, req domain.CreateAdRequest) (*domain.CreateAdResponse, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}

	// nenhuma chamada externa antes desta verificação
	if campaign == nil || campaign.UserID != userID {
		logrus.WithFields(logrus.Fields{
			"user_id":     userID,
			"campaign_id": req.CampaignID,
		}).Warn("Tentativa de criar anúncio em campanha de outro usuário")
		return nil, NewAdError(ErrUnauthorized, errorcodes.ErrResourceNotFound, 0, "")
	}

	if campaign.MetaCampaignID == nil {
		return nil, NewAdError(ErrCampaignNotSynced, errorcodes.ErrResourceConflict, 0, "")
	}

	account, err := s.account(ctx, campaign.MetaAccountID)
	if err != nil {
		return nil, err
	}

	if err := s.entitlements.CanCreateAd(ctx, userID, campaign.ID); err != nil {
		return nil, err
	}

	adSet := &domain.AdSet{
		CampaignID:  campaign.ID,
		Name:        strings.TrimSpace(req.Name) + " - Conjunto",
		DailyBudget: req.DailyBudget,
		Status:      domain.StatusPaused,
		SyncStatus:  domain.SyncPending,
	}
	if req.Targeting != nil {
		raw, err := json.MarshalToString(req.Targeting)
		if err != nil {
			return nil, NewAdError(ErrMissingRequiredData, errorcodes.ErrInvalidFormat, 0, "segmentação inválida")
		}
		adSet.Targeting = &raw
	}

	adSet, err = s.adSetRepo.Create(ctx, adSet)
	if err != nil {
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}

	metaAdSetID, err := s.metaService.CreateAdSet(ctx, account.AccessToken, account.AdAccountID, *campaign.MetaCampaignID, adSet)
	if err != nil {
		msg := err.Error()
		if updErr := s.adSetRepo.UpdateSync(ctx, adSet.ID, domain.SyncUpdate{SyncStatus: domain.SyncFailed, SyncError: &msg}); updErr != nil {
			logrus.WithError(updErr).WithField("ad_set_id", adSet.ID).Error("Erro ao marcar conjunto de anúncios como failed")
		}
		return nil, NewAdError(ErrMetaSync, errorcodes.ErrExternalService, 0, msg)
	}

	if err := s.adSetRepo.UpdateSync(ctx, adSet.ID, domain.SyncUpdate{ExternalID: &metaAdSetID, SyncStatus: domain.SyncSynced}); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"ad_set_id":      adSet.ID,
			"meta_ad_set_id": metaAdSetID,
		}).Error("Erro ao salvar id remoto do conjunto de anúncios")
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}

	creative := &domain.Creative{
		UserID:        userID,
		Name:          strings.TrimSpace(req.Name) + " - Criativo",
		Title:         strings.TrimSpace(req.Title),
		Body:          strings.TrimSpace(req.Body),
		CallToAction:  string(domain.NormalizeCallToAction(req.CallToAction)),
		LinkURL:       strings.TrimSpace(req.LinkURL),
		ImageURL:      req.ImageURL,
		VideoURL:      req.VideoURL,
		GeneratedByAI: req.GeneratedByAI,
	}
	ad := &domain.Ad{
		AdSetID:    adSet.ID,
		Name:       strings.TrimSpace(req.Name),
		Status:     domain.StatusDraft,
		SyncStatus: domain.SyncSynced,
	}

	ad, err = s.adRepo.CreateDraft(ctx, creative, ad)
	if err != nil {
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"campaign_id": campaign.ID,
		"ad_set_id":   adSet.ID,
		"ad_id":       ad.ID,
	}).Info("Anúncio criado como rascunho")

	return &domain.CreateAdResponse{
		AdID:       ad.ID,
		AdSetID:    adSet.ID,
		CreativeID: ad.CreativeID,
	}, nil
}

// Publish cria criativo e anúncio na Meta, ambos pausados. Um criativo já
// enviado numa tentativa anterior é reaproveitado.
func (s *Service) Publish(ctx context.Context, userID, adID int, pageID string) (*domain.Ad, error) {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return nil, NewAdError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, adID, "pageId é obrigatório")
	}

	details, err := s.owned(ctx, userID, adID)
	if err != nil {
		return nil, err
	}

	if details.Ad.MetaAdID != nil {
		return nil, NewAdError(ErrAlreadyPublished, errorcodes.ErrResourceConflict, adID, "")
	}
	if details.AdSet.MetaAdSetID == nil {
		return nil, NewAdError(ErrAdSetNotSynced, errorcodes.ErrResourceConflict, adID, "")
	}

	account, err := s.account(ctx, details.Campaign.MetaAccountID)
	if err != nil {
		return nil, err
	}

	creative := details.Creative
	if creative.MetaCreativeID == nil {
		metaCreativeID, err := s.metaService.CreateCreative(ctx, account.AccessToken, account.AdAccountID, pageID, &creative)
		if err != nil {
			s.markFailed(ctx, &details.Ad, err)
			return nil, NewAdError(ErrMetaSync, errorcodes.ErrExternalService, adID, err.Error())
		}

		if err := s.creativeRepo.SetMetaCreativeID(ctx, creative.ID, metaCreativeID); err != nil {
			return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, adID, err.Error())
		}
		creative.MetaCreativeID = &metaCreativeID
	}

	ad := details.Ad
	metaAdID, err := s.metaService.CreateAd(ctx, account.AccessToken, account.AdAccountID, *details.AdSet.MetaAdSetID, *creative.MetaCreativeID, &ad)
	if err != nil {
		s.markFailed(ctx, &ad, err)
		return nil, NewAdError(ErrMetaSync, errorcodes.ErrExternalService, adID, err.Error())
	}

	paused := domain.StatusPaused
	if err := s.adRepo.UpdateSync(ctx, adID, domain.SyncUpdate{ExternalID: &metaAdID, Status: &paused, SyncStatus: domain.SyncSynced}); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"ad_id":      adID,
			"meta_ad_id": metaAdID,
		}).Error("Erro ao salvar id remoto do anúncio")
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, adID, err.Error())
	}

	ad.MetaAdID = &metaAdID
	ad.Status = paused
	ad.SyncStatus = domain.SyncSynced
	ad.SyncError = nil

	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"ad_id":      adID,
		"meta_ad_id": metaAdID,
	}).Info("Anúncio publicado na Meta")

	return &ad, nil
}

func (s *Service) UpdateStatus(ctx context.Context, userID, adID int, status string) (*domain.Ad, error) {
	target, ok := domain.ParseStatus(status)
	if !ok {
		return nil, NewAdError(ErrInvalidStatus, errorcodes.ErrInvalidFormat, adID, status)
	}

	details, err := s.owned(ctx, userID, adID)
	if err != nil {
		return nil, err
	}
	ad := details.Ad

	if err := s.adRepo.UpdateSync(ctx, adID, domain.SyncUpdate{Status: &target, SyncStatus: domain.SyncPending}); err != nil {
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, adID, err.Error())
	}
	ad.Status = target

	if ad.MetaAdID != nil {
		account, err := s.account(ctx, details.Campaign.MetaAccountID)
		if err != nil {
			s.markFailed(ctx, &ad, err)
			return nil, err
		}

		if target == domain.StatusDeleted {
			err = s.metaService.DeleteAd(ctx, account.AccessToken, *ad.MetaAdID)
		} else {
			err = s.metaService.UpdateAdStatus(ctx, account.AccessToken, *ad.MetaAdID, target)
		}
		if err != nil {
			s.markFailed(ctx, &ad, err)
			return nil, NewAdError(ErrMetaSync, errorcodes.ErrExternalService, adID, err.Error())
		}
	}

	if err := s.adRepo.UpdateSync(ctx, adID, domain.SyncUpdate{SyncStatus: domain.SyncSynced}); err != nil {
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, adID, err.Error())
	}
	ad.SyncStatus = domain.SyncSynced
	ad.SyncError = nil

	return &ad, nil
}

func (s *Service) owned(ctx context.Context, userID, adID int) (*domain.AdWithDetails, error) {
	details, err := s.adRepo.GetWithDetails(ctx, adID)
	if err != nil {
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, adID, err.Error())
	}

	if details == nil || details.Campaign.UserID != userID {
		return nil, NewAdError(ErrAdNotFound, errorcodes.ErrResourceNotFound, adID, "")
	}

	return details, nil
}

func (s *Service) account(ctx context.Context, accountID int) (*domain.MetaAccount, error) {
	account, err := s.metaAccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewAdError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}
	if account == nil {
		return nil, NewAdError(ErrMetaAccountNotFound, errorcodes.ErrResourceNotFound, 0, "")
	}
	return account, nil
}

func (s *Service) markFailed(ctx context.Context, ad *domain.Ad, cause error) {
	msg := cause.Error()
	if err := s.adRepo.UpdateSync(ctx, ad.ID, domain.SyncUpdate{SyncStatus: domain.SyncFailed, SyncError: &msg}); err != nil {
		logrus.WithError(err).WithField("ad_id", ad.ID).Error("Erro ao marcar anúncio como failed")
	}
	ad.SyncStatus = domain.SyncFailed
	ad.SyncError = &msg
}

func validateCreate(req domain.CreateAdRequest) error {
	var missing []string
	if req.CampaignID == 0 {
		missing = append(missing, "campaignId")
	}
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Body) == "" {
		missing = append(missing, "body")
	}
	if strings.TrimSpace(req.LinkURL) == "" {
		missing = append(missing, "linkUrl")
	}

	if len(missing) > 0 {
		return NewAdError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, 0, strings.Join(missing, ", "))
	}
	return nil
}
