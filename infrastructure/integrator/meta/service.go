package meta

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Integrator traduz as entidades locais para chamadas da Graph API.
type Integrator interface {
	GetAdAccount(ctx context.Context, token, adAccountID string) (*domain.AdAccountInfo, error)
	ListAdAccounts(ctx context.Context, token string) ([]domain.AdAccountInfo, error)
	ExchangeToken(ctx context.Context, shortLivedToken string) (*domain.LongLivedToken, error)

	CreateCampaign(ctx context.Context, token, adAccountID string, campaign *domain.Campaign) (string, error)
	UpdateCampaignStatus(ctx context.Context, token, metaCampaignID string, status domain.Status) error
	DeleteCampaign(ctx context.Context, token, metaCampaignID string) error

	CreateAdSet(ctx context.Context, token, adAccountID, metaCampaignID string, adSet *domain.AdSet) (string, error)
	UpdateAdSetStatus(ctx context.Context, token, metaAdSetID string, status domain.Status) error
	DeleteAdSet(ctx context.Context, token, metaAdSetID string) error

	CreateCreative(ctx context.Context, token, adAccountID, pageID string, creative *domain.Creative) (string, error)
	CreateAd(ctx context.Context, token, adAccountID, metaAdSetID, metaCreativeID string, ad *domain.Ad) (string, error)
	UpdateAdStatus(ctx context.Context, token, metaAdID string, status domain.Status) error
	DeleteAd(ctx context.Context, token, metaAdID string) error

	GetAdInsights(ctx context.Context, token, metaAdID string, preset domain.DatePreset) (*domain.AdInsight, error)
	GetCampaignInsights(ctx context.Context, token, metaCampaignID string, preset domain.DatePreset) (*domain.AdInsight, error)
}

type MetaIntegrator struct {
	Client metaclient.Client
	now    func() time.Time
}

var _ Integrator = (*MetaIntegrator)(nil)

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *MetaIntegrator) GetAdAccount(ctx context.Context, token, adAccountID string) (*domain.AdAccountInfo, error) {
	account, err := s.Client.GetAdAccount(ctx, token, adAccountID)
	if err != nil {
		return nil, err
	}

	return &domain.AdAccountInfo{
		ID:           account.ID,
		AccountID:    account.AccountID,
		Name:         account.Name,
		Currency:     account.Currency,
		TimezoneName: account.TimezoneName,
	}, nil
}

func (s *MetaIntegrator) ListAdAccounts(ctx context.Context, token string) ([]domain.AdAccountInfo, error) {
	accounts, err := s.Client.GetAdAccounts(ctx, token)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdAccountInfo, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, domain.AdAccountInfo{ID: a.ID, AccountID: a.AccountID, Name: a.Name})
	}

	return result, nil
}

func (s *MetaIntegrator) ExchangeToken(ctx context.Context, shortLivedToken string) (*domain.LongLivedToken, error) {
	resp, err := s.Client.ExchangeToken(ctx, shortLivedToken)
	if err != nil {
		return nil, err
	}

	token := &domain.LongLivedToken{AccessToken: resp.AccessToken}
	if resp.ExpiresIn > 0 {
		expiresAt := metaclient.CalculateTokenExpiration(s.now(), resp.ExpiresIn)
		token.ExpiresAt = &expiresAt
	}

	return token, nil
}

func (s *MetaIntegrator) CreateCampaign(ctx context.Context, token, adAccountID string, campaign *domain.Campaign) (string, error) {
	id, err := s.Client.CreateCampaign(ctx, token, adAccountID, metadomain.CampaignParams{
		Name:      campaign.Name,
		Objective: campaign.Objective,
		Status:    metadomain.StatusPaused,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id":   campaign.ID,
			"ad_account_id": adAccountID,
		}).WithError(err).Error("meta: falha ao criar campanha")
		return "", err
	}

	return id, nil
}

func (s *MetaIntegrator) UpdateCampaignStatus(ctx context.Context, token, metaCampaignID string, status domain.Status) error {
	return s.Client.UpdateCampaign(ctx, token, metaCampaignID, metadomain.CampaignParams{Status: status.Remote()})
}

func (s *MetaIntegrator) DeleteCampaign(ctx context.Context, token, metaCampaignID string) error {
	return s.Client.Delete(ctx, token, metaCampaignID)
}

func (s *MetaIntegrator) CreateAdSet(ctx context.Context, token, adAccountID, metaCampaignID string, adSet *domain.AdSet) (string, error) {
	targeting, err := decodeTargeting(adSet.Targeting)
	if err != nil {
		return "", err
	}

	params := metadomain.AdSetParams{
		CampaignID:     metaCampaignID,
		Name:           adSet.Name,
		Targeting:      targeting,
		Status:         metadomain.StatusPaused,
		DailyBudget:    adSet.DailyBudget,
		LifetimeBudget: adSet.LifetimeBudget,
	}
	if adSet.StartTime != nil {
		params.StartTime = adSet.StartTime.Format(time.RFC3339)
	}
	if adSet.EndTime != nil {
		params.EndTime = adSet.EndTime.Format(time.RFC3339)
	}

	id, err := s.Client.CreateAdSet(ctx, token, adAccountID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_set_id":        adSet.ID,
			"meta_campaign_id": metaCampaignID,
		}).WithError(err).Error("meta: falha ao criar conjunto de anúncios")
		return "", err
	}

	return id, nil
}

func (s *MetaIntegrator) UpdateAdSetStatus(ctx context.Context, token, metaAdSetID string, status domain.Status) error {
	return s.Client.UpdateAdSet(ctx, token, metaAdSetID, metadomain.AdSetParams{Status: status.Remote()})
}

func (s *MetaIntegrator) DeleteAdSet(ctx context.Context, token, metaAdSetID string) error {
	return s.Client.Delete(ctx, token, metaAdSetID)
}

// CreateCreative sobe a mídia quando houver e cria o criativo na página informada.
func (s *MetaIntegrator) CreateCreative(ctx context.Context, token, adAccountID, pageID string, creative *domain.Creative) (string, error) {
	cta := &metadomain.CallToActionSpec{
		Type:  creative.CallToAction,
		Value: map[string]string{"link": creative.LinkURL},
	}

	spec := metadomain.ObjectStorySpec{PageID: pageID}

	if creative.VideoURL != nil && *creative.VideoURL != "" {
		videoID, err := s.Client.UploadVideo(ctx, token, adAccountID, *creative.VideoURL)
		if err != nil {
			return "", errors.Wrap(err, "erro ao enviar vídeo do criativo")
		}

		spec.VideoData = &metadomain.VideoData{
			VideoID:      videoID,
			Title:        creative.Title,
			Message:      creative.Body,
			CallToAction: cta,
		}
		if creative.ImageURL != nil {
			spec.VideoData.ImageURL = *creative.ImageURL
		}
	} else {
		spec.LinkData = &metadomain.LinkData{
			Link:         creative.LinkURL,
			Message:      creative.Body,
			Name:         creative.Title,
			CallToAction: cta,
		}

		if creative.ImageURL != nil && *creative.ImageURL != "" {
			hash, err := s.Client.UploadImage(ctx, token, adAccountID, *creative.ImageURL)
			if err != nil {
				return "", errors.Wrap(err, "erro ao enviar imagem do criativo")
			}
			spec.LinkData.ImageHash = hash
		}
	}

	return s.Client.CreateAdCreative(ctx, token, adAccountID, metadomain.AdCreativeParams{
		Name:            creative.Name,
		ObjectStorySpec: spec,
	})
}

func (s *MetaIntegrator) CreateAd(ctx context.Context, token, adAccountID, metaAdSetID, metaCreativeID string, ad *domain.Ad) (string, error) {
	return s.Client.CreateAd(ctx, token, adAccountID, metadomain.AdParams{
		Name:       ad.Name,
		AdSetID:    metaAdSetID,
		CreativeID: metaCreativeID,
		Status:     metadomain.StatusPaused,
	})
}

func (s *MetaIntegrator) UpdateAdStatus(ctx context.Context, token, metaAdID string, status domain.Status) error {
	return s.Client.UpdateAd(ctx, token, metaAdID, metadomain.AdParams{Status: status.Remote()})
}

func (s *MetaIntegrator) DeleteAd(ctx context.Context, token, metaAdID string) error {
	return s.Client.Delete(ctx, token, metaAdID)
}

func (s *MetaIntegrator) GetAdInsights(ctx context.Context, token, metaAdID string, preset domain.DatePreset) (*domain.AdInsight, error) {
	data, err := s.Client.GetInsights(ctx, token, metaAdID, string(preset), metadomain.AdInsightFields)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &domain.AdInsight{}, nil
	}

	return FactoryAdInsight(&data[0]), nil
}

func (s *MetaIntegrator) GetCampaignInsights(ctx context.Context, token, metaCampaignID string, preset domain.DatePreset) (*domain.AdInsight, error) {
	data, err := s.Client.GetInsights(ctx, token, metaCampaignID, string(preset), metadomain.CampaignInsightFields)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &domain.AdInsight{}, nil
	}

	return FactoryAdInsight(&data[0]), nil
}

// FactoryAdInsight converte os valores textuais da Graph API.
// Gasto e CPC viram centavos e CTR é multiplicado por 10000.
func FactoryAdInsight(in *metadomain.Insight) *domain.AdInsight {
	out := &domain.AdInsight{
		Impressions: parseInt("impressions", in.Impressions),
		Clicks:      parseInt("clicks", in.Clicks),
		Reach:       parseInt("reach", in.Reach),
		Spend:       scaleFloat("spend", in.Spend, 100),
		CTR:         scaleFloat("ctr", in.CTR, 10000),
		CPC:         scaleFloat("cpc", in.CPC, 100),
		DateStart:   in.DateStart,
		DateStop:    in.DateStop,
	}

	for _, action := range in.Actions {
		if !metadomain.ConversionActionTypes[action.ActionType] {
			continue
		}
		v, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
			}).Warn("insights: erro ao converter valor da ação")
			continue
		}
		out.Conversions += int(v)
	}

	return out
}

func parseInt(field, value string) int {
	if value == "" {
		return 0
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{"field": field, "value": value}).Warn("insights: erro ao converter inteiro")
		return 0
	}
	return v
}

func scaleFloat(field, value string, factor float64) int {
	if value == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{"field": field, "value": value}).Warn("insights: erro ao converter decimal")
		return 0
	}
	return int(math.Round(v * factor))
}

// IsTokenExpired indica se err veio da Graph API recusando o token do usuário.
func IsTokenExpired(err error) bool {
	var apiErr *metadomain.APIError
	return errors.As(err, &apiErr) && apiErr.IsTokenExpired()
}
