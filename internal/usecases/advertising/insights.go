package advertising

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

func insightsCacheKey(adID int, preset domain.DatePreset) string {
	return fmt.Sprintf("insights:ad:%d:%s", adID, preset)
}

// GetInsights devolve os insights do anúncio no período. Respostas da Meta
// ficam no cache e cada consulta atualiza o retrato do dia em ad_metrics.
func (s *Service) GetInsights(ctx context.Context, userID, adID int, preset string) (*domain.AdInsight, error) {
	datePreset, ok := domain.ParseDatePreset(preset)
	if !ok {
		return nil, NewAdError(ErrInvalidDatePreset, errorcodes.ErrInvalidFormat, adID, preset)
	}

	details, err := s.owned(ctx, userID, adID)
	if err != nil {
		return nil, err
	}

	if details.Ad.MetaAdID == nil {
		return &domain.AdInsight{}, nil
	}

	key := insightsCacheKey(adID, datePreset)
	if cached, found, err := s.cache.Get(ctx, key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao ler cache de insights")
	} else if found {
		var insight domain.AdInsight
		if err := json.Unmarshal(cached, &insight); err == nil {
			return &insight, nil
		}
	}

	account, err := s.account(ctx, details.Campaign.MetaAccountID)
	if err != nil {
		return nil, err
	}

	insight, err := s.metaService.GetAdInsights(ctx, account.AccessToken, *details.Ad.MetaAdID, datePreset)
	if err != nil {
		return nil, NewAdError(ErrMetaSync, errorcodes.ErrExternalService, adID, err.Error())
	}

	if raw, err := json.Marshal(insight); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.insightsTTL); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("Erro ao gravar cache de insights")
		}
	}

	if !insight.Empty() {
		metric := MetricFromInsight(adID, insight, s.now())
		if err := s.metricRepo.Upsert(ctx, metric); err != nil {
			logrus.WithError(err).WithField("ad_id", adID).Warn("Erro ao salvar retrato diário do anúncio")
		}
	}

	return insight, nil
}

// MetricFromInsight converte os insights no retrato diário. A data vem de
// date_stop quando presente e cai para o dia de fallback caso contrário.
func MetricFromInsight(adID int, insight *domain.AdInsight, fallback time.Time) *domain.AdMetric {
	date := time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, time.UTC)
	if insight.DateStop != "" {
		if parsed, err := time.Parse("2006-01-02", insight.DateStop); err == nil {
			date = parsed
		}
	}

	return &domain.AdMetric{
		AdID:        adID,
		Date:        date,
		Impressions: insight.Impressions,
		Clicks:      insight.Clicks,
		Spend:       insight.Spend,
		Reach:       insight.Reach,
		Conversions: insight.Conversions,
		CTR:         insight.CTR,
		CPC:         insight.CPC,
	}
}
