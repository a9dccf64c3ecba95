package metaclient

import (
	"context"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) CreateAdSet(ctx context.Context, token, adAccountID string, params metadomain.AdSetParams) (string, error) {
	if params.CampaignID == "" {
		return "", errors.New("campaign_id é obrigatório para criar o conjunto de anúncios")
	}

	targeting, err := json.MarshalToString(params.Targeting)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar segmentação")
	}

	body := map[string]any{
		"campaign_id":       params.CampaignID,
		"name":              params.Name,
		"targeting":         targeting,
		"billing_event":     valueOr(params.BillingEvent, metadomain.DefaultBillingEvent),
		"optimization_goal": valueOr(params.OptimizationGoal, metadomain.DefaultOptimizationGoal),
		"status":            valueOr(params.Status, metadomain.StatusPaused),
	}
	if params.DailyBudget != nil {
		body["daily_budget"] = *params.DailyBudget
	}
	if params.LifetimeBudget != nil {
		body["lifetime_budget"] = *params.LifetimeBudget
	}
	if params.StartTime != "" {
		body["start_time"] = params.StartTime
	}
	if params.EndTime != "" {
		body["end_time"] = params.EndTime
	}

	var created metadomain.CreatedObject
	if err := c.post(ctx, adAccountPath(adAccountID, "adsets"), token, body, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (c *MetaClient) UpdateAdSet(ctx context.Context, token, adSetID string, params metadomain.AdSetParams) error {
	body := map[string]any{}
	if params.Name != "" {
		body["name"] = params.Name
	}
	if params.Status != "" {
		body["status"] = params.Status
	}
	if params.DailyBudget != nil {
		body["daily_budget"] = *params.DailyBudget
	}
	if params.LifetimeBudget != nil {
		body["lifetime_budget"] = *params.LifetimeBudget
	}

	return c.post(ctx, adSetID, token, body, nil)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
