package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) CreateCampaign(ctx context.Context, token, adAccountID string, params metadomain.CampaignParams) (string, error) {
	status := params.Status
	if status == "" {
		status = metadomain.StatusPaused
	}

	body := map[string]any{
		"name":                  params.Name,
		"objective":             params.Objective,
		"status":                status,
		"special_ad_categories": []string{},
	}

	var created metadomain.CreatedObject
	if err := c.post(ctx, adAccountPath(adAccountID, "campaigns"), token, body, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (c *MetaClient) UpdateCampaign(ctx context.Context, token, campaignID string, params metadomain.CampaignParams) error {
	body := map[string]any{}
	if params.Name != "" {
		body["name"] = params.Name
	}
	if params.Status != "" {
		body["status"] = params.Status
	}

	return c.post(ctx, campaignID, token, body, nil)
}

func (c *MetaClient) GetCampaign(ctx context.Context, token, campaignID string) (*metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,objective,status")

	var campaign metadomain.Campaign
	if err := c.get(ctx, campaignID, token, params, &campaign); err != nil {
		return nil, err
	}

	return &campaign, nil
}
