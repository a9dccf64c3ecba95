package metaclient

import (
	"context"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) CreateAd(ctx context.Context, token, adAccountID string, params metadomain.AdParams) (string, error) {
	body := map[string]any{
		"name":     params.Name,
		"adset_id": params.AdSetID,
		"creative": map[string]string{"creative_id": params.CreativeID},
		"status":   valueOr(params.Status, metadomain.StatusPaused),
	}

	var created metadomain.CreatedObject
	if err := c.post(ctx, adAccountPath(adAccountID, "ads"), token, body, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (c *MetaClient) UpdateAd(ctx context.Context, token, adID string, params metadomain.AdParams) error {
	body := map[string]any{}
	if params.Name != "" {
		body["name"] = params.Name
	}
	if params.Status != "" {
		body["status"] = params.Status
	}

	return c.post(ctx, adID, token, body, nil)
}
