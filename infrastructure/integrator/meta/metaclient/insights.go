package metaclient

import (
	"context"
	"net/url"
	"strings"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

type insightsResponse struct {
	Data   []metadomain.Insight `json:"data"`
	Paging metadomain.Paging    `json:"paging"`
}

func (c *MetaClient) GetInsights(ctx context.Context, token, objectID, datePreset string, fields []string) ([]metadomain.Insight, error) {
	if datePreset == "" {
		datePreset = "lifetime"
	}

	params := url.Values{}
	params.Add("date_preset", datePreset)
	params.Add("fields", strings.Join(fields, ","))

	var resp insightsResponse
	if err := c.get(ctx, objectID+"/insights", token, params, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}
