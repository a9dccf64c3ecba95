package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

type adAccountsResponse struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// TODO seguir paging.next quando o usuário tiver mais de 100 contas
func (c *MetaClient) GetAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name,account_status")
	params.Add("limit", "100")

	var resp adAccountsResponse
	if err := c.get(ctx, "me/adaccounts", token, params, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *MetaClient) GetAdAccount(ctx context.Context, token, adAccountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name,currency,timezone_name")

	var account metadomain.AdAccount
	if err := c.get(ctx, adAccountPath(adAccountID, ""), token, params, &account); err != nil {
		return nil, err
	}

	return &account, nil
}
