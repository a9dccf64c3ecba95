package metaclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	CreateCampaign(ctx context.Context, token, adAccountID string, params metadomain.CampaignParams) (string, error)
	UpdateCampaign(ctx context.Context, token, campaignID string, params metadomain.CampaignParams) error
	GetCampaign(ctx context.Context, token, campaignID string) (*metadomain.Campaign, error)
	CreateAdSet(ctx context.Context, token, adAccountID string, params metadomain.AdSetParams) (string, error)
	UpdateAdSet(ctx context.Context, token, adSetID string, params metadomain.AdSetParams) error
	CreateAdCreative(ctx context.Context, token, adAccountID string, params metadomain.AdCreativeParams) (string, error)
	UploadImage(ctx context.Context, token, adAccountID, imageURL string) (string, error)
	UploadVideo(ctx context.Context, token, adAccountID, videoURL string) (string, error)
	CreateAd(ctx context.Context, token, adAccountID string, params metadomain.AdParams) (string, error)
	UpdateAd(ctx context.Context, token, adID string, params metadomain.AdParams) error
	Delete(ctx context.Context, token, objectID string) error
	GetInsights(ctx context.Context, token, objectID, datePreset string, fields []string) ([]metadomain.Insight, error)
	GetAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, error)
	GetAdAccount(ctx context.Context, token, adAccountID string) (*metadomain.AdAccount, error)
	ExchangeToken(ctx context.Context, shortLivedToken string) (*metadomain.TokenResponse, error)
}

type MetaClient struct {
	baseURL    string
	appID      string
	appSecret  string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *MetaClient {
	return &MetaClient{
		baseURL:   strings.TrimRight(cfg.Meta.URL, "/"),
		appID:     cfg.Meta.AppID,
		appSecret: cfg.Meta.AppSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get envia o token como query string.
func (c *MetaClient) get(ctx context.Context, path, token string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, strings.TrimLeft(path, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	return c.do(req, out)
}

// post envia o token no corpo JSON junto com os demais campos.
func (c *MetaClient) post(ctx context.Context, path, token string, body map[string]any, out any) error {
	if body == nil {
		body = map[string]any{}
	}
	body["access_token"] = token

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar corpo da requisição")
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *MetaClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", req.URL.Path).Error("Erro ao fazer a requisição")
		return errors.Wrap(err, "erro na requisição à API do Meta")
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return errors.Wrap(err, "erro ao decodificar resposta da API do Meta")
	}

	return nil
}

// HandleResponse lê o corpo e converte respostas não-2xx em *metadomain.APIError.
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		errResp.Error.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	apiErr := &metadomain.APIError{StatusCode: resp.StatusCode, Details: errResp.Error}

	entry := logrus.WithFields(logrus.Fields{
		"status":     resp.StatusCode,
		"code":       errResp.Error.Code,
		"subcode":    errResp.Error.ErrorSubcode,
		"fbtrace_id": errResp.Error.FBTraceID,
	})
	if apiErr.IsTokenExpired() {
		entry.Warn("Token do Meta expirado ou inválido")
	} else {
		entry.Error(apiErr.Error())
	}

	return nil, apiErr
}

// adAccountPath aceita o id com ou sem o prefixo act_.
func adAccountPath(adAccountID, edge string) string {
	id := strings.TrimPrefix(adAccountID, "act_")
	if edge == "" {
		return "act_" + id
	}
	return fmt.Sprintf("act_%s/%s", id, edge)
}

func (c *MetaClient) Delete(ctx context.Context, token, objectID string) error {
	return c.post(ctx, objectID, token, map[string]any{"status": metadomain.StatusDeleted}, nil)
}
