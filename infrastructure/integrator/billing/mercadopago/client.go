package mercadopago

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError é devolvido para respostas não-2xx da API do Mercado Pago.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Code       string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Mercado Pago API Error: %s (Status: %d)", e.Message, e.StatusCode)
}

// hostRequester aponta as chamadas do SDK para MERCADOPAGO_BASE_URL.
type hostRequester struct {
	base *url.URL
	http *http.Client
}

func (r *hostRequester) Do(req *http.Request) (*http.Response, error) {
	if r.base != nil {
		req.URL.Scheme = r.base.Scheme
		req.URL.Host = r.base.Host
		req.Host = r.base.Host
		req.URL.Path = strings.TrimRight(r.base.Path, "/") + req.URL.Path
	}
	return r.http.Do(req)
}

func newPreapprovalClient(baseURL, accessToken string) (preapproval.Client, error) {
	requester := &hostRequester{http: &http.Client{Timeout: 30 * time.Second}}

	if baseURL != "" {
		base, err := url.Parse(baseURL)
		if err != nil {
			return nil, errors.Wrap(err, "URL base do Mercado Pago inválida")
		}
		requester.base = base
	}

	cfg, err := mpconfig.New(accessToken, mpconfig.WithHTTPClient(requester))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao configurar SDK do Mercado Pago")
	}

	return preapproval.NewClient(cfg), nil
}

// apiError converte o erro do SDK, extraindo a mensagem do corpo JSON.
func apiError(err error, op string) error {
	var respErr *mperror.ResponseError
	if !errors.As(err, &respErr) {
		logrus.WithError(err).WithField("op", op).Error("Erro na requisição ao Mercado Pago")
		return err
	}

	apiErr := &APIError{StatusCode: respErr.StatusCode}
	if jsonErr := json.Unmarshal([]byte(respErr.Message), apiErr); jsonErr != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(respErr.Message)
	}

	logrus.WithFields(logrus.Fields{
		"status": respErr.StatusCode,
		"op":     op,
	}).Error(apiErr.Error())

	return apiErr
}
