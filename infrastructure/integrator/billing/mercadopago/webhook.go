package mercadopago

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
)

// ParseWebhook classifica a notificação; tipos desconhecidos devolvem nil.
func (p *Provider) ParseWebhook(_ context.Context, payload []byte, headers http.Header) (*billingdomain.WebhookEvent, error) {
	var n notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, errors.Wrap(billingdomain.ErrInvalidPayload, err.Error())
	}

	if p.webhookSecret != "" && !p.validSignature(headers, n.Data.ID) {
		logrus.WithField("type", n.Type).Warn("mercadopago: assinatura de webhook inválida")
		return nil, billingdomain.ErrInvalidSignature
	}

	event := &billingdomain.WebhookEvent{ID: notificationID(n)}

	switch n.Type {
	case "subscription_authorized", "subscription_preapproval":
		event.Type = billingdomain.EventSubscriptionAuthorized
		event.SubscriptionID = n.Data.ID
	case "subscription_paused":
		event.Type = billingdomain.EventSubscriptionPaused
		event.SubscriptionID = n.Data.ID
		event.Status = billingdomain.StatusPaused
	case "subscription_cancelled":
		event.Type = billingdomain.EventSubscriptionCancelled
		event.SubscriptionID = n.Data.ID
		event.Status = billingdomain.StatusCanceled
	case "payment":
		event.Type = billingdomain.EventPayment
		event.PaymentID = n.Data.ID
		event.SubscriptionID = n.Data.PreapprovalID
	default:
		logrus.WithField("type", n.Type).Debug("mercadopago: evento de webhook ignorado")
		return nil, nil
	}

	return event, nil
}

func notificationID(n notification) string {
	switch v := n.ID.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%s:%s", n.Type, n.Data.ID)
}

// validSignature confere o x-signature (ts=...,v1=...) com HMAC-SHA256.
func (p *Provider) validSignature(headers http.Header, dataID string) bool {
	var ts, v1 string
	for _, part := range strings.Split(headers.Get("x-signature"), ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "ts":
			ts = kv[1]
		case "v1":
			v1 = kv[1]
		}
	}
	if ts == "" || v1 == "" {
		return false
	}

	expected := Sign(p.webhookSecret, dataID, headers.Get("x-request-id"), ts)
	return hmac.Equal([]byte(expected), []byte(v1))
}

// Sign gera o v1 esperado para o manifesto id;request-id;ts.
func Sign(secret, dataID, requestID, ts string) string {
	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", strings.ToLower(dataID), requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}
