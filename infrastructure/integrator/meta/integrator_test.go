package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMetaIntegrator_StatusChanges(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		call     func(s *MetaIntegrator) error
		expected error
	}{
		{
			name: "ativar campanha envia status em maiúsculas",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					UpdateCampaign(gomock.Any(), "tok", "cmp_1", metadomain.CampaignParams{Status: "ACTIVE"}).
					Return(nil)
			},
			call: func(s *MetaIntegrator) error {
				return s.UpdateCampaignStatus(context.Background(), "tok", "cmp_1", domain.StatusActive)
			},
		},
		{
			name: "pausar anúncio",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					UpdateAd(gomock.Any(), "tok", "ad_1", metadomain.AdParams{Status: "PAUSED"}).
					Return(nil)
			},
			call: func(s *MetaIntegrator) error {
				return s.UpdateAdStatus(context.Background(), "tok", "ad_1", domain.StatusPaused)
			},
		},
		{
			name: "excluir conjunto usa delete",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Delete(gomock.Any(), "tok", "set_1").Return(nil)
			},
			call: func(s *MetaIntegrator) error {
				return s.DeleteAdSet(context.Background(), "tok", "set_1")
			},
		},
		{
			name: "erro do cliente é propagado",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().Delete(gomock.Any(), "tok", "ad_2").Return(errBoom)
			},
			call: func(s *MetaIntegrator) error {
				return s.DeleteAd(context.Background(), "tok", "ad_2")
			},
			expected: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			err := tt.call(New(client))
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			assert.NoError(t, err)
		})
	}
}

var errBoom = errors.New("boom")

func TestMetaIntegrator_ExchangeToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		ExchangeToken(gomock.Any(), "short").
		Return(&metadomain.TokenResponse{AccessToken: "long", ExpiresIn: 3600}, nil)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := New(client)
	s.now = func() time.Time { return now }

	token, err := s.ExchangeToken(context.Background(), "short")
	require.NoError(t, err)
	assert.Equal(t, "long", token.AccessToken)
	require.NotNil(t, token.ExpiresAt)
	// validade curta: metade do prazo informado
	assert.Equal(t, now.Add(30*time.Minute), *token.ExpiresAt)
}

func TestMetaIntegrator_CreateCampaignStartsPaused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		CreateCampaign(gomock.Any(), "tok", "act_123", metadomain.CampaignParams{
			Name:      "Black Friday",
			Objective: "OUTCOME_TRAFFIC",
			Status:    metadomain.StatusPaused,
		}).
		Return("cmp_9", nil)

	id, err := New(client).CreateCampaign(context.Background(), "tok", "act_123", &domain.Campaign{
		Name:      "Black Friday",
		Objective: "OUTCOME_TRAFFIC",
	})
	require.NoError(t, err)
	assert.Equal(t, "cmp_9", id)
}

func TestIsTokenExpired(t *testing.T) {
	expired := &metadomain.APIError{StatusCode: 400, Details: metadomain.ErrorDetails{Code: 190, Type: "OAuthException"}}
	other := &metadomain.APIError{StatusCode: 400, Details: metadomain.ErrorDetails{Code: 100}}

	assert.True(t, IsTokenExpired(expired))
	assert.True(t, IsTokenExpired(errors.Join(errBoom, expired)))
	assert.False(t, IsTokenExpired(other))
	assert.False(t, IsTokenExpired(errBoom))
}
