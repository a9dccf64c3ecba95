package copywriting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/copywriting/mocks"
	submocks "github.com/vfg2006/ads-manager-api/internal/usecases/subscribing/mocks"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newTestService(t *testing.T) (Copywriter, *mocks.MockGenerator, *submocks.MockSubscriber) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	quota := submocks.NewMockSubscriber(ctrl)
	return NewService(gen, quota), gen, quota
}

func TestComplete_QuotaGate(t *testing.T) {
	tests := []struct {
		name        string
		check       *domain.CanUseAIResponse
		generateErr error
		expectGen   bool
		expectCount bool
		expectedErr error
	}{
		{
			name:        "liberado gera e contabiliza",
			check:       &domain.CanUseAIResponse{CanUse: true, Used: ptr(3), Limit: ptr(50)},
			expectGen:   true,
			expectCount: true,
		},
		{
			name:        "limite atingido não gera",
			check:       &domain.CanUseAIResponse{CanUse: false, Reason: domain.ReasonLimitReached, Used: ptr(50), Limit: ptr(50)},
			expectedErr: ErrLimitReached,
		},
		{
			name:        "sem assinatura",
			check:       &domain.CanUseAIResponse{CanUse: false, Reason: domain.ReasonNoSubscription},
			expectedErr: ErrNoSubscription,
		},
		{
			name:        "falha na geração não consome cota",
			check:       &domain.CanUseAIResponse{CanUse: true, Used: ptr(3), Limit: ptr(50)},
			generateErr: errors.New("openai fora do ar"),
			expectGen:   true,
			expectedErr: ErrGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gen, quota := newTestService(t)

			quota.EXPECT().CanUseAI(gomock.Any(), 1).Return(tt.check, nil)
			if tt.expectGen {
				var out *domain.AdCopy
				if tt.generateErr == nil {
					out = &domain.AdCopy{Title: "T", Body: "B", CallToAction: domain.CTAShopNow}
				}
				gen.EXPECT().GenerateCompleteAdCopy(gomock.Any(), product).Return(out, tt.generateErr)
			}
			if tt.expectCount {
				quota.EXPECT().RecordAIGenerations(gomock.Any(), 1, 1).Return(nil)
			}

			adCopy, err := svc.Complete(context.Background(), 1, product)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "T", adCopy.Title)
		})
	}
}

func TestVariations_CountsEachVariation(t *testing.T) {
	svc, gen, quota := newTestService(t)

	quota.EXPECT().CanUseAI(gomock.Any(), 1).Return(&domain.CanUseAIResponse{CanUse: true, Used: ptr(10), Limit: ptr(50)}, nil)
	gen.EXPECT().GenerateVariations(gomock.Any(), product, 4).Return(make([]*domain.AdCopy, 4), nil)
	quota.EXPECT().RecordAIGenerations(gomock.Any(), 1, 4).Return(nil)

	variations, err := svc.Variations(context.Background(), 1, domain.VariationsRequest{Product: product, Count: 4})
	require.NoError(t, err)
	assert.Len(t, variations, 4)
}

func TestVariations_NotEnoughQuotaLeft(t *testing.T) {
	svc, _, quota := newTestService(t)

	quota.EXPECT().CanUseAI(gomock.Any(), 1).Return(&domain.CanUseAIResponse{CanUse: true, Used: ptr(48), Limit: ptr(50)}, nil)

	_, err := svc.Variations(context.Background(), 1, domain.VariationsRequest{Product: product, Count: 3})
	assert.ErrorIs(t, err, ErrLimitReached)
}

func TestVariations_InvalidCount(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Variations(context.Background(), 1, domain.VariationsRequest{Product: product, Count: 9})
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestTitle_RequiresProductName(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Title(context.Background(), 1, domain.ProductInfo{})
	assert.ErrorIs(t, err, ErrInvalidProduct)
}
