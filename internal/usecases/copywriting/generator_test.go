package copywriting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/llm"
	llmmocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var product = domain.ProductInfo{
	Name:     "Óculos de sol",
	Category: "Acessórios",
	Price:    "R$ 199,90",
	Benefits: []string{"UV400", "Leve"},
}

func newTestGenerator(t *testing.T) (*LLMGenerator, *llmmocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := llmmocks.NewMockClient(ctrl)
	return NewGenerator(client), client
}

func TestGenerateCompleteAdCopy(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		expected    *domain.AdCopy
		expectedErr error
	}{
		{
			name:     "resposta completa",
			response: `{"title":" Veja melhor ","body":"Proteção UV400 com estilo","callToAction":"shop_now"}`,
			expected: &domain.AdCopy{Title: "Veja melhor", Body: "Proteção UV400 com estilo", CallToAction: domain.CTAShopNow},
		},
		{
			name:     "CTA fora do vocabulário vira LEARN_MORE",
			response: `{"title":"Veja melhor","body":"UV400","callToAction":"BUY_IT"}`,
			expected: &domain.AdCopy{Title: "Veja melhor", Body: "UV400", CallToAction: domain.CTALearnMore},
		},
		{
			name:        "título vazio",
			response:    `{"title":"","body":"UV400","callToAction":"SHOP_NOW"}`,
			expectedErr: ErrIncompleteCopy,
		},
		{
			name:        "JSON inválido não é reparado",
			response:    `{"title":"Veja melhor"`,
			expectedErr: ErrMalformedCopy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, client := newTestGenerator(t)

			client.EXPECT().Complete(gomock.Any(), gomock.Any(), adCopySchema).
				DoAndReturn(func(_ context.Context, messages []llm.Message, schema *llm.Schema) (string, error) {
					require.Len(t, messages, 2)
					assert.Equal(t, llm.RoleSystem, messages[0].Role)
					assert.Contains(t, messages[1].Content, "Produto: Óculos de sol")
					assert.Contains(t, messages[1].Content, "Benefícios: UV400, Leve")
					assert.Equal(t, "ad_copy", schema.Name)
					return tt.response, nil
				})

			adCopy, err := gen.GenerateCompleteAdCopy(context.Background(), product)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, adCopy)
			assert.True(t, domain.IsValidCallToAction(string(adCopy.CallToAction)))
		})
	}
}

func TestGenerateVariations_Sequential(t *testing.T) {
	gen, client := newTestGenerator(t)

	var events []string
	gen.sleep = func(_ context.Context, d time.Duration) error {
		assert.Equal(t, 500*time.Millisecond, d)
		events = append(events, "sleep")
		return nil
	}

	client.EXPECT().Complete(gomock.Any(), gomock.Any(), adCopySchema).
		DoAndReturn(func(context.Context, []llm.Message, *llm.Schema) (string, error) {
			events = append(events, "call")
			return `{"title":"T","body":"B","callToAction":"SUBSCRIBE"}`, nil
		}).Times(3)

	variations, err := gen.GenerateVariations(context.Background(), product, 3)

	require.NoError(t, err)
	assert.Len(t, variations, 3)
	assert.Equal(t, []string{"call", "sleep", "call", "sleep", "call"}, events)
}

func TestGenerateVariations_ContextCancelled(t *testing.T) {
	gen, client := newTestGenerator(t)

	ctx, cancel := context.WithCancel(context.Background())
	client.EXPECT().Complete(gomock.Any(), gomock.Any(), adCopySchema).
		DoAndReturn(func(context.Context, []llm.Message, *llm.Schema) (string, error) {
			cancel()
			return `{"title":"T","body":"B","callToAction":"SUBSCRIBE"}`, nil
		}).Times(1)

	_, err := gen.GenerateVariations(ctx, product, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateCallToAction(t *testing.T) {
	gen, client := newTestGenerator(t)

	client.EXPECT().Complete(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, messages []llm.Message, _ *llm.Schema) (string, error) {
			for _, cta := range domain.CallToActions {
				assert.Contains(t, messages[1].Content, string(cta))
			}
			return " get_offer\n", nil
		})

	cta, err := gen.GenerateCallToAction(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, domain.CTAGetOffer, cta)
}

func TestGenerateTitle_PropagatesClientError(t *testing.T) {
	gen, client := newTestGenerator(t)
	client.EXPECT().Complete(gomock.Any(), gomock.Any(), nil).Return("", llm.ErrEmptyCompletion)

	_, err := gen.GenerateTitle(context.Background(), product)
	assert.True(t, errors.Is(err, llm.ErrEmptyCompletion))
}

func TestOptimizeAdCopy(t *testing.T) {
	gen, client := newTestGenerator(t)

	client.EXPECT().Complete(gomock.Any(), gomock.Any(), optimizedCopySchema).
		DoAndReturn(func(_ context.Context, messages []llm.Message, _ *llm.Schema) (string, error) {
			assert.Contains(t, messages[1].Content, "Título: Óculos")
			assert.Contains(t, messages[1].Content, "Descrição: Compre já")
			return `{"title":"Enxergue o verão","body":"UV400 e frete grátis","callToAction":"SHOP_NOW","improvements":"Mais urgência"}`, nil
		})

	optimized, err := gen.OptimizeAdCopy(context.Background(), "Óculos", "Compre já", product)
	require.NoError(t, err)
	assert.Equal(t, "Enxergue o verão", optimized.Title)
	assert.Equal(t, "Mais urgência", optimized.Improvements)
}
