package copywriting

import (
	"context"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// VariationDelay separa as chamadas sequenciais de GenerateVariations.
const VariationDelay = 500 * time.Millisecond

var (
	ErrIncompleteCopy = errors.New("IA retornou anúncio sem título ou descrição")
	ErrMalformedCopy  = errors.New("IA retornou JSON inválido")
)

type Generator interface {
	GenerateTitle(ctx context.Context, product domain.ProductInfo) (string, error)
	GenerateDescription(ctx context.Context, product domain.ProductInfo) (string, error)
	GenerateCallToAction(ctx context.Context, product domain.ProductInfo) (domain.CallToAction, error)
	GenerateCompleteAdCopy(ctx context.Context, product domain.ProductInfo) (*domain.AdCopy, error)
	GenerateVariations(ctx context.Context, product domain.ProductInfo, count int) ([]*domain.AdCopy, error)
	OptimizeAdCopy(ctx context.Context, currentTitle, currentBody string, product domain.ProductInfo) (*domain.OptimizedAdCopy, error)
}

type LLMGenerator struct {
	client llm.Client
	// sleep respeita o ctx; substituído nos testes
	sleep func(ctx context.Context, d time.Duration) error
}

var _ Generator = (*LLMGenerator)(nil)

func NewGenerator(client llm.Client) *LLMGenerator {
	return &LLMGenerator{
		client: client,
		sleep:  sleepContext,
	}
}

func (g *LLMGenerator) GenerateTitle(ctx context.Context, product domain.ProductInfo) (string, error) {
	text, err := g.client.Complete(ctx, titlePrompt(product), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *LLMGenerator) GenerateDescription(ctx context.Context, product domain.ProductInfo) (string, error) {
	text, err := g.client.Complete(ctx, descriptionPrompt(product), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *LLMGenerator) GenerateCallToAction(ctx context.Context, product domain.ProductInfo) (domain.CallToAction, error) {
	text, err := g.client.Complete(ctx, callToActionPrompt(product), nil)
	if err != nil {
		return "", err
	}
	return domain.NormalizeCallToAction(text), nil
}

func (g *LLMGenerator) GenerateCompleteAdCopy(ctx context.Context, product domain.ProductInfo) (*domain.AdCopy, error) {
	text, err := g.client.Complete(ctx, completeCopyPrompt(product), adCopySchema)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Title        string `json:"title"`
		Body         string `json:"body"`
		CallToAction string `json:"callToAction"`
	}
	if err := json.UnmarshalFromString(text, &raw); err != nil {
		return nil, errors.Wrap(ErrMalformedCopy, err.Error())
	}

	return buildCopy(raw.Title, raw.Body, raw.CallToAction)
}

// GenerateVariations gera as variações uma por vez, com VariationDelay entre
// chamadas e nenhuma espera depois da última.
func (g *LLMGenerator) GenerateVariations(ctx context.Context, product domain.ProductInfo, count int) ([]*domain.AdCopy, error) {
	variations := make([]*domain.AdCopy, 0, count)

	for i := 0; i < count; i++ {
		variation, err := g.GenerateCompleteAdCopy(ctx, product)
		if err != nil {
			return nil, errors.Wrapf(err, "erro na variação %d de %d", i+1, count)
		}
		variations = append(variations, variation)

		if i < count-1 {
			if err := g.sleep(ctx, VariationDelay); err != nil {
				return nil, err
			}
		}
	}

	logrus.WithField("count", count).Debug("Variações de anúncio geradas")
	return variations, nil
}

func (g *LLMGenerator) OptimizeAdCopy(ctx context.Context, currentTitle, currentBody string, product domain.ProductInfo) (*domain.OptimizedAdCopy, error) {
	text, err := g.client.Complete(ctx, optimizePrompt(currentTitle, currentBody, product), optimizedCopySchema)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Title        string `json:"title"`
		Body         string `json:"body"`
		CallToAction string `json:"callToAction"`
		Improvements string `json:"improvements"`
	}
	if err := json.UnmarshalFromString(text, &raw); err != nil {
		return nil, errors.Wrap(ErrMalformedCopy, err.Error())
	}

	adCopy, err := buildCopy(raw.Title, raw.Body, raw.CallToAction)
	if err != nil {
		return nil, err
	}

	return &domain.OptimizedAdCopy{
		AdCopy:       *adCopy,
		Improvements: strings.TrimSpace(raw.Improvements),
	}, nil
}

func buildCopy(title, body, cta string) (*domain.AdCopy, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, ErrIncompleteCopy
	}

	return &domain.AdCopy{
		Title:        title,
		Body:         body,
		CallToAction: domain.NormalizeCallToAction(cta),
	}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
