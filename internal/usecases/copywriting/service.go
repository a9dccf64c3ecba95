package copywriting

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

const (
	DefaultVariations = 3
	MaxVariations     = 5
)

type Copywriter interface {
	Title(ctx context.Context, userID int, product domain.ProductInfo) (*domain.TextResponse, error)
	Description(ctx context.Context, userID int, product domain.ProductInfo) (*domain.TextResponse, error)
	CallToAction(ctx context.Context, userID int, product domain.ProductInfo) (*domain.TextResponse, error)
	Complete(ctx context.Context, userID int, product domain.ProductInfo) (*domain.AdCopy, error)
	Variations(ctx context.Context, userID int, req domain.VariationsRequest) ([]*domain.AdCopy, error)
	Optimize(ctx context.Context, userID int, req domain.OptimizeRequest) (*domain.OptimizedAdCopy, error)
}

// Quota é a parte da assinatura que controla as gerações com IA.
type Quota interface {
	CanUseAI(ctx context.Context, userID int) (*domain.CanUseAIResponse, error)
	RecordAIGenerations(ctx context.Context, userID, amount int) error
}

type Service struct {
	generator Generator
	quota     Quota
}

func NewService(generator Generator, quota Quota) Copywriter {
	return &Service{
		generator: generator,
		quota:     quota,
	}
}

func (s *Service) Title(ctx context.Context, userID int, product domain.ProductInfo) (*domain.TextResponse, error) {
	var title string
	err := s.withQuota(ctx, userID, product, 1, func() (err error) {
		title, err = s.generator.GenerateTitle(ctx, product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &domain.TextResponse{Text: title}, nil
}

func (s *Service) Description(ctx context.Context, userID int, product domain.ProductInfo) (*domain.TextResponse, error) {
	var description string
	err := s.withQuota(ctx, userID, product, 1, func() (err error) {
		description, err = s.generator.GenerateDescription(ctx, product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &domain.TextResponse{Text: description}, nil
}

func (s *Service) CallToAction(ctx context.Context, userID int, product domain.ProductInfo) (*domain.TextResponse, error) {
	var cta domain.CallToAction
	err := s.withQuota(ctx, userID, product, 1, func() (err error) {
		cta, err = s.generator.GenerateCallToAction(ctx, product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &domain.TextResponse{Text: string(cta)}, nil
}

func (s *Service) Complete(ctx context.Context, userID int, product domain.ProductInfo) (*domain.AdCopy, error) {
	var adCopy *domain.AdCopy
	err := s.withQuota(ctx, userID, product, 1, func() (err error) {
		adCopy, err = s.generator.GenerateCompleteAdCopy(ctx, product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return adCopy, nil
}

// Variations consome uma geração por variação pedida.
func (s *Service) Variations(ctx context.Context, userID int, req domain.VariationsRequest) ([]*domain.AdCopy, error) {
	count := req.Count
	if count == 0 {
		count = DefaultVariations
	}
	if count < 1 || count > MaxVariations {
		return nil, NewCopyError(ErrInvalidCount, errorcodes.ErrInvalidRequest, userID, fmt.Sprintf("recebido %d", req.Count))
	}

	var variations []*domain.AdCopy
	err := s.withQuota(ctx, userID, req.Product, count, func() (err error) {
		variations, err = s.generator.GenerateVariations(ctx, req.Product, count)
		return err
	})
	if err != nil {
		return nil, err
	}
	return variations, nil
}

func (s *Service) Optimize(ctx context.Context, userID int, req domain.OptimizeRequest) (*domain.OptimizedAdCopy, error) {
	if strings.TrimSpace(req.CurrentTitle) == "" || strings.TrimSpace(req.CurrentBody) == "" {
		return nil, NewCopyError(ErrMissingCurrentCopy, errorcodes.ErrMissingRequiredData, userID, "")
	}

	var optimized *domain.OptimizedAdCopy
	err := s.withQuota(ctx, userID, req.Product, 1, func() (err error) {
		optimized, err = s.generator.OptimizeAdCopy(ctx, req.CurrentTitle, req.CurrentBody, req.Product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return optimized, nil
}

// withQuota verifica a cota, executa a geração e só então contabiliza.
// Falhas na geração não consomem cota.
func (s *Service) withQuota(ctx context.Context, userID int, product domain.ProductInfo, amount int, generate func() error) error {
	if strings.TrimSpace(product.Name) == "" {
		return NewCopyError(ErrInvalidProduct, errorcodes.ErrMissingRequiredData, userID, "")
	}

	check, err := s.quota.CanUseAI(ctx, userID)
	if err != nil {
		return err
	}
	if !check.CanUse {
		return denied(userID, check)
	}

	if check.Used != nil && check.Limit != nil && *check.Used+amount > *check.Limit {
		return NewCopyError(ErrLimitReached, errorcodes.ErrPlanLimitReached, userID,
			fmt.Sprintf("restam %d gerações", *check.Limit-*check.Used))
	}

	if err := generate(); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao gerar conteúdo com IA")
		return NewCopyError(ErrGeneration, errorcodes.ErrExternalService, userID, err.Error())
	}

	if err := s.quota.RecordAIGenerations(ctx, userID, amount); err != nil {
		// o conteúdo já foi gerado; a falha no contador não invalida a resposta
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  amount,
		}).Error("Erro ao contabilizar gerações com IA")
	}

	return nil
}

func denied(userID int, check *domain.CanUseAIResponse) error {
	if check.Reason == domain.ReasonLimitReached {
		return NewCopyError(ErrLimitReached, errorcodes.ErrPlanLimitReached, userID, "")
	}
	return NewCopyError(ErrNoSubscription, errorcodes.ErrNoSubscription, userID, string(check.Reason))
}
