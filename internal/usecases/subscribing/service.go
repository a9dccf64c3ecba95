package subscribing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/cache"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing"
	billingdomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/billing/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/messaging"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

type Subscriber interface {
	GetPlans(ctx context.Context) ([]*domain.SubscriptionPlan, error)
	GetCurrent(ctx context.Context, userID int) (*domain.CurrentSubscription, error)
	CanUseAI(ctx context.Context, userID int) (*domain.CanUseAIResponse, error)
	RecordAIGenerations(ctx context.Context, userID, amount int) error
	CreateCheckout(ctx context.Context, userID int, req domain.CheckoutRequest) (*domain.CheckoutResponse, error)
	Cancel(ctx context.Context, userID int) (*domain.UserSubscription, error)
	HandleWebhook(ctx context.Context, payload []byte, headers http.Header) error
	ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int, error)
	CanCreateCampaign(ctx context.Context, userID int) error
	CanCreateAd(ctx context.Context, userID, campaignID int) error
}

type Service struct {
	planRepo     repository.PlanRepository
	subRepo      repository.SubscriptionRepository
	userRepo     repository.UserRepository
	campaignRepo repository.CampaignRepository
	adRepo       repository.AdRepository
	provider     billing.Provider
	cache        cache.Cache
	publisher    messaging.Publisher
	cfg          *config.Config
	now          func() time.Time
}

func NewService(
	planRepo repository.PlanRepository,
	subRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
	campaignRepo repository.CampaignRepository,
	adRepo repository.AdRepository,
	provider billing.Provider,
	c cache.Cache,
	publisher messaging.Publisher,
	cfg *config.Config,
) *Service {
	return &Service{
		planRepo:     planRepo,
		subRepo:      subRepo,
		userRepo:     userRepo,
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
		provider:     provider,
		cache:        c,
		publisher:    publisher,
		cfg:          cfg,
		now:          time.Now,
	}
}

var _ Subscriber = (*Service)(nil)

func (s *Service) GetPlans(ctx context.Context) ([]*domain.SubscriptionPlan, error) {
	plans, err := s.planRepo.ListActivePlans(ctx)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}
	return plans, nil
}

// GetCurrent devolve nil quando o usuário nunca concluiu um checkout.
func (s *Service) GetCurrent(ctx context.Context, userID int) (*domain.CurrentSubscription, error) {
	sub, err := s.subRepo.GetCurrentByUser(ctx, userID)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}
	if sub == nil {
		return nil, nil
	}

	plan, err := s.planRepo.GetPlanByID(ctx, sub.PlanID)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}

	return &domain.CurrentSubscription{UserSubscription: sub, Plan: plan}, nil
}

func (s *Service) CanUseAI(ctx context.Context, userID int) (*domain.CanUseAIResponse, error) {
	current, err := s.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if current == nil {
		return &domain.CanUseAIResponse{CanUse: false, Reason: domain.ReasonNoSubscription}, nil
	}

	if current.Plan == nil {
		return &domain.CanUseAIResponse{CanUse: false, Reason: domain.ReasonInvalidPlan}, nil
	}

	if !isEntitled(current.Status) {
		return &domain.CanUseAIResponse{CanUse: false, Reason: domain.ReasonInactiveSubscription}, nil
	}

	used := current.AIGenerationsUsed
	limit := current.Plan.AIGenerationsPerMonth

	if used >= limit {
		return &domain.CanUseAIResponse{CanUse: false, Reason: domain.ReasonLimitReached, Used: &used, Limit: &limit}, nil
	}

	return &domain.CanUseAIResponse{CanUse: true, Used: &used, Limit: &limit}, nil
}

func (s *Service) RecordAIGenerations(ctx context.Context, userID, amount int) error {
	sub, err := s.subRepo.GetCurrentByUser(ctx, userID)
	if err != nil {
		return NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}
	if sub == nil {
		return NewSubscriptionError(ErrNoSubscription, errorcodes.ErrNoSubscription, userID, "")
	}

	if err := s.subRepo.IncrementAIGenerations(ctx, sub.ID, amount); err != nil {
		return NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}

	return nil
}

// CreateCheckout grava a assinatura pendente antes de chamar o provedor.
// Se o provedor falhar a linha vira failed; se der certo guarda a referência do checkout.
func (s *Service) CreateCheckout(ctx context.Context, userID int, req domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	plan, err := s.planRepo.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}
	if plan == nil || !plan.Active {
		return nil, NewSubscriptionError(ErrPlanNotFound, errorcodes.ErrInvalidPlan, userID, fmt.Sprintf("plano %d", req.PlanID))
	}

	current, err := s.subRepo.GetCurrentByUser(ctx, userID)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}
	if current != nil && current.PlanID == plan.ID && isEntitled(current.Status) {
		return nil, NewSubscriptionError(ErrAlreadySubscribed, errorcodes.ErrSubscriptionActive, userID, "")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}
	if user == nil {
		return nil, NewSubscriptionError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "")
	}

	idempotencyKey, err := utils.IdempotencyKey(fmt.Sprintf("checkout_%d_%d", userID, plan.ID))
	if err != nil {
		return nil, err
	}

	pending, err := s.subRepo.Create(ctx, &domain.UserSubscription{
		UserID:   userID,
		PlanID:   plan.ID,
		Provider: s.provider.Name(),
		Status:   domain.SubscriptionPending,
	})
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}

	origin := req.Origin
	if origin == "" {
		origin = s.cfg.Billing.AppURL
	}

	session, err := s.provider.CreateCheckout(ctx, billingdomain.CheckoutRequest{
		UserID:         userID,
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		PriceCents:     plan.PriceMonthly,
		CustomerEmail:  user.Email,
		CustomerName:   user.Name,
		Origin:         origin,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		pending.Status = domain.SubscriptionFailed
		if updErr := s.subRepo.Update(ctx, pending); updErr != nil {
			logrus.WithError(updErr).WithField("subscription_id", pending.ID).Error("Erro ao marcar checkout como falho")
		}
		return nil, NewSubscriptionError(ErrProvider, errorcodes.ErrExternalService, userID, err.Error())
	}

	pending.CheckoutReference = &session.Reference
	if session.SubscriptionID != "" {
		pending.ExternalSubscriptionID = &session.SubscriptionID
	}

	// O checkout já existe no provedor: a reconciliação ainda encontra a linha pelo par usuário/plano.
	if err := s.subRepo.Update(ctx, pending); err != nil {
		logrus.WithError(err).WithField("subscription_id", pending.ID).Error("Erro ao salvar referência do checkout")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"plan_id":  plan.ID,
		"provider": s.provider.Name(),
	}).Info("Checkout criado")

	return &domain.CheckoutResponse{URL: session.URL}, nil
}

func (s *Service) Cancel(ctx context.Context, userID int) (*domain.UserSubscription, error) {
	sub, err := s.subRepo.GetCurrentByUser(ctx, userID)
	if err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}
	if sub == nil || sub.Status == domain.SubscriptionCanceled || sub.ExternalSubscriptionID == nil {
		return nil, NewSubscriptionError(ErrNoSubscription, errorcodes.ErrNoSubscription, userID, "")
	}

	if err := s.provider.CancelSubscription(ctx, *sub.ExternalSubscriptionID); err != nil {
		return nil, NewSubscriptionError(ErrProvider, errorcodes.ErrExternalService, userID, err.Error())
	}

	sub.CancelAtPeriodEnd = true
	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}

	return sub, nil
}

func (s *Service) CanCreateCampaign(ctx context.Context, userID int) error {
	current, err := s.entitledSubscription(ctx, userID)
	if err != nil {
		return err
	}

	count, err := s.campaignRepo.CountActiveByUser(ctx, userID)
	if err != nil {
		return NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}

	if count >= current.Plan.MaxCampaigns {
		return NewSubscriptionError(ErrPlanLimitReached, errorcodes.ErrPlanLimitReached, userID,
			fmt.Sprintf("o plano %s permite %d campanhas", current.Plan.Name, current.Plan.MaxCampaigns))
	}

	return nil
}

func (s *Service) CanCreateAd(ctx context.Context, userID, campaignID int) error {
	current, err := s.entitledSubscription(ctx, userID)
	if err != nil {
		return err
	}

	count, err := s.adRepo.CountByCampaign(ctx, campaignID)
	if err != nil {
		return NewSubscriptionError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, err.Error())
	}

	if count >= current.Plan.MaxAdsPerCampaign {
		return NewSubscriptionError(ErrPlanLimitReached, errorcodes.ErrPlanLimitReached, userID,
			fmt.Sprintf("o plano %s permite %d anúncios por campanha", current.Plan.Name, current.Plan.MaxAdsPerCampaign))
	}

	return nil
}

func (s *Service) entitledSubscription(ctx context.Context, userID int) (*domain.CurrentSubscription, error) {
	current, err := s.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if current == nil || current.Plan == nil || !isEntitled(current.Status) {
		return nil, NewSubscriptionError(ErrNoSubscription, errorcodes.ErrNoSubscription, userID, "")
	}

	return current, nil
}

// isEntitled indica se o status libera os recursos do plano.
func isEntitled(status domain.SubscriptionStatus) bool {
	return status == domain.SubscriptionActive || status == domain.SubscriptionTrialing
}
