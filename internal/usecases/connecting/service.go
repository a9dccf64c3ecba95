package connecting

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

type Connector interface {
	List(ctx context.Context, userID int) ([]*domain.MetaAccount, error)
	ListAvailable(ctx context.Context, accessToken string) ([]domain.AdAccountInfo, error)
	Connect(ctx context.Context, userID int, req domain.ConnectMetaAccountRequest) (*domain.MetaAccount, error)
	Disconnect(ctx context.Context, userID, accountID int) error
}

type Service struct {
	metaAccountRepo repository.MetaAccountRepository
	metaService     meta.Integrator
}

func NewService(metaAccountRepo repository.MetaAccountRepository, metaService meta.Integrator) Connector {
	return &Service{
		metaAccountRepo: metaAccountRepo,
		metaService:     metaService,
	}
}

func (s *Service) List(ctx context.Context, userID int) ([]*domain.MetaAccount, error) {
	accounts, err := s.metaAccountRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}
	return accounts, nil
}

// ListAvailable lista as contas de anúncios que o token enxerga, antes de conectar.
func (s *Service) ListAvailable(ctx context.Context, accessToken string) ([]domain.AdAccountInfo, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, NewAccountError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, 0, "")
	}

	accounts, err := s.metaService.ListAdAccounts(ctx, accessToken)
	if err != nil {
		return nil, metaError(err, 0)
	}
	return accounts, nil
}

// Connect valida o token consultando a conta de anúncios e guarda a conexão.
// Quando o app Meta está configurado o token é trocado por um de longa duração.
func (s *Service) Connect(ctx context.Context, userID int, req domain.ConnectMetaAccountRequest) (*domain.MetaAccount, error) {
	accessToken := strings.TrimSpace(req.AccessToken)
	adAccountID := strings.TrimSpace(req.AdAccountID)
	if accessToken == "" || adAccountID == "" {
		return nil, NewAccountError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, 0, "")
	}

	info, err := s.metaService.GetAdAccount(ctx, accessToken, adAccountID)
	if err != nil {
		return nil, metaError(err, 0)
	}

	account := &domain.MetaAccount{
		UserID:      userID,
		AccessToken: accessToken,
		AdAccountID: adAccountID,
		Active:      true,
	}
	if info.ID != "" {
		account.MetaUserID = &info.ID
	}
	if info.Name != "" {
		account.AdAccountName = &info.Name
	}

	longLived, err := s.metaService.ExchangeToken(ctx, accessToken)
	switch {
	case err == nil:
		account.AccessToken = longLived.AccessToken
		account.TokenExpiresAt = longLived.ExpiresAt
	case errors.Is(err, metaclient.ErrTokenExchangeNotConfigured):
		logrus.Debug("Troca de token desabilitada, guardando token de curta duração")
	default:
		logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao trocar token da Meta, guardando token original")
	}

	account, err = s.metaAccountRepo.Create(ctx, account)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, 0, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id":       userID,
		"account_id":    account.ID,
		"ad_account_id": adAccountID,
	}).Info("Conta Meta conectada")

	return account, nil
}

// Disconnect desativa a conta; repetir a chamada mantém active=0 sem erro.
func (s *Service) Disconnect(ctx context.Context, userID, accountID int) error {
	account, err := s.metaAccountRepo.GetByID(ctx, accountID)
	if err != nil {
		return NewAccountError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, accountID, err.Error())
	}

	// conta de outro usuário responde como inexistente
	if account == nil || account.UserID != userID {
		return NewAccountError(ErrAccountNotFound, errorcodes.ErrResourceNotFound, accountID, "")
	}

	if err := s.metaAccountRepo.SetActive(ctx, accountID, false); err != nil {
		return NewAccountError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, accountID, err.Error())
	}

	return nil
}

func metaError(err error, accountID int) error {
	if meta.IsTokenExpired(err) {
		return NewAccountError(ErrInvalidMetaToken, errorcodes.ErrInvalidMetaToken, accountID, err.Error())
	}
	return NewAccountError(ErrMetaIntegration, errorcodes.ErrExternalService, accountID, err.Error())
}
