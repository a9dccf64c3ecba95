package subscribing

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound      = errors.New("plano não encontrado")
	ErrNoSubscription    = errors.New("usuário sem assinatura ativa")
	ErrAlreadySubscribed = errors.New("usuário já possui assinatura ativa deste plano")
	ErrPlanLimitReached  = errors.New("limite do plano atingido")
	ErrUserNotFound      = errors.New("usuário não encontrado")

	ErrProvider       = errors.New("erro no provedor de pagamento")
	ErrInvalidWebhook = errors.New("webhook inválido")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SubscriptionError é um erro com contexto adicional para assinaturas
type SubscriptionError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *SubscriptionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

func NewSubscriptionError(baseErr error, code string, userID int, details string) *SubscriptionError {
	return &SubscriptionError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
