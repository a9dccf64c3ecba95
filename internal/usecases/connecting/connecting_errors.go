package connecting

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound     = errors.New("conta Meta não encontrada")
	ErrMissingRequiredData = errors.New("token de acesso e conta de anúncios são obrigatórios")
	ErrInvalidMetaToken    = errors.New("token da Meta inválido ou expirado")
	ErrMetaIntegration     = errors.New("erro ao consultar a Meta")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// AccountError é um erro com contexto adicional para contas Meta
type AccountError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID int    // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(baseErr error, code string, accountID int, details string) *AccountError {
	return &AccountError{
		Err:       baseErr,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
