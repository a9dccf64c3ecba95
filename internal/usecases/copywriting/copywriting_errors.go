package copywriting

import (
	"errors"
	"fmt"
)

var (
	ErrNoSubscription     = errors.New("assinatura ativa necessária para usar a IA")
	ErrLimitReached       = errors.New("limite mensal de gerações com IA atingido")
	ErrInvalidProduct     = errors.New("nome do produto é obrigatório")
	ErrInvalidCount       = errors.New("quantidade de variações deve estar entre 1 e 5")
	ErrMissingCurrentCopy = errors.New("título e descrição atuais são obrigatórios")
	ErrGeneration         = errors.New("erro ao gerar conteúdo com IA")
)

// CopyError é um erro com contexto adicional para gerações com IA
type CopyError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *CopyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

func NewCopyError(baseErr error, code string, userID int, details string) *CopyError {
	return &CopyError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
