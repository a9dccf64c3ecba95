package advertising

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized é devolvido quando a campanha não pertence ao usuário.
	ErrUnauthorized        = errors.New("unauthorized")
	ErrAdNotFound          = errors.New("anúncio não encontrado")
	ErrMetaAccountNotFound = errors.New("conta Meta não encontrada")
	ErrCampaignNotSynced   = errors.New("campanha ainda não foi criada na Meta")
	ErrAdSetNotSynced      = errors.New("conjunto de anúncios ainda não foi criado na Meta")
	ErrAlreadyPublished    = errors.New("anúncio já publicado")
	ErrInvalidStatus       = errors.New("status inválido")
	ErrInvalidDatePreset   = errors.New("date_preset inválido")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrMetaSync            = errors.New("erro ao sincronizar com a Meta")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// AdError é um erro com contexto adicional para anúncios
type AdError struct {
	Err     error
	Code    string
	AdID    int
	Details string
}

func (e *AdError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdError) Unwrap() error {
	return e.Err
}

func NewAdError(baseErr error, code string, adID int, details string) *AdError {
	return &AdError{
		Err:     baseErr,
		Code:    code,
		AdID:    adID,
		Details: details,
	}
}
