package campaigning

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound    = errors.New("campanha não encontrada")
	ErrMetaAccountNotFound = errors.New("conta Meta não encontrada")
	ErrInvalidStatus       = errors.New("status inválido")
	ErrInvalidDatePreset   = errors.New("date_preset inválido")
	ErrMissingRequiredData = errors.New("nome, objetivo e conta Meta são obrigatórios")
	ErrMetaSync            = errors.New("erro ao sincronizar com a Meta")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error
	Code       string
	CampaignID int
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(baseErr error, code string, campaignID int, details string) *CampaignError {
	return &CampaignError{
		Err:        baseErr,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
