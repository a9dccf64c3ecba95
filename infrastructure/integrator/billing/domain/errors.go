package billingdomain

import "errors"

var (
	ErrInvalidSignature = errors.New("assinatura do webhook inválida")
	ErrInvalidPayload   = errors.New("payload do webhook inválido")
)
