package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idempotencyKeyLength = 16

func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}

// IdempotencyKey gera uma chave única com o prefixo informado, ex.: checkout_ab12...
func IdempotencyKey(prefix string) (string, error) {
	id, err := GenerateID(idempotencyKeyLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, id), nil
}
