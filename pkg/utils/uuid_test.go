package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(10)
	require.NoError(t, err)
	assert.Len(t, id, 10)

	for _, r := range id {
		assert.True(t, strings.ContainsRune(characters, r))
	}
}

func TestIdempotencyKey(t *testing.T) {
	a, err := IdempotencyKey("checkout_7_2")
	require.NoError(t, err)
	b, err := IdempotencyKey("checkout_7_2")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "checkout_7_2_"))
	assert.Len(t, a, len("checkout_7_2_")+idempotencyKeyLength)
	assert.NotEqual(t, a, b)
}
