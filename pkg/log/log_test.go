package log

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "req-123")
	assert.Equal(t, "req-123", id)
	assert.Equal(t, "req-123", GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "")
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetCorrelationID(ctx))

	_, id = WithCorrelationID(context.Background(), strings.Repeat("x", 65))
	assert.Len(t, id, 36)
}

func TestSetEnvironment(t *testing.T) {
	t.Cleanup(func() { SetEnvironment("development") })

	SetEnvironment("production")
	assert.False(t, IsDevelopment())

	SetEnvironment(" DEV ")
	assert.True(t, IsDevelopment())
}

func TestKeepInDevelopment(t *testing.T) {
	assert.True(t, keepInDevelopment("status_code"))
	assert.True(t, keepInDevelopment("user_id"))
	assert.True(t, keepInDevelopment("campaign_id"))
	assert.False(t, keepInDevelopment("referer"))
}
