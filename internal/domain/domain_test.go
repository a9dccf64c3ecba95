package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCallToAction(t *testing.T) {
	tests := []struct {
		in       string
		expected CallToAction
	}{
		{in: "SHOP_NOW", expected: CTAShopNow},
		{in: " shop now ", expected: CTAShopNow},
		{in: `"SIGN_UP".`, expected: CTASignUp},
		{in: "compre agora", expected: CTALearnMore},
		{in: "", expected: CTALearnMore},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCallToAction(tt.in))
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, in := range []string{"active", "PAUSED", " deleted "} {
		_, ok := ParseStatus(in)
		assert.True(t, ok, in)
	}

	// rascunho é estado interno, não pode ser pedido pelo usuário
	for _, in := range []string{"draft", "archived", ""} {
		_, ok := ParseStatus(in)
		assert.False(t, ok, in)
	}

	assert.Equal(t, "PAUSED", StatusPaused.Remote())
}

func TestParseDatePreset(t *testing.T) {
	p, ok := ParseDatePreset("")
	assert.True(t, ok)
	assert.Equal(t, DatePresetLifetime, p)

	p, ok = ParseDatePreset("last_7d")
	assert.True(t, ok)
	assert.Equal(t, DatePresetLast7d, p)

	_, ok = ParseDatePreset("last_90d")
	assert.False(t, ok)
}

func TestAdInsightEmpty(t *testing.T) {
	var nilInsight *AdInsight
	assert.True(t, nilInsight.Empty())
	assert.True(t, (&AdInsight{}).Empty())
	assert.False(t, (&AdInsight{Impressions: 1}).Empty())
}
