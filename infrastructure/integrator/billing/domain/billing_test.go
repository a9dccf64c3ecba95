package billingdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExternalReference(t *testing.T) {
	ref := ExternalReference(7, 2)
	assert.Equal(t, "user_7_plan_2", ref)

	userID, planID, ok := ParseExternalReference(ref)
	assert.True(t, ok)
	assert.Equal(t, 7, userID)
	assert.Equal(t, 2, planID)
}

func TestParseExternalReference_Invalid(t *testing.T) {
	for _, ref := range []string{"", "user_x_plan_1", "plan_1", "user_0_plan_0"} {
		_, _, ok := ParseExternalReference(ref)
		assert.False(t, ok, ref)
	}
}

func TestUnixTime(t *testing.T) {
	assert.Nil(t, UnixTime(0))
	assert.Equal(t, int64(1700000000), UnixTime(1700000000).Unix())
}
