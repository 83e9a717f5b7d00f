package omni

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Messages(t *testing.T) {
	assert.Equal(t, "omni: gateway returned status 503: down", httpError(503, "down").Error())
	assert.Equal(t, "omni: transport error: request failed: dial tcp: refused",
		transportError("request failed", errors.New("dial tcp: refused")).Error())
	assert.Equal(t, "omni: decode error: bad", decodeError("bad", nil).Error())
}

func TestKindHelpers_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("send notification: %w", httpError(429, "slow down"))

	assert.Equal(t, KindHTTP, KindOf(err))
	assert.True(t, IsHTTP(err))
	assert.Equal(t, 429, StatusCode(err))

	assert.Zero(t, KindOf(errors.New("plain")))
	assert.Zero(t, StatusCode(transportError("x", nil)))
	assert.Equal(t, "unknown", Kind(0).String())
}
