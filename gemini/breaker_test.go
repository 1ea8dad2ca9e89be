package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"tablecomm/config"
	"tablecomm/utils"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &fakeModel{err: errors.New("503 unavailable")}
	model := WithBreaker(inner, config.BreakerConfig{
		Enabled:     true,
		MaxFailures: 2,
		OpenTimeout: config.Duration{Duration: time.Minute},
	}, utils.Log)

	for i := 0; i < 2; i++ {
		_, err := model.GenerateText(context.Background(), "p")
		require.Error(t, err)
	}

	_, err := model.GenerateText(context.Background(), "p")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, inner.calls())
}

func TestWithBreaker_PassesThroughSuccess(t *testing.T) {
	model := WithBreaker(&fakeModel{reply: "ok"}, config.BreakerConfig{Enabled: true}, utils.Log)

	out, err := model.GenerateText(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestTranslate_OpenBreakerIsProviderFailure(t *testing.T) {
	model := WithBreaker(&fakeModel{err: errors.New("boom")}, config.BreakerConfig{MaxFailures: 1, OpenTimeout: config.Duration{Duration: time.Minute}}, utils.Log)
	svc := NewWithModel(model)

	_, _ = svc.Generate(context.Background(), "a", "")
	_, err := svc.Generate(context.Background(), "a", "")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}
