package gemini

import (
	"context"

	"tablecomm/config"
	"tablecomm/utils"

	"github.com/sony/gobreaker"
)

// breakerModel stops calling the provider after repeated failures. Calls made
// while the breaker is open fail immediately and surface as provider failures.
type breakerModel struct {
	next TextModel
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker wraps model with a circuit breaker
func WithBreaker(model TextModel, cfg config.BreakerConfig, log *utils.Logger) TextModel {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	settings := gobreaker.Settings{
		Name:    "gemini",
		Timeout: cfg.OpenTimeout.Duration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker %s: %s -> %s", name, from, to)
		},
	}

	return &breakerModel{
		next: model,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *breakerModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.GenerateText(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
