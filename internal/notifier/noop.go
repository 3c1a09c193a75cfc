package notifier

import (
	"context"

	"github.com/rs/zerolog/log"
)

// NoopNotifier logs messages instead of delivering them. Used when no
// Telegram credentials are configured.
type NoopNotifier struct{}

// NewNoopNotifier creates a NoopNotifier.
func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

// Send logs the message at debug level.
func (n *NoopNotifier) Send(_ context.Context, text string) error {
	log.Debug().Int("len", len(text)).Msg("notification dropped (no notifier configured)")
	return nil
}

// SendWithRetry behaves like Send; there is nothing to retry.
func (n *NoopNotifier) SendWithRetry(ctx context.Context, text string, _ int) error {
	return n.Send(ctx, text)
}
