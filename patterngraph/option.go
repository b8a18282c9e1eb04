package patterngraph

import (
	"log/slog"

	"github.com/relateby/pattern-go/reconcile"
)

// Option configures a PatternGraph at construction time.
type Option[Extra, V any] func(*config[Extra, V])

type config[Extra, V any] struct {
	logger *slog.Logger
	policy reconcile.Policy[V]
}

// WithLogger enables debug logging of reconciled node, relationship,
// walk, and annotation collisions and of unreconcilable conflicts.
// Plain insertions and reconciled GOther collisions are not logged.
// Pass nil to disable logging (the default).
func WithLogger[Extra, V any](logger *slog.Logger) Option[Extra, V] {
	return func(c *config[Extra, V]) { c.logger = logger }
}

// WithPolicy sets the reconciliation policy applied when [PatternGraph.Merge]
// or [FromPatterns] encounters an identity collision. The default is
// reconcile.LastWriteWins.
func WithPolicy[Extra, V any](policy reconcile.Policy[V]) Option[Extra, V] {
	return func(c *config[Extra, V]) { c.policy = policy }
}
