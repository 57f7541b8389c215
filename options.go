package methodmap

import "log/slog"

// Option configures a Blueprint at construction time.
type Option[K comparable] func(*Blueprint[K])

// WithName names the blueprint. The name appears in ownership and
// registration diagnostics.
func WithName[K comparable](name string) Option[K] {
	return func(b *Blueprint[K]) { b.name = name }
}

// WithLogger enables debug logging of registrations and attachments. If not
// specified, the blueprint does not log.
func WithLogger[K comparable](logger *slog.Logger) Option[K] {
	return func(b *Blueprint[K]) { b.logger = logger }
}
