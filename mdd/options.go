package mdd

import "github.com/sirupsen/logrus"

// Option configures a Compiler at construction time.
type Option[T comparable] func(*Compiler[T])

// WithLogger overrides the compiler's logger. The default is
// logrus.StandardLogger().
func WithLogger[T comparable](logger *logrus.Logger) Option[T] {
	return func(c *Compiler[T]) { c.logger = logger }
}
