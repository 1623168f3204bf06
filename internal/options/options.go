// Package options provides generic functional-option plumbing shared by the
// configurable entry points of this module.
package options

// Option configures a target of type T and may reject invalid settings.
type Option[T any] func(T) error

// Apply applies the options to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError adapts a setter that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}
