// Package options provides the generic functional-option plumbing shared by
// the public packages (regression fit options, dataset read options, plotter
// options).
package options

// Option configures a target of type T and may reject invalid values.
type Option[T any] interface {
	apply(T) error
}

// optionFunc adapts a plain function to the Option interface.
type optionFunc[T any] func(T) error

func (f optionFunc[T]) apply(target T) error {
	return f(target)
}

// New creates an Option from a function that can fail validation.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T](fn)
}

// NoError creates an Option from a function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return optionFunc[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply runs the options against the target in order, stopping at the first
// validation error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
