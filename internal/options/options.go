// Package options implements the functional-option pattern shared by the
// configurable types in this module: the vector encoder and decoder, the
// container codec and the bulk loader all take their settings as Option
// values built with New or NoError and applied with Apply.
//
// Options are generic over the configured type, so each package exposes its
// own alias (for example record.EncoderOption) without redefining the
// machinery. Validation lives inside the option: an option built with New
// may reject its argument, and Apply surfaces the first failure without
// running the remaining options.
package options

// Option configures a value of type T. Implementations are created with
// New or NoError; the apply method stays unexported so every option funnels
// through this package.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its argument.
// Use this for options that validate, such as threshold or concurrency
// settings.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs the options against target in order, stopping at the first
// error. A constructor passes its freshly built value here before doing any
// further setup, so a failed option never yields a half-configured result.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError creates an option from a function that cannot fail, such as a
// flag toggle or a logger assignment.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
