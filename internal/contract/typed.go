package contract

import "fmt"

// Arg returns args[i] as a T, or an error describing the arity or type
// mismatch. Predicates use it to read typed arguments.
func Arg[T any](args []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, fmt.Errorf("argument %d: got %d argument(s)", i, len(args))
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("argument %d: expected %T, got %T", i, zero, args[i])
	}
	return v, nil
}

// Func1 adapts a typed single-argument function to a checked typed function.
func Func1[A, R any](w Wrapper, fn func(A) (R, error)) func(A) (R, error) {
	checked := w(func(args ...any) (any, error) {
		a, err := Arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		return fn(a)
	})
	return func(a A) (R, error) {
		return result[R](checked(a))
	}
}

// Func2 adapts a typed two-argument function to a checked typed function.
func Func2[A, B, R any](w Wrapper, fn func(A, B) (R, error)) func(A, B) (R, error) {
	checked := w(func(args ...any) (any, error) {
		a, err := Arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := Arg[B](args, 1)
		if err != nil {
			return nil, err
		}
		return fn(a, b)
	})
	return func(a A, b B) (R, error) {
		return result[R](checked(a, b))
	}
}

func result[R any](v any, err error) (R, error) {
	var zero R
	if err != nil {
		if r, ok := v.(R); ok {
			return r, err
		}
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("result: expected %T, got %T", zero, v)
	}
	return r, nil
}
