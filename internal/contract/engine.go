package contract

import "slices"

// Engine enforces contracts from a table. It is safe for concurrent use: the
// table is copied at construction and only read afterwards.
type Engine struct {
	table Table
}

// NewEngine returns an Engine bound to a copy of table.
func NewEngine(table Table) *Engine {
	return &Engine{table: cloneTable(table)}
}

// Resolve looks up key and returns a Wrapper that enforces its contract.
// A missing key fails here, before any method is wrapped.
func (e *Engine) Resolve(key string) (Wrapper, error) {
	spec, ok := e.table[key]
	if !ok {
		return nil, &KeyError{Key: key}
	}
	return func(method Method) Method {
		return enforce(key, spec, method)
	}, nil
}

// Wrap enforces spec around method without a table lookup.
func Wrap(method Method, spec Spec) Method {
	return enforce("", cloneSpec(spec), method)
}

// enforce builds the checked method. Preconditions run first and stop at the
// first failure; the method runs only if all of them pass; postconditions
// see the result followed by the original arguments.
func enforce(key string, spec Spec, method Method) Method {
	return func(args ...any) (any, error) {
		if method == nil {
			return nil, ErrNilMethod
		}

		for i, pre := range spec.Pre {
			if pre == nil {
				continue
			}
			if err := pre(args...); err != nil {
				return nil, &PreconditionError{Key: key, Index: i, Err: err}
			}
		}

		// Method errors are not contract failures and pass through untouched.
		result, err := method(args...)
		if err != nil {
			return result, err
		}

		for i, post := range spec.Post {
			if post == nil {
				continue
			}
			if err := post(result, args...); err != nil {
				return nil, &PostconditionError{Key: key, Index: i, Err: err}
			}
		}

		return result, nil
	}
}

func cloneTable(table Table) Table {
	if table == nil {
		return nil
	}
	out := make(Table, len(table))
	for k, spec := range table {
		out[k] = cloneSpec(spec)
	}
	return out
}

func cloneSpec(spec Spec) Spec {
	return Spec{
		Pre:  slices.Clone(spec.Pre),
		Post: slices.Clone(spec.Post),
	}
}
