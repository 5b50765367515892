package contract

// NullEngine has the Resolver shape of Engine but never runs a predicate.
// It still rejects unknown keys when built with a table, so a typo in a
// contract key surfaces whether or not checking is enabled.
type NullEngine struct {
	table Table
}

// NewNullEngine returns a NullEngine. A nil table disables key validation.
func NewNullEngine(table Table) *NullEngine {
	return &NullEngine{table: cloneTable(table)}
}

// Resolve returns a Wrapper that hands back the method unchanged.
func (n *NullEngine) Resolve(key string) (Wrapper, error) {
	if n.table != nil {
		if _, ok := n.table[key]; !ok {
			return nil, &KeyError{Key: key}
		}
	}
	return passthrough, nil
}

func passthrough(method Method) Method {
	if method == nil {
		return func(...any) (any, error) { return nil, ErrNilMethod }
	}
	return method
}
