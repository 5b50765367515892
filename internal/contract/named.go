package contract

// Named builds a Predicate that sees the call arguments keyed by the given
// parameter names. Arguments past len(names) are dropped; names past
// len(args) are absent from the map.
func Named(names []string, fn func(named map[string]any) error) Predicate {
	return func(args ...any) error {
		return fn(bind(names, args))
	}
}

// NamedResult is the postcondition form of Named.
func NamedResult(names []string, fn func(result any, named map[string]any) error) ResultPredicate {
	return func(result any, args ...any) error {
		return fn(result, bind(names, args))
	}
}

func bind(names []string, args []any) map[string]any {
	named := make(map[string]any, len(names))
	for i, name := range names {
		if i >= len(args) {
			break
		}
		named[name] = args[i]
	}
	return named
}
