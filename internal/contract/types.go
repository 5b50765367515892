package contract

// Predicate is a precondition. It receives the call arguments positionally
// and returns a non-nil error when the contract is violated.
type Predicate func(args ...any) error

// ResultPredicate is a postcondition. It receives the method's result
// followed by the original call arguments.
type ResultPredicate func(result any, args ...any) error

// Spec is a single named contract: preconditions and postconditions that run
// strictly in list order.
type Spec struct {
	Pre  []Predicate
	Post []ResultPredicate
}

// Table maps a contract key to its Spec.
type Table map[string]Spec

// Method is the calling convention of a wrappable method. Method values
// (svc.Do) keep their receiver, so wrapping never changes instance state.
type Method func(args ...any) (any, error)

// Wrapper attaches a resolved contract to a method.
type Wrapper func(Method) Method

// Resolver resolves a contract key to a Wrapper.
type Resolver interface {
	Resolve(key string) (Wrapper, error)
}
