// Package methodcontracts wraps methods with design-by-contract checks.
//
// A Table names contracts; New turns it into a Resolve function. Resolving a
// key yields a Wrapper that runs the contract's preconditions, the method and
// then its postconditions. Whether checks run at all is decided once, when
// New is called, from Options.Mode and Options.EnabledFor.
//
//	var resolve = methodcontracts.New(methodcontracts.Table{
//		"add": {
//			Pre:  []methodcontracts.Predicate{bothInts},
//			Post: []methodcontracts.ResultPredicate{isSum},
//		},
//	}, methodcontracts.Options{Mode: os.Getenv("APP_MODE")})
//
//	var add = methodcontracts.MustResolve(resolve, "add")(rawAdd)
package methodcontracts

import (
	"log"

	"methodcontracts/internal/config"
	"methodcontracts/internal/contract"
	"methodcontracts/internal/gate"
)

type (
	Predicate          = contract.Predicate
	ResultPredicate    = contract.ResultPredicate
	Spec               = contract.Spec
	Table              = contract.Table
	Method             = contract.Method
	Wrapper            = contract.Wrapper
	KeyError           = contract.KeyError
	PreconditionError  = contract.PreconditionError
	PostconditionError = contract.PostconditionError
	ViolationReport    = contract.ViolationReport
)

// Error kinds returned by Kind.
const (
	KindKey           = contract.KindKey
	KindPrecondition  = contract.KindPrecondition
	KindPostcondition = contract.KindPostcondition
)

// ErrNilMethod is returned when a wrapped nil method is called.
var ErrNilMethod = contract.ErrNilMethod

// DefaultAllowList is used when Options.EnabledFor is nil.
var DefaultAllowList = gate.DefaultAllowList

// Resolve resolves a contract key to a Wrapper.
type Resolve func(key string) (Wrapper, error)

// Options configures New.
type Options struct {
	// Mode is the runtime mode, e.g. "test" or "production".
	Mode string
	// EnabledFor lists the modes that enable checking. nil means
	// DefaultAllowList.
	EnabledFor []string
	// Logger, if set, receives one line describing the enablement decision.
	Logger *log.Logger
}

// New builds a resolver over table. The enablement decision is taken here and
// applies to every wrapper the resolver produces. Unknown keys are rejected
// by Resolve in both modes.
func New(table Table, opts Options) Resolve {
	if table == nil {
		// An empty table still validates keys; only NewNullEngine(nil) skips that.
		table = Table{}
	}
	d := gate.Decide(opts.Mode, opts.EnabledFor)

	var r contract.Resolver
	if d.Enabled {
		r = contract.NewEngine(table)
	} else {
		r = contract.NewNullEngine(table)
	}

	if opts.Logger != nil {
		state := "disabled"
		if d.Enabled {
			state = "enabled"
		}
		opts.Logger.Printf("contracts %s: mode=%q allow=%v keys=%d", state, d.Mode, d.AllowList, len(table))
	}

	return r.Resolve
}

// FromEnviron builds a resolver configured from an environ slice, reading
// CONTRACTS_MODE and CONTRACTS_ENABLED_FOR.
func FromEnviron(table Table, environ []string, logger *log.Logger) (Resolve, error) {
	opts, err := LoadOptions("", environ)
	if err != nil {
		return nil, err
	}
	opts.Logger = logger
	return New(table, opts), nil
}

// LoadOptions reads Options from a YAML file (skipped when path is "") and
// overlays CONTRACTS_MODE / CONTRACTS_ENABLED_FOR from environ.
func LoadOptions(path string, environ []string) (Options, error) {
	var file config.Config
	if path != "" {
		var err error
		file, err = config.LoadFromPath(path)
		if err != nil {
			return Options{}, err
		}
	}
	fromEnv, err := config.FromEnviron(environ)
	if err != nil {
		return Options{}, err
	}
	cfg := config.Merge(file, fromEnv)
	return Options{Mode: cfg.Mode, EnabledFor: cfg.EnabledFor}, nil
}

// MustResolve is like resolve(key) but panics on error. It is meant for
// package-level wrapper variables, where a bad key is a programming error.
func MustResolve(resolve Resolve, key string) Wrapper {
	w, err := resolve(key)
	if err != nil {
		panic("methodcontracts: " + err.Error())
	}
	return w
}

// Wrap enforces spec around method regardless of mode.
func Wrap(method Method, spec Spec) Method {
	return contract.Wrap(method, spec)
}

// IsEnabled reports whether mode enables checking under allowList.
func IsEnabled(mode string, allowList []string) bool {
	return gate.IsEnabled(mode, allowList)
}

// IsPrecondition reports whether err is a precondition failure.
func IsPrecondition(err error) bool { return contract.IsPrecondition(err) }

// IsPostcondition reports whether err is a postcondition failure.
func IsPostcondition(err error) bool { return contract.IsPostcondition(err) }

// IsKeyError reports whether err is an unknown-key failure.
func IsKeyError(err error) bool { return contract.IsKeyError(err) }

// IsViolation reports whether err is a precondition or postcondition failure.
func IsViolation(err error) bool { return contract.IsViolation(err) }

// Kind names the outermost contract error in err, or returns "".
func Kind(err error) string { return contract.Kind(err) }

// Report extracts a ViolationReport from a contract error.
func Report(err error) (ViolationReport, bool) { return contract.Report(err) }

// FormatCLI formats a contract error for terminal output.
func FormatCLI(err error) string { return contract.FormatCLI(err) }

// FormatCI formats a contract error as a GitHub Actions annotation.
func FormatCI(err error) string { return contract.FormatCI(err) }

// FormatJSON formats a contract error as indented JSON.
func FormatJSON(err error) (string, error) { return contract.FormatJSON(err) }

// Func1 returns a typed, checked version of fn.
func Func1[A, R any](w Wrapper, fn func(A) (R, error)) func(A) (R, error) {
	return contract.Func1(w, fn)
}

// Func2 returns a typed, checked version of fn.
func Func2[A, B, R any](w Wrapper, fn func(A, B) (R, error)) func(A, B) (R, error) {
	return contract.Func2(w, fn)
}

// Arg reads args[i] as a T inside a predicate.
func Arg[T any](args []any, i int) (T, error) {
	return contract.Arg[T](args, i)
}

// Named builds a precondition over caller-named arguments.
func Named(names []string, fn func(named map[string]any) error) Predicate {
	return contract.Named(names, fn)
}

// NamedResult builds a postcondition over caller-named arguments.
func NamedResult(names []string, fn func(result any, named map[string]any) error) ResultPredicate {
	return contract.NamedResult(names, fn)
}
