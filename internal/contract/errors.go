package contract

import (
	"errors"
	"fmt"
)

// Error kinds, as reported by Kind and the reporters.
const (
	KindKey           = "ContractKeyError"
	KindPrecondition  = "PreconditionError"
	KindPostcondition = "PostconditionError"
)

// ErrNilMethod is returned by a wrapped method that was built around nil.
var ErrNilMethod = errors.New("contract: wrapped method is nil")

// KeyError is returned by Resolve when the key is absent from the table.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("the given contract key does not exist in the contracts table: %s", e.Key)
}

// PreconditionError reports a failed precondition. Error returns the
// predicate's message unchanged.
type PreconditionError struct {
	Key   string // contract key
	Index int    // position of the failing predicate in Spec.Pre
	Err   error  // the predicate's error
}

func (e *PreconditionError) Error() string { return message(e.Err) }

func (e *PreconditionError) Unwrap() error { return e.Err }

// PostconditionError reports a failed postcondition. The method has already
// run when this is returned.
type PostconditionError struct {
	Key   string
	Index int
	Err   error
}

func (e *PostconditionError) Error() string { return message(e.Err) }

func (e *PostconditionError) Unwrap() error { return e.Err }

func message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// outermost returns the first contract error in err's Unwrap chain, or nil.
// A violation unwraps to its predicate's error, which may itself be a
// violation from a nested wrapper; the outer one decides the kind.
func outermost(err error) error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch e.(type) {
		case *KeyError, *PreconditionError, *PostconditionError:
			return e
		}
	}
	return nil
}

// IsKeyError reports whether the outermost contract error in err is a *KeyError.
func IsKeyError(err error) bool {
	_, ok := outermost(err).(*KeyError)
	return ok
}

// IsPrecondition reports whether the outermost contract error in err is a
// *PreconditionError.
func IsPrecondition(err error) bool {
	_, ok := outermost(err).(*PreconditionError)
	return ok
}

// IsPostcondition reports whether the outermost contract error in err is a
// *PostconditionError.
func IsPostcondition(err error) bool {
	_, ok := outermost(err).(*PostconditionError)
	return ok
}

// IsViolation reports whether err is a precondition or postcondition failure.
func IsViolation(err error) bool {
	return IsPrecondition(err) || IsPostcondition(err)
}

// Kind returns the error kind name for contract errors and "" otherwise.
func Kind(err error) string {
	switch outermost(err).(type) {
	case *PreconditionError:
		return KindPrecondition
	case *PostconditionError:
		return KindPostcondition
	case *KeyError:
		return KindKey
	default:
		return ""
	}
}
