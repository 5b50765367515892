package gate

import "slices"

// DefaultAllowList is the set of modes that enable contract checking when the
// caller supplies no allow-list.
var DefaultAllowList = []string{"debug", "debugging", "dev", "develop", "development", "test", "testing"}

// Decision is the outcome of the enablement gate.
type Decision struct {
	Enabled   bool
	Mode      string
	AllowList []string
}

// IsEnabled reports whether mode is a member of allowList. A nil allowList
// means DefaultAllowList; an empty, non-nil one enables nothing. Matching is
// exact and case-sensitive.
func IsEnabled(mode string, allowList []string) bool {
	if allowList == nil {
		allowList = DefaultAllowList
	}
	return slices.Contains(allowList, mode)
}

// Decide evaluates the gate and keeps the inputs for reporting.
func Decide(mode string, allowList []string) Decision {
	effective := allowList
	if effective == nil {
		effective = DefaultAllowList
	}
	return Decision{
		Enabled:   IsEnabled(mode, allowList),
		Mode:      mode,
		AllowList: slices.Clone(effective),
	}
}
