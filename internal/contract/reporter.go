package contract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ViolationReport is the JSON form of a contract error.
type ViolationReport struct {
	Kind    string `json:"kind"`
	Key     string `json:"key"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// Report extracts a ViolationReport from err. ok is false when err is not a
// contract error.
func Report(err error) (report ViolationReport, ok bool) {
	switch e := outermost(err).(type) {
	case *PreconditionError:
		return ViolationReport{Kind: KindPrecondition, Key: e.Key, Index: e.Index, Message: e.Error()}, true
	case *PostconditionError:
		return ViolationReport{Kind: KindPostcondition, Key: e.Key, Index: e.Index, Message: e.Error()}, true
	case *KeyError:
		return ViolationReport{Kind: KindKey, Key: e.Key, Index: -1, Message: e.Error()}, true
	}
	return ViolationReport{}, false
}

// FormatCLI formats a contract error for terminal output. It returns "" for
// nil and for errors that are not contract errors.
func FormatCLI(err error) string {
	r, ok := Report(err)
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("❌ %s\n", r.Kind))
	if r.Key != "" {
		sb.WriteString(fmt.Sprintf("  Contract: %s\n", r.Key))
	}
	if r.Index >= 0 {
		sb.WriteString(fmt.Sprintf("  Predicate: #%d\n", r.Index))
	}
	sb.WriteString(fmt.Sprintf("  Message: %s\n", r.Message))
	return sb.String()
}

// FormatCI formats a contract error as a GitHub Actions error annotation.
func FormatCI(err error) string {
	r, ok := Report(err)
	if !ok {
		return ""
	}
	if r.Key == "" {
		return fmt.Sprintf("::error::%s: %s\n", r.Kind, r.Message)
	}
	return fmt.Sprintf("::error title=%s::%s: %s\n", r.Key, r.Kind, r.Message)
}

// FormatJSON formats a contract error as indented JSON.
func FormatJSON(err error) (string, error) {
	r, ok := Report(err)
	if !ok {
		return "", fmt.Errorf("not a contract error: %v", err)
	}
	data, merr := json.MarshalIndent(r, "", "  ")
	if merr != nil {
		return "", merr
	}
	return string(data), nil
}
