package lotto

import (
	"fmt"
	"strings"
)

// Kind is a semantic error category. Kinds are sentinels: compare them with
// errors.Is.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

var (
	// ErrValidation marks winning-number input that does not decode into
	// six values in range.
	ErrValidation Kind = kind{s: "VALIDATION"}
	// ErrInvalidArgument marks a caller contract violation, such as a set
	// count outside [MinSets, MaxSets].
	ErrInvalidArgument Kind = kind{s: "INVALID_ARGUMENT"}
)

// ValidationMessage is the user-facing summary of every ValidationError.
const ValidationMessage = "winning numbers must be exactly six values between 1 and 45, comma-separated"

// ValidationError describes why a winning-number input was rejected.
// Position and Token are set when a single token is to blame.
type ValidationError struct {
	Reason   string
	Token    string
	Position int // 1-based, 0 when no single token is at fault
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ValidationMessage)
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Position > 0 {
		fmt.Fprintf(&sb, " (token %d: %q)", e.Position, e.Token)
	}
	return sb.String()
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
