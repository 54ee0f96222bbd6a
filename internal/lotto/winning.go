package lotto

import (
	"fmt"
	"strconv"
	"strings"
)

// Winning is a parsed winning combination. After a strict parse the values
// are distinct; a lenient parse may keep duplicates, which count once when
// scoring.
type Winning [PickSize]int

// Contains reports whether n is one of the winning values.
func (w Winning) Contains(n int) bool {
	for _, v := range w {
		if v == n {
			return true
		}
	}
	return false
}

func (w Winning) String() string {
	return joinInts(w[:], ", ", "%d")
}

// WinningFromSet converts a NumberSet, e.g. a historical draw, into a Winning.
func WinningFromSet(ns NumberSet) Winning {
	return Winning(ns)
}

// ParseMode selects how ParseWinning treats malformed tokens.
type ParseMode int

const (
	// ParseStrict rejects the input at the first malformed, out-of-range
	// or duplicate token.
	ParseStrict ParseMode = iota
	// ParseLenient drops malformed tokens and keeps duplicates; only the
	// final count decides.
	ParseLenient
)

// ParseWinning decodes a comma-separated list such as "1, 10, 20, 30, 40, 45".
// Every failure is a *ValidationError.
func ParseWinning(input string, mode ParseMode) (Winning, error) {
	var w Winning
	tokens := strings.Split(input, ",")
	values := make([]int, 0, PickSize)
	seen := make(map[int]struct{}, PickSize)

	for i, raw := range tokens {
		tok := strings.TrimSpace(raw)
		n, reason := parseToken(tok)
		if reason == "" && mode == ParseStrict {
			if _, dup := seen[n]; dup {
				reason = "duplicate value"
			}
		}
		if reason != "" {
			if mode == ParseLenient {
				continue
			}
			return w, &ValidationError{Reason: reason, Token: tok, Position: i + 1}
		}
		seen[n] = struct{}{}
		values = append(values, n)
	}

	if len(values) != PickSize {
		return w, &ValidationError{Reason: fmt.Sprintf("got %d valid values", len(values))}
	}
	copy(w[:], values)
	return w, nil
}

// parseToken returns the token's value, or a non-empty reason it is invalid.
func parseToken(tok string) (int, string) {
	if tok == "" {
		return 0, "empty value"
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, "not a whole number"
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < MinNumber || n > MaxNumber {
		return 0, fmt.Sprintf("out of range [%d, %d]", MinNumber, MaxNumber)
	}
	return n, ""
}
