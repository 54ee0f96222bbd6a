// Package lotto implements the Lotto 6/45 core: drawing number sets,
// parsing a winning combination and scoring sets against it.
package lotto

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	MinNumber = 1
	MaxNumber = 45
	PickSize  = 6

	// MinSets and MaxSets bound a single generation request.
	MinSets = 1
	MaxSets = 10
)

// NumberSet is one combination: PickSize distinct values in
// [MinNumber, MaxNumber], sorted ascending.
type NumberSet [PickSize]int

// NewNumberSet validates nums and returns them as a sorted NumberSet.
func NewNumberSet(nums []int) (NumberSet, error) {
	var ns NumberSet
	if len(nums) != PickSize {
		return ns, fmt.Errorf("%w: need %d numbers, got %d", ErrInvalidArgument, PickSize, len(nums))
	}
	seen := make(map[int]struct{}, PickSize)
	for i, n := range nums {
		if n < MinNumber || n > MaxNumber {
			return ns, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidArgument, n, MinNumber, MaxNumber)
		}
		if _, dup := seen[n]; dup {
			return ns, fmt.Errorf("%w: duplicate number %d", ErrInvalidArgument, n)
		}
		seen[n] = struct{}{}
		ns[i] = n
	}
	slices.Sort(ns[:])
	return ns, nil
}

// String returns the numbers separated by single spaces.
func (ns NumberSet) String() string {
	return joinInts(ns[:], " ", "%d")
}

// Padded returns the numbers zero-padded to two digits, joined by sep.
func (ns NumberSet) Padded(sep string) string {
	return joinInts(ns[:], sep, "%02d")
}

// Contains reports whether n is part of the set.
func (ns NumberSet) Contains(n int) bool {
	_, found := slices.BinarySearch(ns[:], n)
	return found
}

// Batch is the ordered output of one generation request. Sets may repeat.
type Batch []NumberSet

func joinInts(nums []int, sep, format string) string {
	strs := make([]string, len(nums))
	for i, n := range nums {
		if format == "%d" {
			strs[i] = strconv.Itoa(n)
			continue
		}
		strs[i] = fmt.Sprintf(format, n)
	}
	return strings.Join(strs, sep)
}
