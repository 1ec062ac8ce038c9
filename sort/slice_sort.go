package sort

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidArgument error returns when a sort or merge is called without a sequence,
	// without a comparator, or with a range which does not fit the sequence.
	ErrInvalidArgument = errors.New("invalid argument")
)

type Comparable interface {
	constraints.Ordered
}

func compare[T Comparable](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// MergeStrategy selects the merge step used by the recursive sort.
type MergeStrategy uint8

const (
	// ShiftMerge inserts each out of order element of the right run ahead of the
	// left run by shifting the elements in between one position to the right.
	ShiftMerge MergeStrategy = iota + 1
	// GapMerge compares and swaps elements a shrinking gap apart, shell sort style.
	GapMerge
)

func (m MergeStrategy) String() string {
	switch m {
	case ShiftMerge:
		return "shift"
	case GapMerge:
		return "gap"
	}
	return fmt.Sprintf("unknown(%d)", uint8(m))
}

// ParseMergeStrategy returns the strategy named by s, "shift" or "gap".
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch s {
	case "shift":
		return ShiftMerge, nil
	case "gap":
		return GapMerge, nil
	}
	return 0, fmt.Errorf("%w: unknown merge strategy %q", ErrInvalidArgument, s)
}

type mergeFunc[T any] func(s []T, left, mid, right int, cmp func(a, b T) int)

func mergerFor[T any](m MergeStrategy) (mergeFunc[T], error) {
	switch m {
	case ShiftMerge:
		return merge[T], nil
	case GapMerge:
		return mergeWithGap[T], nil
	}
	return nil, fmt.Errorf("%w: unknown merge strategy %s", ErrInvalidArgument, m)
}

// merge merges sorted s[left:mid+1] and s[mid+1:right+1] without a buffer.
// A right run element smaller than s[i] is saved, s[i:j] moves one position
// to the right and the saved element lands at i. Both runs stay contiguous and
// sorted after every step, so once either cursor runs out the rest is in place.
func merge[T any](s []T, left, mid, right int, cmp func(a, b T) int) {
	i := left
	j := mid + 1
	for i <= mid && j <= right {
		if cmp(s[i], s[j]) <= 0 {
			i++
			continue
		}
		v := s[j]
		for k := j; k > i; k-- {
			s[k] = s[k-1]
		}
		s[i] = v
		i++
		mid++
		j++
	}
}

func inPlaceMergeSort[T any](s []T, left, right int, cmp func(a, b T) int, m mergeFunc[T]) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	inPlaceMergeSort(s, left, mid, cmp, m)
	inPlaceMergeSort(s, mid+1, right, cmp, m)
	m(s, left, mid, right, cmp)
}

// SortMergeComparableSlice sorts s ascending in place and returns it. A nil slice
// is rejected with ErrInvalidArgument, an empty or a single element slice is
// returned as is.
func SortMergeComparableSlice[T Comparable](s []T) ([]T, error) {
	return SortMergeSliceFunc(s, compare[T])
}

// SortMergeSliceFunc sorts s in place in the order defined by cmp, which returns
// a negative number when a < b, a positive number when a > b and 0 otherwise.
// Elements cmp considers equal keep their relative order.
func SortMergeSliceFunc[T any](s []T, cmp func(a, b T) int) ([]T, error) {
	return SortMergeSliceFuncWithStrategy(s, cmp, ShiftMerge)
}

// SortMergeSliceFuncWithStrategy is SortMergeSliceFunc with a choice of the merge step.
// Only ShiftMerge keeps equal elements in their original order.
func SortMergeSliceFuncWithStrategy[T any](s []T, cmp func(a, b T) int, strategy MergeStrategy) ([]T, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil slice", ErrInvalidArgument)
	}
	if cmp == nil {
		return s, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	m, err := mergerFor[T](strategy)
	if err != nil {
		return s, err
	}
	if len(s) <= 1 {
		return s, nil
	}
	glog.V(6).Infof("sorting %d elements with %s merge", len(s), strategy)
	inPlaceMergeSort(s, 0, len(s)-1, cmp, m)

	return s, nil
}

func validateRange(n, left, mid, right int) error {
	if left < 0 || right >= n || mid < left-1 || mid > right {
		return fmt.Errorf("%w: range [%d, %d] split at %d does not fit %d elements", ErrInvalidArgument, left, right, mid, n)
	}
	return nil
}

// MergeSliceFunc merges the sorted runs s[left..mid] and s[mid+1..right], both bounds
// inclusive, into one sorted run without allocating.
func MergeSliceFunc[T any](s []T, left, mid, right int, cmp func(a, b T) int) error {
	if s == nil || cmp == nil {
		return fmt.Errorf("%w: nil slice or comparator", ErrInvalidArgument)
	}
	if err := validateRange(len(s), left, mid, right); err != nil {
		return err
	}
	merge(s, left, mid, right, cmp)

	return nil
}

// MergeSlice is MergeSliceFunc for ordered element types.
func MergeSlice[T Comparable](s []T, left, mid, right int) error {
	return MergeSliceFunc(s, left, mid, right, compare[T])
}

// IsSortedFunc reports whether s is in the order defined by cmp.
func IsSortedFunc[T any](s []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}
