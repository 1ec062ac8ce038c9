package sort

import "fmt"

// nextGap returns ceil(gap/2), or 0 once gap is down to 1.
func nextGap(gap int) int {
	if gap <= 1 {
		return 0
	}
	return gap/2 + gap%2
}

// mergeWithGap treats s[left..right] as a single block and, for every gap of
// the sequence ceil(L/2), ceil(L/4), ..., 1, swaps each pair gap apart which is
// out of order. mid does not take part, the runs only need to be sorted.
func mergeWithGap[T any](s []T, left, mid, right int, cmp func(a, b T) int) {
	for gap := nextGap(right - left + 1); gap > 0; gap = nextGap(gap) {
		for i := left; i+gap <= right; i++ {
			if cmp(s[i], s[i+gap]) > 0 {
				s[i], s[i+gap] = s[i+gap], s[i]
			}
		}
	}
}

// MergeGapSliceFunc merges the sorted runs s[left..mid] and s[mid+1..right] with
// the gap method. Unlike MergeSliceFunc it does not keep equal elements in order.
func MergeGapSliceFunc[T any](s []T, left, mid, right int, cmp func(a, b T) int) error {
	if s == nil || cmp == nil {
		return fmt.Errorf("%w: nil slice or comparator", ErrInvalidArgument)
	}
	if err := validateRange(len(s), left, mid, right); err != nil {
		return err
	}
	mergeWithGap(s, left, mid, right, cmp)

	return nil
}

// MergeGapSlice is MergeGapSliceFunc for ordered element types.
func MergeGapSlice[T Comparable](s []T, left, mid, right int) error {
	return MergeGapSliceFunc(s, left, mid, right, compare[T])
}
