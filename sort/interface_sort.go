package sort

import (
	"fmt"
	stdsort "sort"

	"github.com/golang/glog"
)

// mergeInterface is merge for data which can only compare and swap elements,
// the shift of [i, j-1] becomes a chain of adjacent swaps carrying element j down to i.
func mergeInterface(data stdsort.Interface, left, mid, right int) {
	i := left
	j := mid + 1
	for i <= mid && j <= right {
		if !data.Less(j, i) {
			i++
			continue
		}
		for k := j; k > i; k-- {
			data.Swap(k-1, k)
		}
		i++
		mid++
		j++
	}
}

func inPlaceMergeSortInterface(data stdsort.Interface, left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	inPlaceMergeSortInterface(data, left, mid)
	inPlaceMergeSortInterface(data, mid+1, right)
	mergeInterface(data, left, mid, right)
}

// SortMergeInterface sorts data in place, keeping equal elements in order.
func SortMergeInterface(data stdsort.Interface) error {
	if data == nil {
		return fmt.Errorf("%w: nil data", ErrInvalidArgument)
	}
	n := data.Len()
	if n <= 1 {
		return nil
	}
	glog.V(6).Infof("sorting %d elements of %T", n, data)
	inPlaceMergeSortInterface(data, 0, n-1)

	return nil
}

// MergeInterface merges the sorted runs [left, mid] and [mid+1, right] of data.
func MergeInterface(data stdsort.Interface, left, mid, right int) error {
	if data == nil {
		return fmt.Errorf("%w: nil data", ErrInvalidArgument)
	}
	if err := validateRange(data.Len(), left, mid, right); err != nil {
		return err
	}
	mergeInterface(data, left, mid, right)

	return nil
}
