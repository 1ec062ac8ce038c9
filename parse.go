package inplacesort

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseSequence reads whitespace separated integers from r. Hexadecimal, octal and
// binary literals with the Go prefixes are accepted. An input without numbers
// results in an empty, not nil, slice.
func ParseSequence(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	s := []int{}
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 0, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("failed to parse element %d with error: %w", len(s), err)
		}
		s = append(s, int(v))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sequence with error: %w", err)
	}

	return s, nil
}
