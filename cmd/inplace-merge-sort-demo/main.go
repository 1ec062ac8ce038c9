package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/sbezverk/inplacesort"
	"github.com/sbezverk/inplacesort/cases"
	"github.com/sbezverk/inplacesort/sort"
	"golang.org/x/exp/slices"
)

var (
	merge string
	stdin bool
	head  int
)

func compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func init() {
	flag.StringVar(&merge, "merge", "shift", "merge step used by the sort, shift or gap")
	flag.BoolVar(&stdin, "stdin", false, "sort whitespace separated integers read from stdin instead of the built in cases")
	flag.IntVar(&head, "head", 0, "number of leading elements printed for long cases, 0 keeps the width of each case")
}

func runCases(w io.Writer, cat cases.Catalogue, strategy sort.MergeStrategy) error {
	fmt.Fprintf(w, "=== In-Place Merge Sort (%s merge) ===\n\n", strategy)
	for i, c := range cat.List() {
		n := len(c.Input)
		label := ""
		if c.Head > 0 {
			width := c.Head
			if head > 0 {
				width = head
			}
			if width < n {
				n = width
				label = fmt.Sprintf(" (first %d elements shown)", width)
			}
		}
		fmt.Fprintf(w, "Test Case %d: %s%s\n", i+1, c.Name, label)
		fmt.Fprintf(w, "Input:  %s\n", inplacesort.FormatHead(c.Input, n))
		sorted, err := sort.SortMergeSliceFuncWithStrategy(c.Input, compare, strategy)
		if err != nil {
			return fmt.Errorf("failed to sort case %q with error: %w", c.Name, err)
		}
		fmt.Fprintf(w, "Output: %s\n\n", inplacesort.FormatHead(sorted, n))
		if !slices.Equal(sorted, c.Expected) {
			glog.Errorf("case %q: got %s, expected %s", c.Name, inplacesort.Format(sorted), inplacesort.Format(c.Expected))
		}
	}
	return nil
}

func runStdin(r io.Reader, w io.Writer, strategy sort.MergeStrategy) error {
	s, err := inplacesort.ParseSequence(r)
	if err != nil {
		return err
	}
	glog.V(5).Infof("read %d elements from stdin", len(s))
	if _, err := sort.SortMergeSliceFuncWithStrategy(s, compare, strategy); err != nil {
		return err
	}
	fmt.Fprintln(w, inplacesort.Format(s))

	return nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	strategy, err := sort.ParseMergeStrategy(merge)
	if err != nil {
		glog.Errorf("%+v", err)
		glog.Flush()
		os.Exit(1)
	}
	if stdin {
		err = runStdin(os.Stdin, os.Stdout, strategy)
	} else {
		err = runCases(os.Stdout, cases.Default(), strategy)
	}
	if err != nil {
		glog.Errorf("%+v", err)
		glog.Flush()
		os.Exit(1)
	}
}
