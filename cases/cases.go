package cases

import (
	"errors"

	"github.com/golang/glog"
	"golang.org/x/exp/slices"
)

var (
	// ErrAlreadyExist error returns when Add attempts to add a case with an already used name
	ErrAlreadyExist = errors.New("already exists")
	// ErrNotFound error returns when Get attempts to get a non existing case
	ErrNotFound = errors.New("not found")
)

// Case is a labelled sequence together with its ascending order.
type Case struct {
	Name     string
	Input    []int
	Expected []int
	// Head is the number of leading elements worth printing, 0 means all of them.
	Head int
}

func (c *Case) Key() string {
	return c.Name
}

func (c *Case) clone() *Case {
	return &Case{
		Name:     c.Name,
		Input:    slices.Clone(c.Input),
		Expected: slices.Clone(c.Expected),
		Head:     c.Head,
	}
}

// Catalogue keeps cases by name in the order they were added. Cases are copied
// on the way in and on the way out, so sorting a returned Input in place does not
// change the catalogue.
type Catalogue interface {
	Add(*Case) error
	Get(string) (*Case, error)
	List() []*Case
}

var _ Catalogue = &catalogue{}

type catalogue struct {
	order []string
	items map[string]*Case
}

func (cat *catalogue) Add(c *Case) error {
	glog.V(6).Infof("Adding case: %s", c.Key())
	if _, ok := cat.items[c.Key()]; ok {
		return ErrAlreadyExist
	}
	cat.items[c.Key()] = c.clone()
	cat.order = append(cat.order, c.Key())

	return nil
}

func (cat *catalogue) Get(name string) (*Case, error) {
	glog.V(6).Infof("Getting case: %s", name)
	c, ok := cat.items[name]
	if !ok {
		return nil, ErrNotFound
	}
	return c.clone(), nil
}

func (cat *catalogue) List() []*Case {
	l := make([]*Case, 0, len(cat.order))
	for _, name := range cat.order {
		l = append(l, cat.items[name].clone())
	}
	return l
}

// New returns an empty catalogue.
func New() Catalogue {
	return &catalogue{
		items: make(map[string]*Case),
	}
}

var defaults = []*Case{
	{
		Name:     "Unsorted Array",
		Input:    []int{12, 11, 13, 5, 6, 7},
		Expected: []int{5, 6, 7, 11, 12, 13},
	},
	{
		Name:     "Already Sorted Array",
		Input:    []int{1, 2, 3, 4, 5, 6},
		Expected: []int{1, 2, 3, 4, 5, 6},
	},
	{
		Name:     "Reverse Sorted Array",
		Input:    []int{9, 8, 7, 6, 5, 4},
		Expected: []int{4, 5, 6, 7, 8, 9},
	},
	{
		Name:     "Array with Duplicate Elements",
		Input:    []int{4, 2, 4, 1, 2, 3, 4},
		Expected: []int{1, 2, 2, 3, 4, 4, 4},
	},
	{
		Name:     "Single Element Array",
		Input:    []int{42},
		Expected: []int{42},
	},
	{
		Name:     "Empty Array",
		Input:    []int{},
		Expected: []int{},
	},
	{
		Name:     "Larger Array",
		Input:    []int{64, 34, 25, 12, 22, 11, 90, 88, 75, 50, 33, 44, 55, 66},
		Expected: []int{11, 12, 22, 25, 33, 34, 44, 50, 55, 64, 66, 75, 88, 90},
		Head:     10,
	},
}

// Default returns a catalogue populated with the demonstration cases.
func Default() Catalogue {
	cat := New()
	for _, c := range defaults {
		if err := cat.Add(c); err != nil {
			glog.Errorf("failed to add default case %s with error: %+v", c.Name, err)
		}
	}
	return cat
}
