package opcode

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"sync"
)

// Catalog is an immutable set of opcode descriptors keyed by canonical name.
// It is safe for concurrent use.
type Catalog struct {
	byName map[string]int
	items  []Descriptor
}

// Default returns the process-wide builtin catalog.
var Default = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(fmt.Sprintf("opcode: builtin catalog: %v", err))
	}
	return c
})

// NewCatalog builds a catalog from the builtin table plus extra
// descriptors. An extra descriptor replaces a builtin one of the same name.
func NewCatalog(extra ...Descriptor) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]int, len(builtin)+len(extra)),
		items:  make([]Descriptor, 0, len(builtin)+len(extra)),
	}
	for _, d := range builtin {
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate builtin opcode %q", d.Name)
		}
		c.add(d)
	}
	for _, d := range extra {
		if err := validate(d); err != nil {
			return nil, err
		}
		if i, ok := c.byName[d.Name]; ok {
			c.items[i] = d
			continue
		}
		c.add(d)
	}
	return c, nil
}

func (c *Catalog) add(d Descriptor) {
	c.byName[d.Name] = len(c.items)
	c.items = append(c.items, d)
}

func validate(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("opcode descriptor without a name")
	}
	for i := 0; i < len(d.Name); i++ {
		ch := d.Name[i]
		if !(ch >= 'a' && ch <= 'z' || isDigit(ch) || ch == '_' || ch == 'N' || ch == 'X' || ch == 'Y') {
			return fmt.Errorf("opcode %q: invalid character %q", d.Name, ch)
		}
	}
	if d.Kind > Path {
		return fmt.Errorf("opcode %q: invalid kind %d", d.Name, d.Kind)
	}
	if d.Kind == Enumerated && len(d.Values) == 0 {
		return fmt.Errorf("opcode %q: enumerated kind needs values", d.Name)
	}
	if d.HasDefault() {
		if _, err := convert(d, d.Default); err != nil {
			return fmt.Errorf("opcode %q: bad default: %w", d.Name, err)
		}
	}
	return nil
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int { return len(c.items) }

// Lookup finds the descriptor for an opcode name as written in a file.
// Names are matched case-insensitively; embedded numbers are returned as
// params.
func (c *Catalog) Lookup(name string) (d Descriptor, params []int, ok bool) {
	name = strings.ToLower(name)
	if i, found := c.byName[name]; found {
		return c.items[i], nil, true
	}
	canon, params, valid := Canonical(name)
	if !valid {
		return Descriptor{}, nil, false
	}
	if i, found := c.byName[canon]; found {
		return c.items[i], params, true
	}
	return Descriptor{}, nil, false
}

// Get returns the descriptor registered under a canonical name.
func (c *Catalog) Get(canonical string) (Descriptor, bool) {
	i, ok := c.byName[canonical]
	if !ok {
		return Descriptor{}, false
	}
	return c.items[i], true
}

// All yields descriptors sorted by name.
func (c *Catalog) All() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		names := make([]string, 0, len(c.items))
		for n := range c.byName {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			if !yield(c.items[c.byName[n]]) {
				return
			}
		}
	}
}
