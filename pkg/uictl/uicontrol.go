// Package uictl holds the small control contracts shared between a UI
// component and the application that owns the underlying state.
package uictl

import (
	"sync"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Dial is a control that can read some value.
type Dial[N Number] interface {
	Read() N
}

// Binding is a value owned by the application that a component may read
// and write.
type Binding[N Number] interface {
	Dial[N]
	Set(v N)
}

// Cell is a Binding that owns its value. It is safe for concurrent use so
// the owner can update it from outside the UI loop.
type Cell[N Number] struct {
	mu sync.RWMutex
	v  N
}

// NewCell creates a cell holding v.
func NewCell[N Number](v N) *Cell[N] {
	return &Cell[N]{v: v}
}

func (c *Cell[N]) Read() N {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.v
}

func (c *Cell[N]) Set(v N) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Constant is a read-only Binding. Set is ignored.
type Constant[N Number] struct {
	v N
}

// NewConstant creates a constant binding.
func NewConstant[N Number](v N) Constant[N] {
	return Constant[N]{v: v}
}

func (c Constant[N]) Read() N { return c.v }

func (c Constant[N]) Set(N) {}

// Func adapts a getter/setter pair into a Binding. A nil setter makes the
// binding read-only.
type Func[N Number] struct {
	Get func() N
	Put func(N)
}

func (f Func[N]) Read() N {
	return f.Get()
}

func (f Func[N]) Set(v N) {
	if f.Put != nil {
		f.Put(v)
	}
}
