package memory

import (
	"slices"
	"sync"

	"github.com/sensorfactory/nexus/internal/domain"
)

// collection is an ordered, mutex-guarded slice of records keyed by id.
// Records are copied in and out so callers never alias stored state.
type collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	id     func(T) string
	clone  func(T) T
	prefix string
	seq    int64
}

func newCollection[T any](items []T, prefix string, id func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	c := &collection[T]{id: id, clone: clone, prefix: prefix}
	for _, it := range items {
		c.items = append(c.items, clone(it))
		if n, ok := domain.ParseIDSeq(prefix, id(it)); ok && n > c.seq {
			c.seq = n
		}
	}
	return c
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = c.clone(it)
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexLocked(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

// insert assigns the next free id via assign and appends the record.
// Sequence numbers are never reused, even after deletes.
func (c *collection[T]) insert(v T, assign func(*T, string)) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	var id string
	for {
		c.seq++
		id = domain.FormatID(c.prefix, c.seq)
		if c.indexLocked(id) < 0 {
			break
		}
	}
	assign(&v, id)
	c.items = append(c.items, c.clone(v))
	return c.clone(v)
}

func (c *collection[T]) update(id string, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	c.items[i] = c.clone(fn(c.clone(c.items[i])))
	return c.clone(c.items[i]), true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

func (c *collection[T]) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(it T) bool { return c.id(it) == id })
}
