package tooltip

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultSlots is the number of tooltip slots a freshly constructed pool
// hands out before reporting capacity errors.
const DefaultSlots = 20

// ErrInactiveSlot reports a release of a slot that is not currently held.
var ErrInactiveSlot = errors.New("slot is not active")

// CapacityError reports an exhausted slot pool.
type CapacityError struct {
	Size int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("tooltip: all %d slots in use", e.Size)
}

// Pool hands out small positive slot identifiers for rendered tooltips.
// Slots are reused in LIFO order: the most recently released identifier is
// the next one acquired. A slot stays unavailable from Acquire until the
// matching Release; releasing a slot that is not held fails instead of
// corrupting the free list.
type Pool struct {
	mu     sync.Mutex
	free   []int
	active map[int]bool
	size   int
}

// NewPool builds a pool of the given size with slot identifiers 1..size.
// Sizes below one fall back to DefaultSlots.
func NewPool(size int) *Pool {
	if size < 1 {
		size = DefaultSlots
	}
	free := make([]int, 0, size)
	for id := size; id >= 1; id-- {
		free = append(free, id)
	}
	return &Pool{
		free:   free,
		active: make(map[int]bool, size),
		size:   size,
	}
}

var (
	defaultPoolOnce sync.Once
	defaultPool     *Pool
)

// DefaultPool returns the process-wide pool shared by handlers that were not
// given an explicit one.
func DefaultPool() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool(DefaultSlots)
	})
	return defaultPool
}

// Acquire removes a slot from the free list and marks it active. An empty
// pool yields a CapacityError immediately; there is no blocking or eviction.
func (p *Pool) Acquire() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		return 0, &CapacityError{Size: p.size}
	}
	id := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.active[id] = true
	return id, nil
}

// Release returns a slot to the free list. Releasing an identifier that is
// not active wraps ErrInactiveSlot and leaves the pool untouched, so a
// double release never produces duplicate free entries.
func (p *Pool) Release(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active[id] {
		return fmt.Errorf("tooltip: release slot %d: %w", id, ErrInactiveSlot)
	}
	delete(p.active, id)
	p.free = append(p.free, id)
	return nil
}

// Available reports how many slots are currently free.
func (p *Pool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// Size reports the total number of slots the pool was built with.
func (p *Pool) Size() int {
	return p.size
}
