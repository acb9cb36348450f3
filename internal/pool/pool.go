// Package pool wraps sync.Pool with a typed API and usage counters.
// The flags package uses it to recycle parse results between calls to the
// package-level Parse.
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool is a type-safe object pool
type Pool[T any] struct {
	pool sync.Pool

	gets atomic.Int64
	puts atomic.Int64
}

// New creates a pool that builds objects with factory when empty
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	p.gets.Add(1)
	return obj
}

// Put returns an object for reuse. Nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.puts.Add(1)
	p.pool.Put(obj)
}

// Stats returns how many objects were handed out and returned
func (p *Pool[T]) Stats() (gets, puts int64) {
	return p.gets.Load(), p.puts.Load()
}
