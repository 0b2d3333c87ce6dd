package collection

import "sync/atomic"

// PrimaryKey simulates the autoincrement counter of a SQL table.
type PrimaryKey struct {
	current atomic.Int64
}

// Increment advances the counter by one and returns the new value.
func (p *PrimaryKey) Increment() ID {
	return ID(p.current.Add(1))
}

// Set replaces the counter, also when id is lower than the current value.
func (p *PrimaryKey) Set(id ID) {
	p.current.Store(int64(id))
}

func (p *PrimaryKey) Current() ID {
	return ID(p.current.Load())
}

func (p *PrimaryKey) Reset() {
	p.current.Store(0)
}
