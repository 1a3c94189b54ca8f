// Package ident hands out integer identities to shapes.
//
// Auto-assigned identities are strictly increasing and never reused for the lifetime of
// a Generator. Explicit identities bypass the generator entirely, so nothing stops them
// from colliding with generated ones.
package ident

import "sync/atomic"

type Generator interface {
	Next() int
}

// Default is the process-wide generator. It starts at 0 and is never reset.
var Default Generator = NewSequential()

// NewSequential returns a generator whose first identity is 1.
func NewSequential() Generator {
	return &sequential{}
}

// NewSequentialFrom returns a generator whose first identity is last+1.
func NewSequentialFrom(last int) Generator {
	return &sequential{last: int64(last)}
}

type sequential struct {
	last int64
}

func (g *sequential) Next() int {
	return int(atomic.AddInt64(&g.last, 1))
}

// Next draws from Default.
func Next() int {
	return Default.Next()
}

// Resolve returns *explicit if set without touching g, otherwise the next identity from
// g. A nil g means Default.
func Resolve(g Generator, explicit *int) int {
	if explicit != nil {
		return *explicit
	}
	if g == nil {
		g = Default
	}
	return g.Next()
}
