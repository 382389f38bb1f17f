// Package clock provides ports.Clock implementations.
package clock

import (
	"sync"
	"time"
)

// System reads the wall clock in a fixed location.
type System struct {
	loc *time.Location
}

// NewSystem returns a clock in loc, or in time.Local when loc is nil.
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.Local
	}
	return System{loc: loc}
}

// LoadSystem resolves an IANA zone name such as "Europe/Moscow". An empty name means time.Local.
func LoadSystem(name string) (System, error) {
	if name == "" {
		return NewSystem(nil), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return System{}, err
	}
	return NewSystem(loc), nil
}

func (c System) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always returns the same instant until moved. It is safe for concurrent use.
type Fixed struct {
	mu  sync.RWMutex
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (c *Fixed) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *Fixed) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
