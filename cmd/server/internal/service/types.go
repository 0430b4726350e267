package service

import (
	"math/rand"
	"time"
)

// for deterministic testing
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// for deterministic values
type Rand interface {
	Float64() float64
}

type RealClock struct{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RealRand uses the global source, which is safe for concurrent handlers
type RealRand struct{}

func (RealRand) Float64() float64 { return rand.Float64() }
