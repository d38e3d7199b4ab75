package timer

import (
	"sync"
	"time"

	"go.uber.org/fx"
)

var Module = fx.Provide(New)

type (
	// Scheduler runs f once after d elapsed. Callbacks must not block.
	Scheduler interface {
		AfterFunc(d time.Duration, f func()) Timer
	}

	Timer interface {
		Stop() bool
	}

	scheduler struct{}
)

func New() Scheduler {
	return scheduler{}
}

func (scheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Serialized wraps a scheduler so every callback runs while holding mu.
func Serialized(mu sync.Locker, inner Scheduler) Scheduler {
	return serialized{mu: mu, inner: inner}
}

type serialized struct {
	mu    sync.Locker
	inner Scheduler
}

func (s serialized) AfterFunc(d time.Duration, f func()) Timer {
	return s.inner.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		f()
	})
}
