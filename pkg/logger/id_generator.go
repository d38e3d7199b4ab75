package logger

import (
	"context"
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

type IDGenerator interface {
	NewLogID(ctx context.Context) LogID
}

// randomIDGenerator is shared by every request goroutine, hence the lock
// around the ChaCha8 source.
type randomIDGenerator struct {
	mu         sync.Mutex
	randSource *rand.ChaCha8
}

var _ IDGenerator = &randomIDGenerator{}

func (gen *randomIDGenerator) NewLogID(context.Context) LogID {
	gen.mu.Lock()
	defer gen.mu.Unlock()

	lid := LogID{}
	for !lid.IsValid() {
		_, _ = gen.randSource.Read(lid[:])
	}
	return lid
}

func defaultIDGenerator() IDGenerator {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return &randomIDGenerator{randSource: rand.NewChaCha8(seed)}
}
