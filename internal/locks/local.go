package locks

import (
	"context"
	"sync"

	"github.com/nikmy/meowmatch/pkg/errors"
)

func NewLocal() *Local {
	return &Local{held: make(map[string]*entry)}
}

// Local locks keys within a single process.
type Local struct {
	mu   sync.Mutex
	held map[string]*entry
}

type entry struct {
	sem  chan struct{}
	refs int
}

func (l *Local) Lock(ctx context.Context, key string) (func(), error) {
	e := l.ref(key)

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key)
		return nil, errors.Wrap(errors.Join(ErrNotAcquired, ctx.Err()), key)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			l.unref(key)
		})
	}, nil
}

func (l *Local) ref(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.held[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.held[key] = e
	}
	e.refs++
	return e
}

func (l *Local) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.held[key]
	e.refs--
	if e.refs == 0 {
		delete(l.held, key)
	}
}
