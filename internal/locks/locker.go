// Package locks provides exclusive locks over named resources.
//
// Multi-key acquisition always goes in ascending key order, so two callers
// locking overlapping key sets can't deadlock each other.
package locks

import (
	"context"
	"slices"

	"github.com/nikmy/meowmatch/pkg/errors"
)

var ErrNotAcquired = errors.Error("lock not acquired")

type Locker interface {
	// Lock blocks until the key is acquired or ctx is done.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// LockAll acquires every key in ascending order. On failure the keys
// acquired so far are released.
func LockAll(ctx context.Context, l Locker, keys ...string) (func(), error) {
	ordered := slices.Clone(keys)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	unlocks := make([]func(), 0, len(ordered))
	unlockAll := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}

	for _, key := range ordered {
		unlock, err := l.Lock(ctx, key)
		if err != nil {
			unlockAll()
			return nil, errors.WrapFailf(err, "lock %s", key)
		}
		unlocks = append(unlocks, unlock)
	}

	return unlockAll, nil
}

func RequestKey(id string) string {
	return "request:" + id
}

func SlotKey(slotKey string) string {
	return "slot:" + slotKey
}

func InterviewKey(id string) string {
	return "interview:" + id
}
