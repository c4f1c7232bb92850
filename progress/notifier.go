package progress

import (
	"sync"
	"sync/atomic"
)

type subscription[L comparable] struct {
	listener L
	active   atomic.Bool
}

// notifier is an ordered subscriber set with snapshot dispatch.
//
// The subscription slice is copy-on-write: a dispatch round keeps the slice
// it started with, and removal only flips the active flag of the entry so
// that the round skips it.
type notifier[L comparable] struct {
	mu   sync.Mutex
	subs []*subscription[L]
}

func (n *notifier[L]) add(l L) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, s := range n.subs {
		if s.listener == l {
			return
		}
	}
	sub := &subscription[L]{listener: l}
	sub.active.Store(true)
	n.subs = append(n.subs[:len(n.subs):len(n.subs)], sub)
}

func (n *notifier[L]) remove(l L) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.subs {
		if s.listener != l {
			continue
		}
		s.active.Store(false)
		next := make([]*subscription[L], 0, len(n.subs)-1)
		next = append(next, n.subs[:i]...)
		n.subs = append(next, n.subs[i+1:]...)
		return
	}
}

func (n *notifier[L]) len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

func (n *notifier[L]) dispatch(call func(L)) {
	n.mu.Lock()
	snapshot := n.subs
	n.mu.Unlock()
	for _, s := range snapshot {
		if s.active.Load() {
			call(s.listener)
		}
	}
}
