// SPDX-License-Identifier: MIT

package polytope

import "sync"

// lazy is a set-once cache slot. A failed fill leaves the slot empty so a
// later call (e.g. after a cancelled context) can retry.
type lazy[V any] struct {
	mu   sync.Mutex
	done bool
	val  V
}

func (l *lazy[V]) get(fill func() (V, error)) (V, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return l.val, nil
	}
	v, err := fill()
	if err != nil {
		var zero V
		return zero, err
	}
	l.val, l.done = v, true

	return v, nil
}

// lazyMap holds one lazy slot per key, created on first use.
type lazyMap[K comparable, V any] struct {
	mu    sync.Mutex
	slots map[K]*lazy[V]
}

func (m *lazyMap[K, V]) slot(k K) *lazy[V] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slots == nil {
		m.slots = make(map[K]*lazy[V])
	}
	s, ok := m.slots[k]
	if !ok {
		s = &lazy[V]{}
		m.slots[k] = s
	}

	return s
}
