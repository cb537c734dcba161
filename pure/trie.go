package pure

import (
	"sync"
	"sync/atomic"
)

// Key is a single path segment of a Trie lookup.
type Key any

// leafKey holds a path's value apart from its children, so one path may be a
// prefix of another.
type leafKey struct{}

// entry wraps stored values so a remembered nil is told apart from a miss.
type entry[O any] struct {
	value O
}

// Trie is a bounded, path-keyed store. Entries live in two generations; once
// the head generation holds maxSize entries the older generation is dropped
// and the head rotates, so at most 2*maxSize entries are retained.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}

// Load looks keys up in the head generation first, then in the previous one.
func (t *Trie[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx.Load()
	for _, idx := range [2]uint32{headIdx, 1 - headIdx} {
		if v, ok := lookup(t.memos[idx].Load(), keys); ok {
			if e, ok := v.(entry[O]); ok {
				return e.value, true
			}
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []Key, value O) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		next := 1 - t.headIdx.Load()
		t.memos[next].Store(&sync.Map{})
		t.headIdx.Store(next)
	}
	traverse(t.memos[t.headIdx.Load()].Load(), keys).Store(leafKey{}, entry[O]{value: value})
	t.size.Add(1)
}

// Len reports the number of stores into the head generation since it last
// rotated.
func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

func lookup(m *sync.Map, keys []Key) (any, bool) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
	for _, k := range keys {
		v, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		if m, ok = v.(*sync.Map); !ok {
			return nil, false
		}
	}
	return m.Load(leafKey{})
}

// traverse returns the node for keys, creating missing levels.
func traverse(m *sync.Map, keys []Key) *sync.Map {
	for _, k := range keys {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	return m
}
