package pure

import (
	"fmt"
	"reflect"
)

type rootKey struct{}

type nilKey struct{}

type stringerKey struct {
	typ reflect.Type
	str string
}

// KeyOf turns an argument into a Trie key. Comparable values are used as is,
// fmt.Stringer values by their type and string form. Anything else cannot be
// keyed and reports false.
func KeyOf(arg any) (Key, bool) {
	if arg == nil {
		return nilKey{}, true
	}
	if reflect.ValueOf(arg).Comparable() {
		return arg, true
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringerKey{typ: reflect.TypeOf(arg), str: stringer.String()}, true
	}
	return nil, false
}

// Table memoizes results of a pure computation by its argument list.
type Table[O any] struct {
	memo *Trie[O]
}

func NewTable[O any](maxTableSize uint32) *Table[O] {
	return &Table[O]{memo: NewTrie[O](maxTableSize)}
}

// Lookup returns the remembered result for args, or runs compute and
// remembers what it returns. Errors are never remembered, and argument lists
// holding an unkeyable value always run compute.
func (t *Table[O]) Lookup(args []any, compute func() (O, error)) (O, error) {
	keys := make([]Key, 0, len(args)+1)
	keys = append(keys, rootKey{})
	for _, arg := range args {
		k, ok := KeyOf(arg)
		if !ok {
			return compute()
		}
		keys = append(keys, k)
	}
	if v, ok := t.memo.Load(keys); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	t.memo.Store(keys, v)
	return v, nil
}
