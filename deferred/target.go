package deferred

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/on-the-ground/curry_ive_go/pure"
)

// Identity names a target function.
type Identity struct {
	Name  string
	Entry uintptr
}

func (id Identity) String() string {
	if id.Name == "" {
		return fmt.Sprintf("func@%#x", id.Entry)
	}
	return id.Name
}

// Key fingerprints the identity; engine logs carry it as target_key so the
// steps of one target can be grouped. Closures created from the same literal
// share a key.
func (id Identity) Key() uint64 {
	var entry [8]byte
	binary.LittleEndian.PutUint64(entry[:], uint64(id.Entry))
	d := xxhash.New()
	_, _ = d.WriteString(id.Name)
	_, _ = d.Write(entry[:])
	return d.Sum64()
}

// Target is a function of fixed arity that a chain eventually invokes.
// A Target is never mutated and may be shared by any number of chains.
type Target struct {
	id     Identity
	key    uint64
	arity  int
	fn     any
	invoke func(args []any) (any, error)
	table  *pure.Table[any]
}

// NewTarget wraps a Go func value, using the default engine's signature cache.
func NewTarget(fn any) (*Target, error) {
	return defaultEngine.NewTarget(fn)
}

// Define builds a target from an argument-slice function with an explicit arity.
// fn receives exactly arity arguments, in the order they were supplied.
func Define(name string, arity int, fn func(args []any) (any, error)) (*Target, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil", ErrNotFunc)
	}
	if arity < 0 {
		return nil, fmt.Errorf("%w: negative arity %d", ErrArityMismatch, arity)
	}
	id := Identity{Name: name, Entry: reflect.ValueOf(fn).Pointer()}
	return &Target{
		id:     id,
		key:    id.Key(),
		arity:  arity,
		fn:     fn,
		invoke: fn,
	}, nil
}

// NameOf returns the runtime name of a func value, or "" for anything else.
func NameOf(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return ""
}

func (t *Target) Identity() Identity { return t.id }
func (t *Target) Arity() int         { return t.arity }

// Func returns the function the target was built from.
func (t *Target) Func() any { return t.fn }

// Tableize returns a copy of the target whose invocations are memoized by
// argument list, keeping at most 2*maxTableSize results. Use it only for pure
// functions.
func (t *Target) Tableize(maxTableSize uint32) *Target {
	memoized := *t
	memoized.table = pure.NewTable[any](maxTableSize)
	return &memoized
}

func (t *Target) call(args []any) (any, error) {
	if t.table == nil {
		return t.invoke(args)
	}
	return t.table.Lookup(args, func() (any, error) {
		return t.invoke(args)
	})
}
