package deferred

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/curry_ive_go/pure"
)

var errorType = reflect.TypeFor[error]()

type signature struct {
	in      []reflect.Type
	numOut  int
	errLast bool
}

func analyze(typ reflect.Type) (signature, error) {
	if typ == nil || typ.Kind() != reflect.Func {
		return signature{}, fmt.Errorf("%w: %v", ErrNotFunc, typ)
	}
	if typ.IsVariadic() {
		return signature{}, fmt.Errorf("%w: %v", ErrVariadic, typ)
	}
	sig := signature{
		in:     make([]reflect.Type, typ.NumIn()),
		numOut: typ.NumOut(),
	}
	for i := range sig.in {
		sig.in[i] = typ.In(i)
	}
	sig.errLast = sig.numOut > 0 && typ.Out(sig.numOut-1) == errorType
	return sig, nil
}

func (e *Engine) signatureOf(typ reflect.Type) (signature, error) {
	keys := []pure.Key{typ}
	if sig, ok := e.signatures.Load(keys); ok {
		return sig, nil
	}
	sig, err := analyze(typ)
	if err != nil {
		return signature{}, err
	}
	e.signatures.Store(keys, sig)
	return sig, nil
}

func (s signature) arguments(args []any) ([]reflect.Value, error) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := s.in[i]
		if arg == nil {
			if !nillable(want) {
				return nil, &ArgumentTypeError{Position: i + 1, Want: want}
			}
			in[i] = reflect.Zero(want)
			continue
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, &ArgumentTypeError{Position: i + 1, Want: want, Got: v.Type()}
		}
		in[i] = v
	}
	return in, nil
}

func (s signature) results(outs []reflect.Value) (any, error) {
	var err error
	if s.errLast {
		if last := outs[len(outs)-1]; !last.IsNil() {
			err = last.Interface().(error)
		}
		outs = outs[:len(outs)-1]
	}
	switch len(outs) {
	case 0:
		return nil, err
	case 1:
		return outs[0].Interface(), err
	default:
		values := make([]any, len(outs))
		for i, out := range outs {
			values[i] = out.Interface()
		}
		return values, err
	}
}

func nillable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
