package deferred

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
	"github.com/on-the-ground/curry_ive_go/internal/logging"
	"github.com/on-the-ground/curry_ive_go/pure"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const DefaultSignatureCacheSize = 256

// Config holds engine settings. Use NewConfig to get defaults applied.
type Config struct {
	Logger             *zap.Logger // default: no-op
	SignatureCacheSize uint32      // default: DefaultSignatureCacheSize
}

// Option adjusts a Config before it is validated.
type Option func(*Config)

// WithLogger sets the logger that receives step and invocation debug logs.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithDevelopmentLogging logs every step to stdout at debug level.
func WithDevelopmentLogging() Option {
	return func(c *Config) { c.Logger = logging.Development(zap.DebugLevel) }
}

// WithSignatureCacheSize bounds the per-type signature cache of an engine.
func WithSignatureCacheSize(size uint32) Option {
	return func(c *Config) { c.SignatureCacheSize = size }
}

// NewConfig applies opts over the defaults and reports every invalid setting.
func NewConfig(opts ...Option) (Config, error) {
	cfg := Config{
		Logger:             logging.Nop(),
		SignatureCacheSize: DefaultSignatureCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var err error
	if c.Logger == nil {
		err = multierr.Append(err, fmt.Errorf("%w: logger is nil", ErrInvalidConfig))
	}
	if c.SignatureCacheSize == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: signature cache size must be greater than 0", ErrInvalidConfig))
	}
	return err
}

// Engine builds targets and starts chains. It holds no per-chain state and is
// safe for concurrent use.
type Engine struct {
	logger     *zap.Logger
	signatures *pure.Trie[signature]
}

// New builds an engine from opts. It fails with ErrInvalidConfig when the
// resulting Config is invalid.
func New(opts ...Option) (*Engine, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		logger:     cfg.Logger,
		signatures: pure.NewTrie[signature](cfg.SignatureCacheSize),
	}, nil
}

var defaultEngine = mustNew()

func mustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Curry starts a currying chain on target, a func value or a *Target.
// A nullary target is invoked right away.
func Curry(target any) (any, error) {
	return defaultEngine.Curry(target)
}

// Partial starts a partial application chain with args already collected.
func Partial(target any, args ...any) (any, error) {
	return defaultEngine.Partial(target, args...)
}

func (e *Engine) Curry(target any) (any, error) {
	t, err := e.targetOf(target)
	if err != nil {
		return nil, err
	}
	return e.next(t, nil, ModeCurry, uuid.New())
}

func (e *Engine) Partial(target any, args ...any) (any, error) {
	t, err := e.targetOf(target)
	if err != nil {
		return nil, err
	}
	return e.next(t, slices.Clone(args), ModePartial, uuid.New())
}

// NewTarget wraps a Go func value. Variadic funcs are rejected.
func (e *Engine) NewTarget(fn any) (*Target, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() == reflect.Func && v.IsNil() {
		return nil, fmt.Errorf("%w: nil %v", ErrNotFunc, v.Type())
	}
	sig, err := e.signatureOf(reflect.TypeOf(fn))
	if err != nil {
		return nil, err
	}
	id := Identity{Name: NameOf(fn), Entry: v.Pointer()}
	return &Target{
		id:    id,
		key:   id.Key(),
		arity: len(sig.in),
		fn:    fn,
		invoke: func(args []any) (any, error) {
			in, err := sig.arguments(args)
			if err != nil {
				return nil, err
			}
			return sig.results(v.Call(in))
		},
	}, nil
}

func (e *Engine) targetOf(target any) (*Target, error) {
	if t, ok := target.(*Target); ok {
		if t == nil {
			return nil, fmt.Errorf("%w: nil target", ErrNotFunc)
		}
		return t, nil
	}
	return e.NewTarget(target)
}

// next either invokes the target, when collected is complete, or hands back
// a Call awaiting the rest.
func (e *Engine) next(t *Target, collected []any, mode Mode, chain uuid.UUID) (any, error) {
	remaining := t.arity - len(collected)
	switch {
	case remaining < 0:
		return nil, &ArityMismatchError{Expected: t.arity, Received: len(collected)}
	case remaining == 0:
		e.logger.Debug("invoking target",
			zap.Stringer("chain", chain),
			zap.Stringer("target", t.id),
			zap.Uint64("target_key", t.key),
			zap.Stringer("mode", mode),
			zap.Int("arity", t.arity),
		)
		return t.call(collected)
	default:
		e.logger.Debug("deferred step",
			zap.Stringer("chain", chain),
			zap.Stringer("target", t.id),
			zap.Uint64("target_key", t.key),
			zap.Stringer("mode", mode),
			zap.Int("collected", len(collected)),
			zap.Int("remaining", remaining),
		)
		return &Call{
			engine:    e,
			target:    t,
			collected: collected,
			mode:      mode,
			chain:     chain,
		}, nil
	}
}
