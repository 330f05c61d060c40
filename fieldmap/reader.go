package fieldmap

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/reflectkit/introspector/arrays"
	"github.com/reflectkit/introspector/diagnostic"
	"github.com/reflectkit/introspector/logging"
	"github.com/reflectkit/introspector/options"
)

const (
	DefaultMaxDepth      = 64
	DefaultPlanCacheSize = 256
)

// Reader converts struct values into field maps. It is safe for concurrent use.
type Reader struct {
	maxDepth int
	allowed  options.CategoryEnum
	logger   logging.Logger
	plans    *lru.Cache[reflect.Type, []fieldPlan]
}

type config struct {
	maxDepth  int
	allowed   options.CategoryEnum
	logger    logging.Logger
	cacheSize int
}

// Option configures a Reader.
type Option func(*config)

// WithMaxDepth limits how many arrays and structs may be nested inside each
// other, the root struct included.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithCategories selects which categories are expanded. Values of a disabled
// category are kept as-is.
func WithCategories(allowed options.CategoryEnum) Option {
	return func(c *config) {
		c.allowed = allowed
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithPlanCacheSize sets how many struct types keep their field plan cached.
func WithPlanCacheSize(size int) Option {
	return func(c *config) {
		c.cacheSize = size
	}
}

func NewReader(opts ...Option) (*Reader, error) {
	cfg := config{
		maxDepth:  DefaultMaxDepth,
		allowed:   options.CategoryAll,
		cacheSize: DefaultPlanCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.maxDepth < 1 {
		return nil, fmt.Errorf("max depth must be positive, got %d", cfg.maxDepth)
	}

	plans, err := lru.New[reflect.Type, []fieldPlan](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("plan cache: %w", err)
	}

	return &Reader{
		maxDepth: cfg.maxDepth,
		allowed:  cfg.allowed,
		logger:   logging.OrNoop(cfg.logger),
		plans:    plans,
	}, nil
}

var defaultReader = sync.OnceValue(func() *Reader {
	r, err := NewReader()
	if err != nil {
		panic(err)
	}
	return r
})

// Read converts obj with the default Reader.
func Read(obj any) (*FieldMap, diagnostic.Diagnostics, error) {
	return defaultReader().Read(obj)
}

// Read converts the struct obj, or the struct obj points to, into a field map.
// Fields that could not be read are missing from the map and reported in the
// returned diagnostics.
func (r *Reader) Read(obj any) (*FieldMap, diagnostic.Diagnostics, error) {
	w := &walker{Reader: r}

	fm, err := w.root(reflect.ValueOf(obj))
	if err != nil {
		return nil, w.diags, err
	}

	return fm, w.diags, nil
}

// walker carries the state of a single Read.
type walker struct {
	*Reader
	trail trail
	diags diagnostic.Diagnostics
}

func (w *walker) root(v reflect.Value) (*FieldMap, error) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, ErrNilValue
		}

		if v.Kind() == reflect.Ptr {
			if !w.trail.Enter(v) {
				err := fmt.Errorf("%w: %s points to itself", ErrCycle, typeStr(v.Type()))
				return nil, w.fail(diagnostic.CodeCycle, err, v.Type(), "")
			}
		}

		v = v.Elem()
	}

	if !v.IsValid() {
		return nil, ErrNilValue
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, typeStr(v.Type()))
	}

	name := v.Type().Name()
	if name == "" {
		name = "struct"
	}

	return w.composite(v, 1, name)
}

// fail records err as an error diagnostic and returns it. The walk stops on
// the first one.
func (w *walker) fail(code string, err error, t reflect.Type, path string) error {
	w.diags.AddError(code, err, typeStr(t), path)
	return err
}

func (w *walker) value(v reflect.Value, depth int, path string) (any, error) {
	kind, v := Dispatch(v, w.allowed)

	switch kind {
	case DispatcherNil:
		return nil, nil
	case DispatcherScalar, DispatcherBuiltin:
		return v.Interface(), nil
	case DispatcherPointer:
		return w.pointer(v, depth, path)
	case DispatcherArray:
		if depth+1 > w.maxDepth {
			err := fmt.Errorf("%w: %d at %s", ErrMaxDepth, w.maxDepth, path)
			return nil, w.fail(diagnostic.CodeMaxDepth, err, v.Type(), path)
		}

		return arrays.Walk(v, func(i int, elem reflect.Value) (any, error) {
			return w.value(elem, depth+1, fmt.Sprintf("%s[%d]", path, i))
		})
	case DispatcherComposite:
		if depth+1 > w.maxDepth {
			err := fmt.Errorf("%w: %d at %s", ErrMaxDepth, w.maxDepth, path)
			return nil, w.fail(diagnostic.CodeMaxDepth, err, v.Type(), path)
		}

		return w.composite(v, depth+1, path)
	default:
		return nil, fmt.Errorf("unexpected category %s at %s", kind, path)
	}
}

func (w *walker) pointer(v reflect.Value, depth int, path string) (any, error) {
	if !w.trail.Enter(v) {
		err := fmt.Errorf("%w: %s at %s", ErrCycle, typeStr(v.Type()), path)
		return nil, w.fail(diagnostic.CodeCycle, err, v.Type(), path)
	}
	defer w.trail.Leave(v)

	return w.value(v.Elem(), depth, path)
}

func (w *walker) composite(v reflect.Value, depth int, path string) (*FieldMap, error) {
	if !v.CanAddr() {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}

	t := v.Type()
	typeName := typeStr(t)
	plan := w.plan(t)

	fm := NewFieldMap(len(plan))
	for _, f := range plan {
		fieldPath := path + "." + f.name

		if f.embedded && !w.allowed.Has(options.CategoryEmbedded) {
			w.diags.AddInfo(diagnostic.CodeFieldSkipped, "embedded field skipped", typeName, fieldPath)
			continue
		}

		fv, err := w.field(v, f)
		if err != nil {
			w.logger.Warn("field omitted",
				logging.String("type", typeName),
				logging.String("field", fieldPath),
				logging.Err(err),
			)
			w.diags.AddWarning(diagnostic.CodeFieldUnreadable, err, typeName, fieldPath)
			continue
		}

		out, err := w.value(fv, depth, fieldPath)
		if err != nil {
			return nil, err
		}

		fm.Set(f.name, out)
	}

	return fm, nil
}

// field reads a declared field of the addressable struct v, bypassing
// visibility for unexported fields.
func (w *walker) field(v reflect.Value, f fieldPlan) (fv reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInaccessible, r)
		}
	}()

	fv = v.Field(f.index)
	if f.exported {
		return fv, nil
	}

	if !w.allowed.Has(options.CategoryUnexported) {
		return reflect.Value{}, fmt.Errorf("%w: %s is unexported", ErrInaccessible, f.name)
	}

	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem(), nil
}
