package eval

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
)

// Func is a function made available to expressions.
type Func struct {
	Name string
	Fn   func(params ...any) (any, error)
	// Types are the function signatures, as expr.Function expects them,
	// e.g. new(func(string) string).
	Types []any
}

func (f Func) String() string {
	return f.Name
}

func (f Func) option() expr.Option {
	return expr.Function(f.Name, f.Fn, f.Types...)
}

var (
	mu sync.RWMutex
	d  = map[string]Func{}
)

var ErrFuncExists = errors.New("function exists")

// Register makes f available to every expression compiled afterwards.
func Register(f Func) error {
	mu.Lock()
	_, present := d[f.Name]
	if present {
		mu.Unlock()
		return fmt.Errorf("%s: %w", f, ErrFuncExists)
	}
	d[f.Name] = f
	mu.Unlock()
	programs.reset()
	return nil
}

func init() {
	for _, f := range []Func{GetEnv(), Quote()} {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}

func Lookup(name string) (Func, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := d[name]
	return f, ok
}

// Funcs returns the registered functions sorted by name.
func Funcs() []Func {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Func, 0, len(d))
	for _, f := range d {
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

func exprOpts() []expr.Option {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]expr.Option, 0, len(d))
	for _, f := range d {
		res = append(res, f.option())
	}
	return res
}
