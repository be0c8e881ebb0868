package eval

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/signadot/fvalues/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

// Env holds the named bindings expressions are evaluated against.
type Env map[string]any

var ErrUndefined = errors.New("undefined name")

// Eval evaluates the expression source against env.
//
// Names the expression refers to must be bound in env or be registered
// functions; expr-lang would otherwise silently evaluate them to nil.
func Eval(source string, env Env) (any, error) {
	prg, err := programs.get(source)
	if err != nil {
		return nil, err
	}
	for _, id := range prg.idents {
		if _, ok := env[id]; ok {
			continue
		}
		if _, ok := Lookup(id); ok {
			continue
		}
		if debug.Eval() {
			debug.Logf("eval %q: %s not in env ", source, id)
			debug.LogAny(env)
		}
		return nil, fmt.Errorf("%w: %s", ErrUndefined, id)
	}
	vars := map[string]any(env)
	if vars == nil {
		vars = map[string]any{}
	}
	res, err := vm.Run(prg.prg, vars)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", source, res)
	}
	return res, nil
}

type program struct {
	prg    *vm.Program
	idents []string
}

var programs = &programCache{m: map[string]*program{}}

type programCache struct {
	mu sync.RWMutex
	m  map[string]*program
}

func (c *programCache) get(source string) (*program, error) {
	c.mu.RLock()
	p, ok := c.m[source]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}
	p, err := compile(source)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.m[source]; ok {
		return cached, nil
	}
	c.m[source] = p
	return p, nil
}

func (c *programCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}

func compile(source string) (*program, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	prg, err := expr.Compile(source, exprOpts()...)
	if err != nil {
		return nil, err
	}
	iv := &identVisitor{declared: map[string]bool{}}
	ast.Walk(&tree.Node, iv)
	p := &program{prg: prg}
	seen := map[string]bool{}
	for _, id := range iv.idents {
		if seen[id] || iv.declared[id] || strings.HasPrefix(id, "$") {
			continue
		}
		seen[id] = true
		p.idents = append(p.idents, id)
	}
	return p, nil
}

type identVisitor struct {
	idents   []string
	declared map[string]bool
}

func (v *identVisitor) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		v.idents = append(v.idents, n.Value)
	case *ast.VariableDeclaratorNode:
		v.declared[n.Name] = true
	}
}
