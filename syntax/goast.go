package syntax

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// SourceFunc returns the source text of a node.
type SourceFunc func(ast.Node) string

func exprString(n ast.Node) string {
	e, ok := n.(ast.Expr)
	if !ok {
		return ""
	}
	return types.ExprString(e)
}

// FromGo converts the Go expression passed where an interpolated string is
// expected. String constants become a *Str, fmt.Sprintf calls with a
// constant format become a *Joined, + of those joins them, and anything
// else is an *Expr.
//
// If src is nil, sources are rendered with go/types.ExprString.
func FromGo(e ast.Expr, src SourceFunc) Node {
	if src == nil {
		src = exprString
	}
	if n, ok := interpolation(e, src); ok {
		return n
	}
	return &Expr{Source: src(astutil.Unparen(e))}
}

// Operand converts one operand of a concatenation. Only string constants
// are taken apart; everything else is an *Expr whose value the caller
// already holds.
func Operand(e ast.Expr, src SourceFunc) Node {
	if src == nil {
		src = exprString
	}
	if v, ok := constString(e); ok {
		return &Str{Value: v}
	}
	return &Expr{Source: src(astutil.Unparen(e))}
}

func interpolation(e ast.Expr, src SourceFunc) (Node, bool) {
	if v, ok := constString(e); ok {
		return &Str{Value: v}, true
	}
	switch x := astutil.Unparen(e).(type) {
	case *ast.BinaryExpr:
		if x.Op != token.ADD {
			return nil, false
		}
		l, ok := interpolation(x.X, src)
		if !ok {
			return nil, false
		}
		r, ok := interpolation(x.Y, src)
		if !ok {
			return nil, false
		}
		return Join(l, r), true
	case *ast.CallExpr:
		if !isSprintf(x.Fun) || x.Ellipsis.IsValid() || len(x.Args) == 0 {
			return nil, false
		}
		format, ok := constString(x.Args[0])
		if !ok {
			return nil, false
		}
		j, ok := parsePrintf(format, x.Args[1:], src)
		if !ok {
			return nil, false
		}
		return j, true
	}
	return nil, false
}

// constString folds string literals and + of string literals.
func constString(e ast.Expr) (string, bool) {
	switch x := astutil.Unparen(e).(type) {
	case *ast.BasicLit:
		if x.Kind != token.STRING {
			return "", false
		}
		v, err := strconv.Unquote(x.Value)
		if err != nil {
			return "", false
		}
		return v, true
	case *ast.BinaryExpr:
		if x.Op != token.ADD {
			return "", false
		}
		l, ok := constString(x.X)
		if !ok {
			return "", false
		}
		r, ok := constString(x.Y)
		if !ok {
			return "", false
		}
		return l + r, true
	}
	return "", false
}

func isSprintf(fun ast.Expr) bool {
	sel, ok := astutil.Unparen(fun).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Sprintf" {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "fmt"
}
