package callsite

import (
	"bytes"
	"errors"
	"go/ast"
	"go/format"
	"go/token"
)

var (
	ErrNoSource  = errors.New("no source available")
	ErrAmbiguous = errors.New("ambiguous call site")
)

// Resolver supplies the syntax of the invocation currently executing.
type Resolver interface {
	// Resolve returns the call skip frames above the caller of Resolve
	// (skip 0 is the caller itself), provided the call is to a function or
	// method named one of names.
	Resolve(skip int, names ...string) (*Site, error)
}

// Site is a resolved call. Sites are cached and shared; their syntax must
// not be modified.
type Site struct {
	File string
	Line int
	Call *ast.CallExpr

	fset *token.FileSet
	src  []byte
}

// NewSite makes a Site for a call parsed by the caller. src may be nil, in
// which case Text falls back to Unparse.
func NewSite(fset *token.FileSet, src []byte, call *ast.CallExpr) *Site {
	pos := fset.Position(call.Lparen)
	return &Site{
		File: pos.Filename,
		Line: pos.Line,
		Call: call,
		fset: fset,
		src:  src,
	}
}

// Text returns the exact source text of n, or its canonical rendering if the
// source is not at hand.
func (s *Site) Text(n ast.Node) string {
	if s.src != nil {
		if f := s.fset.File(n.Pos()); f != nil {
			start, end := f.Offset(n.Pos()), f.Offset(n.End())
			if start <= end && end <= len(s.src) {
				return string(s.src[start:end])
			}
		}
	}
	return Unparse(s.fset, n)
}

// Unparse renders n back to canonical Go source.
func Unparse(fset *token.FileSet, n ast.Node) string {
	if fset == nil {
		fset = token.NewFileSet()
	}
	buf := bytes.NewBuffer(nil)
	if err := format.Node(buf, fset, n); err != nil {
		return ""
	}
	return buf.String()
}
