package callsite

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/signadot/fvalues/debug"

	"golang.org/x/tools/go/ast/astutil"
)

// SourceResolver resolves call sites by parsing the caller's Go source
// file. It is safe for concurrent use.
type SourceResolver struct {
	mu     sync.RWMutex
	files  map[string]*sourceFile
	sites  map[siteKey]siteEntry
	parses int
}

type sourceFile struct {
	fset   *token.FileSet
	src    []byte
	calls  []*ast.CallExpr
	byLine map[int][]*ast.CallExpr
	err    error
}

type siteKey struct {
	file  string
	line  int
	names string
}

type siteEntry struct {
	site *Site
	err  error
}

// Stats reports the cache sizes of a SourceResolver and how many times it
// has parsed a file.
type Stats struct {
	Files  int
	Sites  int
	Parses int
}

var defaultResolver = NewSourceResolver()

// Default returns the process wide SourceResolver.
func Default() *SourceResolver {
	return defaultResolver
}

func NewSourceResolver() *SourceResolver {
	return &SourceResolver{
		files: map[string]*sourceFile{},
		sites: map[siteKey]siteEntry{},
	}
}

func (r *SourceResolver) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{Files: len(r.files), Sites: len(r.sites), Parses: r.parses}
}

func (r *SourceResolver) Resolve(skip int, names ...string) (*Site, error) {
	var pcs [32]uintptr
	// skip runtime.Callers and Resolve
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var fr runtime.Frame
	for i := 0; ; i++ {
		f, more := frames.Next()
		if i == skip {
			fr = f
			break
		}
		if !more {
			return nil, fmt.Errorf("%w: stack has fewer than %d frames", ErrNoSource, skip+1)
		}
	}
	if fr.File == "" || fr.Line == 0 {
		return nil, fmt.Errorf("%w: no file for %s", ErrNoSource, fr.Function)
	}
	return r.Lookup(fr.File, fr.Line, names...)
}

// Lookup returns the call to one of names at file:line.
func (r *SourceResolver) Lookup(file string, line int, names ...string) (*Site, error) {
	key := siteKey{file: file, line: line, names: strings.Join(names, ",")}
	r.mu.RLock()
	e, ok := r.sites[key]
	r.mu.RUnlock()
	if ok {
		return e.site, e.err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Check again in case it was resolved while we were waiting for the lock
	if e, ok := r.sites[key]; ok {
		return e.site, e.err
	}
	site, err := r.find(file, line, names)
	r.sites[key] = siteEntry{site: site, err: err}
	if debug.CallSite() {
		debug.Logf("callsite %s:%d %v: err=%v\n", file, line, names, err)
	}
	return site, err
}

// find must be called with r.mu held.
func (r *SourceResolver) find(file string, line int, names []string) (*Site, error) {
	sf := r.load(file)
	if sf.err != nil {
		return nil, sf.err
	}
	var cands []*ast.CallExpr
	for _, c := range sf.byLine[line] {
		if slices.Contains(names, calleeName(c.Fun)) {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		// the reported line may be inside a call spanning several lines
		for _, c := range sf.calls {
			if !slices.Contains(names, calleeName(c.Fun)) {
				continue
			}
			start, end := sf.fset.Position(c.Pos()).Line, sf.fset.Position(c.End()).Line
			if start <= line && line <= end {
				cands = append(cands, c)
			}
		}
	}
	switch len(cands) {
	case 0:
		return nil, fmt.Errorf("%w: no call to %s at %s:%d", ErrNoSource, strings.Join(names, " or "), file, line)
	case 1:
		return &Site{
			File: file,
			Line: line,
			Call: cands[0],
			fset: sf.fset,
			src:  sf.src,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d calls to %s at %s:%d", ErrAmbiguous, len(cands), strings.Join(names, " or "), file, line)
	}
}

// load must be called with r.mu held.
func (r *SourceResolver) load(file string) *sourceFile {
	if sf, ok := r.files[file]; ok {
		return sf
	}
	sf := parseFile(file)
	r.parses++
	r.files[file] = sf
	return sf
}

func parseFile(file string) *sourceFile {
	sf := &sourceFile{fset: token.NewFileSet(), byLine: map[int][]*ast.CallExpr{}}
	src, err := os.ReadFile(file)
	if err != nil {
		sf.err = fmt.Errorf("%w: %w", ErrNoSource, err)
		return sf
	}
	f, err := parser.ParseFile(sf.fset, file, src, parser.SkipObjectResolution)
	if err != nil {
		sf.err = fmt.Errorf("%w: failed to parse file %q: %w", ErrNoSource, file, err)
		return sf
	}
	sf.src = src
	ast.Inspect(f, func(n ast.Node) bool {
		c, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sf.calls = append(sf.calls, c)
		line := sf.fset.Position(c.Lparen).Line
		sf.byLine[line] = append(sf.byLine[line], c)
		return true
	})
	return sf
}

// calleeName returns the name a call is made through: the identifier of a
// function, the selector of a qualified function or method, with type
// arguments removed.
func calleeName(fun ast.Expr) string {
	switch x := astutil.Unparen(fun).(type) {
	case *ast.Ident:
		return x.Name
	case *ast.SelectorExpr:
		return x.Sel.Name
	case *ast.IndexExpr:
		return calleeName(x.X)
	case *ast.IndexListExpr:
		return calleeName(x.X)
	}
	return ""
}
