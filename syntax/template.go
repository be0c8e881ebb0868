package syntax

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrTemplate = errors.New("template error")

const maxCachedTemplates = 4096

var templates = &templateCache{m: map[string]*Joined{}}

type templateCache struct {
	mu sync.RWMutex
	m  map[string]*Joined
}

// ParseTemplate parses $[expr] and .[expr] placeholders in v into an
// interpolation sequence.
//
// Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is treated
// as a literal string rather than an expression.
//
// Results are cached by template text and shared between callers; they
// must not be modified.
func ParseTemplate(v string) (*Joined, error) {
	templates.mu.RLock()
	j, ok := templates.m[v]
	templates.mu.RUnlock()
	if ok {
		return j, nil
	}
	j, err := parseTemplate(v)
	if err != nil {
		return nil, err
	}
	templates.mu.Lock()
	defer templates.mu.Unlock()
	if len(templates.m) >= maxCachedTemplates {
		clear(templates.m)
	}
	templates.m[v] = j
	return j, nil
}

func parseTemplate(v string) (*Joined, error) {
	res := &Joined{}
	if len(v) < 3 {
		res.add(&Str{Value: v})
		return res, nil
	}
	exprStart := -1 // position of $ or . that starts the expression
	i := 0
	n := len(v)
	var outBuf []byte // accumulates literal text
	var keyBuf []byte // accumulates the current expression content (unescaped)

	emit := func() error {
		key := strings.TrimSpace(string(keyBuf))
		if key == "" {
			return fmt.Errorf("%w: empty expression at offset %d", ErrTemplate, exprStart)
		}
		if len(outBuf) > 0 {
			res.add(&Str{Value: string(outBuf)})
			outBuf = outBuf[:0]
		}
		res.add(&FormattedValue{Source: key})
		exprStart = -1
		return nil
	}

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$', '.':
			if next == '[' {
				if exprStart != -1 {
					// an unterminated opener before this one is literal
					outBuf = append(outBuf, v[exprStart:i-1]...)
				}
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				if err := emit(); err != nil {
					return nil, err
				}
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	switch {
	case exprStart == -1:
		if i < n {
			outBuf = append(outBuf, v[n-1])
		}
	case i < n && v[n-1] == ']':
		if err := emit(); err != nil {
			return nil, err
		}
	default:
		// still inside an expression with no closing ]
		outBuf = append(outBuf, v[exprStart:n]...)
	}
	if len(outBuf) > 0 {
		res.add(&Str{Value: string(outBuf)})
	}
	return res, nil
}
