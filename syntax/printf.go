package syntax

import (
	"go/ast"
	"strings"
	"unicode/utf8"
)

// parsePrintf splits a fmt format string into literal segments and one
// FormattedValue per verb, assigning arguments the way fmt.Sprintf does.
// ok is false when the format and arguments do not line up (missing or
// extra arguments, bad indexes, a dangling %), in which case the call
// cannot be attributed verb by verb.
func parsePrintf(format string, args []ast.Expr, src SourceFunc) (j *Joined, ok bool) {
	p := &printfParser{format: format, nargs: len(args)}
	j = &Joined{}
	lit := &strings.Builder{}
	end := len(format)
	argNum := 0
	for i := 0; i < end; {
		lasti := i
		for i < end && format[i] != '%' {
			i++
		}
		lit.WriteString(format[lasti:i])
		if i >= end {
			break
		}
		i++ // skip %

		dir := []byte{'%'}
		for ; i < end; i++ {
			c := format[i]
			if c != '#' && c != '0' && c != '+' && c != '-' && c != ' ' {
				break
			}
			dir = append(dir, c)
		}

		var stars []string
		star := func() bool {
			if argNum >= len(args) {
				return false
			}
			stars = append(stars, src(args[argNum]))
			argNum++
			dir = append(dir, '*')
			return true
		}

		var afterIndex bool
		argNum, i, afterIndex = p.argNumber(argNum, i)

		// width
		if i < end && format[i] == '*' {
			i++
			if !star() {
				return nil, false
			}
			afterIndex = false
		} else {
			_, isNum, newi := parsenum(format, i, end)
			if isNum {
				if afterIndex {
					return nil, false
				}
				dir = append(dir, format[i:newi]...)
			}
			i = newi
		}

		// precision
		if i+1 < end && format[i] == '.' {
			i++
			if afterIndex {
				return nil, false
			}
			dir = append(dir, '.')
			argNum, i, afterIndex = p.argNumber(argNum, i)
			if i < end && format[i] == '*' {
				i++
				if !star() {
					return nil, false
				}
				afterIndex = false
			} else {
				_, _, newi := parsenum(format, i, end)
				dir = append(dir, format[i:newi]...)
				i = newi
			}
		}

		if !afterIndex {
			argNum, i, _ = p.argNumber(argNum, i)
		}
		if i >= end || p.bad {
			return nil, false
		}

		verb, size := rune(format[i]), 1
		if verb >= utf8.RuneSelf {
			verb, size = utf8.DecodeRuneInString(format[i:])
		}
		i += size

		if verb == '%' {
			lit.WriteByte('%')
			continue
		}
		if argNum >= len(args) {
			return nil, false
		}
		if lit.Len() > 0 {
			j.add(&Str{Value: lit.String()})
			lit.Reset()
		}
		dir = utf8.AppendRune(dir, verb)
		j.add(&FormattedValue{
			Source:    src(args[argNum]),
			Directive: string(dir),
			Args:      stars,
		})
		argNum++
	}
	if !p.reordered && argNum < len(args) {
		return nil, false
	}
	if lit.Len() > 0 {
		j.add(&Str{Value: lit.String()})
	}
	return j, true
}

type printfParser struct {
	format    string
	nargs     int
	reordered bool
	bad       bool
}

// argNumber returns the next argument to evaluate, which is either the
// value of the passed-in argNum or the value of the bracketed integer that
// begins format[i:]. It also returns the new value of i, that is, the index
// of the next byte of the format to process.
func (p *printfParser) argNumber(argNum, i int) (newArgNum, newi int, found bool) {
	if len(p.format) <= i || p.format[i] != '[' {
		return argNum, i, false
	}
	p.reordered = true
	index, wid, ok := parseArgNumber(p.format[i:])
	if ok && 0 <= index && index < p.nargs {
		return index, i + wid, true
	}
	p.bad = true
	return argNum, i + wid, ok
}

// parseArgNumber returns the value of the bracketed number, minus 1
// (explicit argument numbers are one-indexed but we want zero-indexed).
// The opening bracket is known to be present at format[0].
// The returned values are the index, the number of bytes to consume
// up to the closing paren, if present, and whether the number parsed
// ok. The bytes to consume will be 1 if no closing paren is present.
func parseArgNumber(format string) (index int, wid int, ok bool) {
	if len(format) < 3 {
		return 0, 1, false
	}
	for i := 1; i < len(format); i++ {
		if format[i] == ']' {
			width, ok, newi := parsenum(format, 1, i)
			if !ok || newi != i {
				return 0, i + 1, false
			}
			return width - 1, i + 1, true
		}
	}
	return 0, 1, false
}

// parsenum converts ASCII to integer. num is 0 (and isnum is false) if no
// number present.
func parsenum(s string, start, end int) (num int, isnum bool, newi int) {
	if start >= end {
		return 0, false, end
	}
	for newi = start; newi < end && '0' <= s[newi] && s[newi] <= '9'; newi++ {
		if num > 1e6 {
			return 0, false, end
		}
		num = num*10 + int(s[newi]-'0')
		isnum = true
	}
	return
}
