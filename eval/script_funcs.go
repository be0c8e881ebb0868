package eval

import (
	"os"
	"strconv"
)

func GetEnv() Func {
	return Func{
		Name: "getenv",
		Fn: func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
		Types: []any{new(func(string) string)},
	}
}

// Quote renders its argument the way ToString does, as a Go quoted string.
func Quote() Func {
	return Func{
		Name: "quote",
		Fn: func(params ...any) (any, error) {
			s, err := ToString(params[0])
			if err != nil {
				return nil, err
			}
			return strconv.Quote(s), nil
		},
		Types: []any{new(func(any) string)},
	}
}
