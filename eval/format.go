package eval

import "fmt"

// Format renders v with a fmt directive that uses its arguments in order,
// such as "%.*f". stars are the '*' width and precision arguments the
// directive consumes before v. An empty directive means ToString.
func Format(directive string, stars []any, v any) (string, error) {
	if directive == "" {
		return ToString(v)
	}
	args := make([]any, 0, len(stars)+1)
	for _, s := range stars {
		i, err := ToInt(s)
		if err != nil {
			return "", fmt.Errorf("bad width or precision for %s: %w", directive, err)
		}
		args = append(args, i)
	}
	args = append(args, v)
	return fmt.Sprintf(directive, args...), nil
}
