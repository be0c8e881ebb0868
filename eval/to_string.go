package eval

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// ToString renders v the way an expression result is shown when no
// directive is given: strings as is, numbers in their shortest form,
// Stringers through String, and composite values as flow yaml.
func ToString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	case error:
		return x.Error(), nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), nil
	default:
		d, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
		if err != nil {
			return "", fmt.Errorf("could not render %T: %w", v, err)
		}
		return string(bytes.TrimRight(d, "\n")), nil
	}
}
