package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/fvalues"
)

func MustString(s fvalues.String, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(s, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
