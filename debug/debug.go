package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Eval     bool
	CallSite bool
	Parts    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("FVALUES_DEBUG_EVAL")
	d.CallSite = boolEnv("FVALUES_DEBUG_CALLSITE")
	d.Parts = boolEnv("FVALUES_DEBUG_PARTS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func CallSite() bool {
	return d.CallSite
}
func Parts() bool {
	return d.Parts
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
