package fvalues

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	ErrInconsistentParts   = errors.New("inconsistent parts")
	ErrAmbiguousInvocation = errors.New("ambiguous invocation")
	ErrEvaluation          = errors.New("evaluation error")
)

// InconsistentPartsError is returned when parts do not concatenate to the
// text they are meant to make up.
type InconsistentPartsError struct {
	Text   string
	Joined string
}

func (e *InconsistentPartsError) Error() string {
	return fmt.Sprintf("%s: %q != %q: %s", ErrInconsistentParts, e.Text, e.Joined, e.Diff())
}

func (e *InconsistentPartsError) Is(target error) bool {
	return target == ErrInconsistentParts
}

// Diff shows how the joined parts differ from the text: text only in Text
// as {+...+}, text only in the parts as [-...-].
func (e *InconsistentPartsError) Diff() string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(e.Joined, e.Text, false))
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffmatchpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		}
	}
	return buf.String()
}

// EvaluationError is returned when an interpolated expression cannot be
// evaluated.
type EvaluationError struct {
	Source string
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s: evaluating %q: %v", ErrEvaluation, e.Source, e.Err)
}

func (e *EvaluationError) Is(target error) bool {
	return target == ErrEvaluation
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// NoSourceAvailableWarning is passed to the warning handler when F cannot
// find the source of its call. The String is still built, with its whole
// text as one Literal.
type NoSourceAvailableWarning struct {
	Err error
}

func (w *NoSourceAvailableWarning) Error() string {
	return fmt.Sprintf("couldn't get source node of F() call: %v", w.Err)
}

func (w *NoSourceAvailableWarning) Unwrap() error {
	return w.Err
}
