package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/fvalues"
	"github.com/signadot/fvalues/format"
)

type EncState struct {
	format  format.Format
	sources bool
	Color   func(ColorAttr, string) string
}

// Record is how a String is written in the YAML and JSON formats.
type Record struct {
	Text  string       `json:"text" yaml:"text"`
	Parts []PartRecord `json:"parts,omitempty" yaml:"parts,omitempty"`
}

type PartRecord struct {
	// Kind is one of "literal", "fvalue" or "string".
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Value is a *Record when the value is a fvalues.String.
	Value any          `json:"value,omitempty" yaml:"value,omitempty"`
	Parts []PartRecord `json:"parts,omitempty" yaml:"parts,omitempty"`
}

func Encode(s fvalues.String, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.TextFormat:
		if err := encodeText(s.Parts(), w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		d, err := yaml.Marshal(NewRecord(s))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(NewRecord(s))
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, int(es.format))
	}
}

func NewRecord(s fvalues.String) *Record {
	return &Record{Text: s.String(), Parts: partRecords(s.Parts())}
}

func partRecords(parts []fvalues.Part) []PartRecord {
	if len(parts) == 0 {
		return nil
	}
	res := make([]PartRecord, len(parts))
	for i, p := range parts {
		switch x := p.(type) {
		case fvalues.Literal:
			res[i] = PartRecord{Kind: "literal", Text: string(x)}
		case fvalues.FValue:
			pr := PartRecord{Kind: "fvalue", Text: x.Formatted, Source: x.Source, Value: x.Value}
			switch v := x.Value.(type) {
			case fvalues.String:
				pr.Value = NewRecord(v)
			case *fvalues.String:
				if v != nil {
					pr.Value = NewRecord(*v)
				}
			}
			res[i] = pr
		case fvalues.String:
			res[i] = PartRecord{Kind: "string", Text: x.String(), Parts: partRecords(x.Parts())}
		}
	}
	return res
}

func encodeText(parts []fvalues.Part, w io.Writer, es *EncState) error {
	for _, p := range parts {
		var err error
		switch x := p.(type) {
		case fvalues.Literal:
			err = writeString(w, es.color(LiteralColor, string(x)))
		case fvalues.FValue:
			if es.sources {
				if err := writeString(w, es.color(SourceColor, "{"+x.Source+"}")); err != nil {
					return err
				}
			}
			err = writeString(w, es.color(ValueColor, x.Formatted))
		case fvalues.String:
			err = encodeText(x.Parts(), w, es)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil || s == "" {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
