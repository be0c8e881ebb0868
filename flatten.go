package fvalues

// Flatten replaces each FValue whose value is a String, and each String
// part, by that String's own parts, recursively. An FValue whose text
// differs from its String value's text, such as one left by a trim, is
// kept.
func (s String) Flatten() String {
	return newString(s.text, flattenParts(s.parts))
}

func flattenParts(parts []Part) []Part {
	var res []Part
	for _, p := range parts {
		switch x := p.(type) {
		case String:
			res = append(res, flattenParts(x.parts)...)
			continue
		case FValue:
			if v, ok := nestedString(x.Value); ok && v.text == x.Formatted {
				res = append(res, flattenParts(v.parts)...)
				continue
			}
		}
		res = append(res, p)
	}
	return res
}

func nestedString(v any) (String, bool) {
	switch x := v.(type) {
	case String:
		return x, true
	case *String:
		if x != nil {
			return *x, true
		}
	}
	return String{}, false
}
