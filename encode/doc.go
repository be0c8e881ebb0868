// Package encode writes a fvalues.String showing the parts it is made of.
//
// # Usage
//
//	err := encode.Encode(s, os.Stdout,
//		encode.EncodeFormat(format.YAMLFormat))
//
// The text format writes the string's text, optionally coloring each part
// by kind and following each formatted value with its source:
//
//	hello {name}bob
//
// The YAML and JSON formats write a record with the text and one entry per
// part.
package encode
