// Package format names the output formats a String can be encoded in.
//
//	f, err := format.ParseFormat("yaml")
//	err = encode.Encode(s, os.Stdout, encode.EncodeFormat(f))
package format
