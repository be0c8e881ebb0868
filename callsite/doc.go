// Package callsite maps a running invocation back to the Go syntax of the
// call that made it.
//
// The SourceResolver reads and parses the caller's source file, found
// through runtime.Callers, and finds the call expression on the reported
// line. Parsed files and resolved sites are cached, so repeated calls from
// one location parse the file once. Go line tables carry no columns: two
// candidate calls on one line are reported as ErrAmbiguous.
//
// Binaries run without their sources, and calls made through function
// values or reflection, resolve to ErrNoSource.
package callsite
