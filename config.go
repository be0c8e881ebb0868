package fvalues

import (
	"sync"

	"github.com/signadot/fvalues/callsite"
	"github.com/signadot/fvalues/debug"
)

var cfg = &config{
	resolver: callsite.Default(),
	warn:     defaultWarn,
}

type config struct {
	mu       sync.RWMutex
	resolver callsite.Resolver
	warn     func(error)
}

func defaultWarn(w error) {
	debug.Warnf("%v\n", w)
}

// SetResolver replaces the call site resolver used by F and Concat and
// returns a function restoring the previous one.
func SetResolver(r callsite.Resolver) (restore func()) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	prev := cfg.resolver
	cfg.resolver = r
	return func() { SetResolver(prev) }
}

// SetWarningHandler replaces the function warnings are passed to and
// returns a function restoring the previous one. The default handler
// prints them on stderr.
func SetWarningHandler(h func(error)) (restore func()) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()
	prev := cfg.warn
	cfg.warn = h
	return func() { SetWarningHandler(prev) }
}

func resolver() callsite.Resolver {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()
	return cfg.resolver
}

func warn(w error) {
	cfg.mu.RLock()
	h := cfg.warn
	cfg.mu.RUnlock()
	h(w)
}
