package site

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrAlreadyInitialized is returned by Init once a configuration has been published.
	ErrAlreadyInitialized = errors.New("site config already initialized")
	// ErrNotInitialized is returned by Current before Init succeeds.
	ErrNotInitialized = errors.New("site config not initialized")
)

// Holder publishes a configuration once and hands out copies of it. The zero
// value is ready to use. Readers never block.
type Holder struct {
	mu      sync.Mutex
	current atomic.Pointer[SiteConfig]
}

// Init validates cfg and publishes it. It succeeds at most once; an invalid
// configuration is never published.
func (h *Holder) Init(cfg SiteConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current.Load() != nil {
		return ErrAlreadyInitialized
	}
	c := cfg.Clone()
	h.current.Store(&c)
	return nil
}

// Current returns a copy of the published configuration.
func (h *Holder) Current() (SiteConfig, error) {
	p := h.current.Load()
	if p == nil {
		return SiteConfig{}, ErrNotInitialized
	}
	return p.Clone(), nil
}

// Initialized reports whether Init has succeeded.
func (h *Holder) Initialized() bool {
	return h.current.Load() != nil
}

var global Holder

// Global returns the process-wide holder used by Init and Current.
func Global() *Holder {
	return &global
}

// Init publishes cfg as the process-wide configuration.
func Init(cfg SiteConfig) error {
	return global.Init(cfg)
}

// Current returns a copy of the process-wide configuration.
func Current() (SiteConfig, error) {
	return global.Current()
}

// Initialized reports whether the process-wide configuration is set.
func Initialized() bool {
	return global.Initialized()
}
