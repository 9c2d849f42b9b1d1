// Package core is the library entry point: it loads a site configuration into
// the process-wide holder and answers path and CEL queries against it.
package core

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/samdoesblogs/sitecfg/internal/cel"
	"github.com/samdoesblogs/sitecfg/internal/formatter"
	"github.com/samdoesblogs/sitecfg/internal/navigator"
	"github.com/samdoesblogs/sitecfg/pkg/loader"
	"github.com/samdoesblogs/sitecfg/pkg/site"
)

// Evaluator evaluates expressions against a root node.
type Evaluator interface {
	Evaluate(expr string, root any) (any, error)
}

// Navigator resolves a path or expression against a root node.
type Navigator interface {
	NodeAtPath(root any, path string) (any, error)
}

// Engine loads, queries and renders site configurations.
type Engine struct {
	Evaluator Evaluator
	Navigator Navigator
	Loader    *loader.Loader
	// Holder receives the loaded configuration; defaults to site.Global().
	Holder *site.Holder
	log    logr.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithEvaluator sets a custom evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(c *Engine) {
		c.Evaluator = e
	}
}

// WithNavigator sets a custom navigator.
func WithNavigator(n Navigator) Option {
	return func(c *Engine) {
		c.Navigator = n
	}
}

// WithLoader sets the loader used by Load and Check.
func WithLoader(l *loader.Loader) Option {
	return func(c *Engine) {
		c.Loader = l
	}
}

// WithHolder publishes loaded configurations to h instead of the
// process-wide holder.
func WithHolder(h *site.Holder) Option {
	return func(c *Engine) {
		c.Holder = h
	}
}

// WithLogger sets the logger handed to the default loader and navigator.
func WithLogger(lgr logr.Logger) Option {
	return func(c *Engine) {
		c.log = lgr
	}
}

// New creates an Engine with defaults.
func New(opts ...Option) (*Engine, error) {
	engine := &Engine{log: logr.Discard()}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.Evaluator == nil {
		eval, err := cel.NewEvaluator()
		if err != nil {
			return nil, err
		}
		engine.Evaluator = eval
	}
	if engine.Navigator == nil {
		engine.Navigator = navigator.New(engine.Evaluator.Evaluate, navigator.WithLogger(engine.log))
	}
	if engine.Loader == nil {
		engine.Loader = loader.New(loader.WithLogger(engine.log))
	}
	if engine.Holder == nil {
		engine.Holder = site.Global()
	}
	return engine, nil
}

// Check loads and validates the file at path without publishing it.
func (e *Engine) Check(path string) (site.SiteConfig, error) {
	return e.Loader.Load(path)
}

// Load loads the file at path and publishes it to the Engine's holder. It
// fails with site.ErrAlreadyInitialized on a second call.
func (e *Engine) Load(path string) (site.SiteConfig, error) {
	cfg, err := e.Loader.Load(path)
	if err != nil {
		return site.SiteConfig{}, err
	}
	if err := e.Holder.Init(cfg); err != nil {
		return site.SiteConfig{}, err
	}
	e.log.V(1).Info("site config initialized", "path", path)
	return cfg, nil
}

// Current returns the published configuration.
func (e *Engine) Current() (site.SiteConfig, error) {
	return e.Holder.Current()
}

// Query resolves a path or CEL expression against the published
// configuration.
func (e *Engine) Query(expr string) (any, error) {
	cfg, err := e.Holder.Current()
	if err != nil {
		return nil, err
	}
	return e.QueryConfig(cfg, expr)
}

// QueryConfig resolves a path or CEL expression against cfg.
func (e *Engine) QueryConfig(cfg site.SiteConfig, expr string) (any, error) {
	if e.Navigator == nil {
		return nil, errors.New("navigator is not configured")
	}
	node, err := e.Navigator.NodeAtPath(cfg.ToMap(), expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	return node, nil
}

// RenderOptions control Render.
type RenderOptions struct {
	NoColor bool
	// Width caps table width; 0 means size to content.
	Width int
}

// Render formats a node produced by SiteConfig.ToMap or Query. Keys follow
// the schema declaration order.
func (e *Engine) Render(node any, out formatter.Output, opts RenderOptions) (string, error) {
	if out == formatter.OutputTable {
		rows := navigator.Flatten(node, site.KeyOrder())
		return formatter.RenderRows(rows, formatter.TableOptions{NoColor: opts.NoColor, MaxWidth: opts.Width}), nil
	}
	return formatter.Render(node, out, formatter.Options{KeyOrder: site.KeyOrder(), NoColor: opts.NoColor})
}

// RenderMenu prints the menu as a LABEL/PATH table in display order.
func (e *Engine) RenderMenu(cfg site.SiteConfig, opts RenderOptions) string {
	rows := make([][]string, 0, len(cfg.Menu))
	for _, item := range cfg.Menu {
		rows = append(rows, []string{item.Label, item.Path})
	}
	return formatter.RenderRows(rows, formatter.TableOptions{
		Headers:  [2]string{"LABEL", "PATH"},
		NoColor:  opts.NoColor,
		MaxWidth: opts.Width,
	})
}
