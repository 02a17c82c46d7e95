package sentsplit

import (
	"log/slog"

	"github.com/jamesainslie/go-sentsplit/internal/punkt"
	"github.com/jamesainslie/go-sentsplit/model"
)

// RealignPolicy selects which closing quotes and brackets that follow a
// boundary are moved into the sentence they close.
type RealignPolicy = punkt.RealignPolicy

// Realignment policies.
const (
	RealignNone     = punkt.RealignNone
	RealignQuotes   = punkt.RealignQuotes
	RealignBrackets = punkt.RealignBrackets
	RealignAll      = punkt.RealignAll
)

// ParseRealignPolicy parses "none", "quotes", "brackets" or "all".
// The empty string selects RealignAll.
func ParseRealignPolicy(s string) (RealignPolicy, error) {
	return punkt.ParseRealignPolicy(s)
}

// RealignPolicies lists every realignment policy.
func RealignPolicies() []RealignPolicy {
	return punkt.Policies()
}

// Option configures a Resolver.
type Option func(*config)

type config struct {
	root    string
	loader  model.Loader
	model   model.Model
	realign RealignPolicy
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		realign: RealignAll,
		logger:  slog.Default(),
	}
}

// modelLoader returns the configured loader, or a FileLoader over the
// resource root.
func (c *config) modelLoader() model.Loader {
	if c.loader != nil {
		return c.loader
	}
	root := c.root
	if root == "" {
		root = model.DefaultRoot()
	}
	return model.NewFileLoader(root).WithLogger(c.logger)
}

// WithResourceRoot sets the directory holding <language>/<artifact> model
// files (default: model.DefaultRoot()).
func WithResourceRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// WithLoader replaces the file loader. It takes precedence over
// WithResourceRoot.
func WithLoader(l model.Loader) Option {
	return func(c *config) {
		if l != nil {
			c.loader = l
		}
	}
}

// WithModel supplies an already loaded model; no loader is consulted.
func WithModel(m model.Model) Option {
	return func(c *config) {
		if m != nil {
			c.model = m
		}
	}
}

// WithRealign sets the realignment policy (default: RealignAll).
func WithRealign(p RealignPolicy) Option {
	return func(c *config) {
		c.realign = p
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
