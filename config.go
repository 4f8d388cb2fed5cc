package jsxlate

import (
	"strings"

	"github.com/zbyte64/jsxlate/internal/jsparse"
)

// Config carries every tunable the pipeline consults: the reserved marker
// names and the per-component attribute allow-list. A Config is threaded
// explicitly into each component; there is no package-level mutable state.
type Config struct {
	// FunctionMarker is the call-style marker identifier wrapping a single
	// string literal.
	FunctionMarker string

	// ElementMarker is the element-style marker tag wrapping markup.
	ElementMarker string

	// DesignationAttribute names an element's designation when namespace
	// syntax (name:designation) is unavailable.
	DesignationAttribute string

	// AllowedAttributes maps a component name to the attributes a
	// translator is allowed to see and edit. Any other attribute is elided
	// during sanitizing and restored during reconstitution.
	AllowedAttributes map[string][]string
}

// Option configures the pipeline.
type Option func(*Config)

// WithFunctionMarker overrides the call-style marker identifier.
func WithFunctionMarker(name string) Option {
	return func(c *Config) { c.FunctionMarker = name }
}

// WithElementMarker overrides the element-style marker tag.
func WithElementMarker(name string) Option {
	return func(c *Config) { c.ElementMarker = name }
}

// WithDesignationAttribute overrides the reserved designation attribute.
func WithDesignationAttribute(name string) Option {
	return func(c *Config) { c.DesignationAttribute = name }
}

// WithAllowedAttributes replaces the attribute allow-list.
func WithAllowedAttributes(allowed map[string][]string) Option {
	return func(c *Config) { c.AllowedAttributes = allowed }
}

func newConfig(opts ...Option) *Config {
	c := &Config{
		FunctionMarker:       "i18n",
		ElementMarker:        "I18N",
		DesignationAttribute: "i18n-designation",
		AllowedAttributes: map[string][]string{
			"a":   {"href"},
			"img": {"src", "alt"},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Config) markers() jsparse.Markers {
	return jsparse.Markers{Function: c.FunctionMarker, Element: c.ElementMarker}
}

// attributeAllowed reports whether attr is on the allow-list for the given
// component name.
func (c *Config) attributeAllowed(component, attr string) bool {
	for _, a := range c.AllowedAttributes[component] {
		if a == attr {
			return true
		}
	}
	return false
}

// splitName splits an element name into its component name and namespace-form
// designation. "a:my-link" yields ("a", "my-link"); an unnamespaced name has
// an empty designation.
func splitName(name string) (base, designation string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}
