// Package pathexpr checks user-supplied element paths before resolution.
//
// The resolver accepts any string; command-line input is usually typed by a
// person, so the CLI's strict mode first requires that the input compile as
// a FHIRPath expression and that it be a flat dotted path, without function
// calls, operators or indexers other than the choice marker "[x]".
package pathexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofhir/fhirpath"

	"github.com/gofhir/metadata/pkg/cache"
)

// Errors returned by Checker.Validate.
var (
	ErrEmpty   = errors.New("empty path")
	ErrSyntax  = errors.New("invalid FHIRPath syntax")
	ErrNotFlat = errors.New("not a flat element path")
)

// Checker validates paths and keeps the most recently compiled
// expressions in a bounded cache. It is safe for concurrent use.
type Checker struct {
	cache *cache.LRU[string, *fhirpath.Expression]
}

// CheckerOption configures a Checker.
type CheckerOption func(*checkerOptions)

type checkerOptions struct {
	cacheSize int
}

// WithCacheSize sets how many compiled expressions are kept.
func WithCacheSize(n int) CheckerOption {
	return func(o *checkerOptions) {
		o.cacheSize = n
	}
}

// NewChecker creates a Checker with an empty cache.
func NewChecker(opts ...CheckerOption) *Checker {
	o := checkerOptions{cacheSize: cache.DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return &Checker{cache: cache.New[string, *fhirpath.Expression](o.cacheSize)}
}

// Validate reports whether path is a syntactically valid, flat FHIRPath
// element path.
func (c *Checker) Validate(path string) error {
	if path == "" {
		return ErrEmpty
	}
	if _, err := c.compile(path); err != nil {
		return fmt.Errorf("%w %q: %w", ErrSyntax, path, err)
	}
	if seg, ok := firstNonFlat(path); !ok {
		return fmt.Errorf("%w: segment %q in %q", ErrNotFlat, seg, path)
	}
	return nil
}

// Compile returns the compiled FHIRPath expression for path.
func (c *Checker) Compile(path string) (*fhirpath.Expression, error) {
	return c.compile(path)
}

// CacheSize returns the number of cached expressions.
func (c *Checker) CacheSize() int {
	return c.cache.Len()
}

// CacheStats returns the hit and eviction counters of the expression cache.
func (c *Checker) CacheStats() cache.Stats {
	return c.cache.Stats()
}

// Failed compiles are not cached.
func (c *Checker) compile(expr string) (*fhirpath.Expression, error) {
	if compiled, ok := c.cache.Get(expr); ok {
		return compiled, nil
	}

	compiled, err := fhirpath.Compile(expr)
	if err != nil {
		return nil, err
	}
	c.cache.Add(expr, compiled)
	return compiled, nil
}

// IsFlat reports whether path consists of dot-separated identifiers, each
// optionally ending in "[x]".
func IsFlat(path string) bool {
	_, ok := firstNonFlat(path)
	return ok
}

func firstNonFlat(path string) (string, bool) {
	for _, seg := range strings.Split(path, ".") {
		if !isSegment(seg) {
			return seg, false
		}
	}
	return "", true
}

func isSegment(s string) bool {
	s = strings.TrimSuffix(s, "[x]")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
