// SPDX-License-Identifier: MIT

package render

import "strings"

// Option customizes rendering by mutating a config before output begins.
// Option constructors validate and panic on meaningless input; rendering
// itself reports errors.
type Option func(*config)

// config aggregates rendering knobs. Later options override earlier ones.
type config struct {
	filled    rune
	blank     rune
	delimiter string
}

const (
	defaultFilled    = '#'
	defaultBlank     = ' '
	defaultDelimLen  = 30
	defaultDelimRune = "-"
)

func newConfig(opts []Option) config {
	c := config{
		filled:    defaultFilled,
		blank:     defaultBlank,
		delimiter: strings.Repeat(defaultDelimRune, defaultDelimLen),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithFilled sets the marker for occupied cells. Panics on 0 or a line break.
func WithFilled(r rune) Option {
	mustMarker("WithFilled", r)
	return func(c *config) {
		c.filled = r
	}
}

// WithBlank sets the marker for empty cells. Panics on 0 or a line break.
func WithBlank(r rune) Option {
	mustMarker("WithBlank", r)
	return func(c *config) {
		c.blank = r
	}
}

// WithDelimiter sets the line written after each piece in a report.
// Panics if s is empty or contains a line break.
func WithDelimiter(s string) Option {
	if s == "" || strings.ContainsAny(s, "\r\n") {
		panic("render: WithDelimiter(" + `"` + s + `"` + ")")
	}
	return func(c *config) {
		c.delimiter = s
	}
}

func mustMarker(name string, r rune) {
	if r == 0 || r == '\n' || r == '\r' {
		panic("render: " + name + "(invalid marker)")
	}
}
