// SPDX-License-Identifier: MIT

// Package render: functional configuration for preview formatting.

package render

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPreviewLength is how many leading values Format shows
	// when WithPreviewLength is not supplied.
	DefaultPreviewLength = 6

	// DefaultSeparator joins adjacent preview values.
	DefaultSeparator = " "

	// DefaultEllipsis marks the truncation point after the preview.
	DefaultEllipsis = "..."
)

// Internal panic messages (no magic strings).
const (
	panicPreviewLength = "render: WithPreviewLength: n must be positive"
)

// Option mutates formatting options. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*Options)

// Options stores the effective formatting configuration.
type Options struct {
	previewLength int
	separator     string
	ellipsis      string
}

// WithPreviewLength sets how many leading values Format renders.
//
// Panics with a stable message when n < 1 (programmer error).
func WithPreviewLength(n int) Option {
	if n < 1 {
		panic(panicPreviewLength)
	}

	return func(o *Options) { o.previewLength = n }
}

// WithSeparator sets the string joining adjacent values.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// WithEllipsis sets the truncation marker appended after the preview.
func WithEllipsis(e string) Option {
	return func(o *Options) { o.ellipsis = e }
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		previewLength: DefaultPreviewLength,
		separator:     DefaultSeparator,
		ellipsis:      DefaultEllipsis,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
