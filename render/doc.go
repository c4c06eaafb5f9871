// Package render formats a truncated, human-readable preview of a
// sequence's head. It is a consumer of the core's Preview operation,
// not part of the algebra: it implements no sequence logic of its own.
//
// The preview length is an explicit per-call option resolved at the
// call site (DefaultPreviewLength when unset), never shared mutable
// process state.
package render
