// Package config loads and validates the run configuration document.
//
// The configuration is a small YAML mapping with three required keys:
//
//	seed: 42        # integer, seeds the processor's PRNG state
//	window: 3       # positive integer, rolling window width
//	version: "v1"   # string, echoed into the run record
//
// Load reads the document from disk and fails with a NotFound error when the
// path does not exist. Parse is the reader-level core so validation behavior
// can be tested without touching the filesystem. A document missing any of
// the three keys, or carrying a non-positive window, fails validation.
package config
