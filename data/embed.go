// Package data carries content embedded into the server binary.
package data

import (
	_ "embed"
)

// DefaultContent is the fallback dataset seeded into empty tables so the
// public pages are never fully empty on a fresh install.
//
//go:embed defaults.json
var DefaultContent []byte
