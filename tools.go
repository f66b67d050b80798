//go:build tools
// +build tools

// Package tools tracks the code generators invoked through go generate (mockgen),
// so go.mod and go.sum stay in sync on a fresh checkout.
package audio_lab

import (
	_ "go.uber.org/mock/mockgen"
)
