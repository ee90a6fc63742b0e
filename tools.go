//go:build tools
// +build tools

package tools

// This file ensures tool dependencies are tracked in go.mod
// Tools are not imported in the actual code but are used during development

import (
	_ "golang.org/x/perf/cmd/benchstat"
)
