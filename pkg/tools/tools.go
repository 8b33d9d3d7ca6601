// Package tools provides the built-in filesystem tool definitions: reading a
// file, listing a directory, creating a file, and creating a directory. Each
// definition is built declaratively and registers like any other tool; the
// package has no privileged relationship with the registry.
package tools

import (
	"fmt"

	"github.com/jfeld/toolbelt/pkg/ops"
	"github.com/jfeld/toolbelt/pkg/registry"
)

// Category groups all built-in tools.
const Category = "filesystem"

// All returns the built-in tool definitions in a stable order.
func All(fs ops.FileOps) []registry.Definition {
	return []registry.Definition{
		ReadFile(fs),
		ListDirectory(fs),
		CreateFile(fs),
		CreateDirectory(fs),
	}
}

// RegisterAll registers every built-in tool with r.
func RegisterAll(r *registry.Registry, fs ops.FileOps) {
	for _, def := range All(fs) {
		r.Register(def)
	}
}

// arg extracts the positional argument at index i, named for error messages.
func arg(args []string, i int, name string) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%s is required", name)
	}
	if args[i] == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return args[i], nil
}
