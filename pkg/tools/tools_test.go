package tools

import (
	"testing"

	"github.com/jfeld/toolbelt/pkg/ops"
	"github.com/jfeld/toolbelt/pkg/registry"
)

func newTestRegistry(t *testing.T, fs ops.FileOps) *registry.Registry {
	t.Helper()
	r := registry.New()
	RegisterAll(r, fs)
	return r
}
