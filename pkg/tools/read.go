package tools

import (
	"context"
	"fmt"

	"github.com/jfeld/toolbelt/pkg/ops"
	"github.com/jfeld/toolbelt/pkg/pathutil"
	"github.com/jfeld/toolbelt/pkg/registry"
)

// ReadFile returns the read-file tool definition. It resolves ~ and relative
// paths and returns the file's exact contents.
func ReadFile(fs ops.FileOps) registry.Definition {
	return registry.Build("read-file", registry.Spec{
		Description: "Read the contents of a file and return them unchanged. Supports ~ and relative paths.",
		Params: []registry.Param{
			{Name: "path", Type: "string", Description: "Path to the file to read"},
		},
		Category: Category,
		Tags:     []string{"fs", "read"},
		Hints:    registry.Hints{IncludeByDefault: true},
	}, func(ctx context.Context, args []string) (string, error) {
		path, err := arg(args, 0, "path")
		if err != nil {
			return "", err
		}

		resolved, err := pathutil.Expand(path)
		if err != nil {
			return "", err
		}

		info, err := fs.Stat(resolved)
		if err != nil {
			return "", fmt.Errorf("cannot read %s: %w", path, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("not a file: %s is a directory", path)
		}

		content, err := fs.ReadFile(resolved)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(content), nil
	})
}
