package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/jfeld/toolbelt/pkg/ops"
	"github.com/jfeld/toolbelt/pkg/pathutil"
	"github.com/jfeld/toolbelt/pkg/registry"
)

// ListDirectory returns the list-directory tool definition. It lists entry
// names one per line, in directory order.
func ListDirectory(fs ops.FileOps) registry.Definition {
	return registry.Build("list-directory", registry.Spec{
		Description: "List the entries of a directory, one name per line.",
		Params: []registry.Param{
			{Name: "path", Type: "string", Description: "Path to the directory to list"},
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
			return "", fmt.Errorf("cannot access %s: %w", path, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("not a directory: %s", path)
		}

		entries, err := fs.ReadDir(resolved)
		if err != nil {
			return "", fmt.Errorf("cannot read directory: %w", err)
		}

		if len(entries) == 0 {
			return "(empty directory)", nil
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		return strings.Join(names, "\n"), nil
	})
}
