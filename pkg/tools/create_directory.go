package tools

import (
	"context"
	"fmt"

	"github.com/jfeld/toolbelt/pkg/ops"
	"github.com/jfeld/toolbelt/pkg/pathutil"
	"github.com/jfeld/toolbelt/pkg/registry"
)

// CreateDirectory returns the create-directory tool definition. Creation
// fails if the target already exists.
func CreateDirectory(fs ops.FileOps) registry.Definition {
	return registry.Build("create-directory", registry.Spec{
		Description: "Create a new directory. Fails if the directory already exists.",
		Params: []registry.Param{
			{Name: "path", Type: "string", Description: "Path of the directory to create"},
		},
		Category: Category,
		Tags:     []string{"fs", "write"},
		Hints:    registry.Hints{RequiresConfirmation: true},
	}, func(ctx context.Context, args []string) (string, error) {
		path, err := arg(args, 0, "path")
		if err != nil {
			return "", err
		}

		resolved, err := pathutil.Expand(path)
		if err != nil {
			return "", err
		}

		if _, err := fs.Stat(resolved); err == nil {
			return "", fmt.Errorf("directory already exists: %s", path)
		}

		if err := fs.Mkdir(resolved, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
		return fmt.Sprintf("Created directory %s", path), nil
	})
}
