package tools

import (
	"context"
	"fmt"

	"github.com/jfeld/toolbelt/pkg/ops"
	"github.com/jfeld/toolbelt/pkg/pathutil"
	"github.com/jfeld/toolbelt/pkg/registry"
)

// CreateFile returns the create-file tool definition. It refuses to overwrite:
// creation fails if the target already exists.
func CreateFile(fs ops.FileOps) registry.Definition {
	return registry.Build("create-file", registry.Spec{
		Description: "Create a new file with the given content. Fails if the file already exists.",
		Params: []registry.Param{
			{Name: "path", Type: "string", Description: "Path of the file to create"},
			{Name: "content", Type: "string", Description: "Content to write into the new file"},
		},
		Category: Category,
		Tags:     []string{"fs", "write"},
		Hints:    registry.Hints{RequiresConfirmation: true},
	}, func(ctx context.Context, args []string) (string, error) {
		path, err := arg(args, 0, "path")
		if err != nil {
			return "", err
		}
		var content string
		if len(args) > 1 {
			content = args[1]
		}

		resolved, err := pathutil.Expand(path)
		if err != nil {
			return "", err
		}

		if _, err := fs.Stat(resolved); err == nil {
			return "", fmt.Errorf("file already exists: %s", path)
		}

		if err := fs.WriteFile(resolved, []byte(content), 0644); err != nil {
			return "", fmt.Errorf("failed to create file: %w", err)
		}
		return fmt.Sprintf("Created file %s (%d bytes)", path, len(content)), nil
	})
}
