package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jfeld/toolbelt/pkg/ops"
	"github.com/jfeld/toolbelt/pkg/registry"
	"github.com/jfeld/toolbelt/pkg/tools"
)

// builtinRegistry returns a registry populated with the built-in tools.
func builtinRegistry() *registry.Registry {
	r := registry.New()
	tools.RegisterAll(r, &ops.RealFileOps{})
	return r
}

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List registered tool definitions",
		RunE:  runTools,
	}
	cmd.Flags().String("category", "", "Only show tools in this category")
	return cmd
}

func runTools(cmd *cobra.Command, args []string) error {
	r := builtinRegistry()

	category, _ := cmd.Flags().GetString("category")
	defs := r.All()
	if category != "" {
		defs = r.ByCategory(category)
	}

	if len(defs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tools registered.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tPARAMS\tDESCRIPTION")
	for _, def := range defs {
		params := make([]string, 0, len(def.Params))
		for _, p := range def.Params {
			params = append(params, p.Name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", def.Name, def.Category, strings.Join(params, ","), def.Description)
	}
	return w.Flush()
}
