package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <tool> [arg...]",
		Short: "Invoke a tool with positional arguments",
		Long:  "Invoke one registered tool directly. Arguments are positional and follow the tool's declared parameter order.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	r := builtinRegistry()

	def, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("tool not found: %s (try 'toolbelt tools')", args[0])
	}

	result, err := def.Func(cmd.Context(), args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
