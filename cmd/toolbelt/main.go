package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:          "toolbelt",
	Short:        "Filesystem tools for LLM function-calling",
	Long:         "toolbelt - a registry of filesystem tools exposed to LLM clients for function-calling.",
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("toolbelt version %s\n", Version))

	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newChatCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
