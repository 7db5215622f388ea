// Command parabox plays a parabox level in a window or a terminal.
//
// Usage:
//
//	parabox play [--level level.yaml] [--scale 3] [--fps]
//	parabox term [--level level.yaml]
//	parabox check level.yaml
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "parabox",
		Short:         "Nested boxes and the actor who walks them",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&flags.level, "level", "", "Level YAML file (built-in level when empty)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Log per-frame timing to stderr")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.AddCommand(playCmd())
	root.AddCommand(termCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(versionCmd())
	return root
}
