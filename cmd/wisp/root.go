package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "wisp",
		Short:         "Wisp is a terminal design system with a toast notification queue",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a wisp.yaml configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newToastCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
