package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildVersion is overridden at build time via -ldflags, matching the
// convention most cobra-based CLIs in the retrieval pack use for stamping a
// release version into the binary.
var buildVersion = "dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tslex version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "tslex "+buildVersion)
			return err
		},
	}
}
