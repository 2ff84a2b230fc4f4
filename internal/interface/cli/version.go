package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relpub/relpub/internal/buildinfo"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the relpub version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.GetVersion())
			return nil
		},
	}
}
