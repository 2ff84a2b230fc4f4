package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/relpub/relpub/internal/app/config"
	infraConfig "github.com/relpub/relpub/internal/infra/config"
)

// globalConfig holds the loaded configuration for all commands
var globalConfig config.Config

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "relpub",
		Short:        "Release publishing helper",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration before any command runs
			// Priority: setting.json > defaults
			baseDir := ".relpub"
			if home := os.Getenv("RELPUB_HOME"); home != "" {
				baseDir = home
			}

			cfg, err := infraConfig.LoadSettings(baseDir)
			if err != nil {
				return err
			}
			globalConfig = cfg
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newPublishCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
