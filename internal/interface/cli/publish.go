package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/relpub/relpub/internal/infra/journal"
	"github.com/relpub/relpub/internal/infra/repository"
	"github.com/relpub/relpub/internal/interface/external/gitcli"
	"github.com/relpub/relpub/internal/usecase/publish"
)

// newPublishCmd creates the publish command group
func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish commands",
		RunE:  func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newPublishReleaseCmd())
	return cmd
}

// newPublishReleaseCmd creates the publish release command
func newPublishReleaseCmd() *cobra.Command {
	var (
		version         string
		metaPath        string
		sonarPath       string
		branch          string
		tagPrefix       string
		dryRun          bool
		allowEqualFinal bool
		logLevel        string
	)

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Validate a version, update release metadata, then commit, push and tag",
		Long: `Validate the given version against the recorded release history, update the
release metadata document and the properties mirrors, then commit, push and
tag the release. With --dry-run every check still runs but each mutating step
only prints the command it would execute.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// setting.json supplies defaults for flags the user did not set
			mirrors := propertiesPaths(sonarPath)
			if cfg := globalConfig; cfg != nil {
				if !cmd.Flags().Changed("meta-path") {
					metaPath = cfg.MetaPath()
				}
				if !cmd.Flags().Changed("sonar-path") {
					mirrors = cfg.PropertiesPaths()
				}
				if !cmd.Flags().Changed("branch") {
					branch = cfg.Branch()
				}
				if !cmd.Flags().Changed("tag-prefix") {
					tagPrefix = cfg.TagPrefix()
				}
				if !cmd.Flags().Changed("allow-equal-final") {
					allowEqualFinal = cfg.AllowEqualFinal()
				}
				if !cmd.Flags().Changed("log-level") {
					logLevel = cfg.StderrLevel()
				}
			}

			logger := NewLogger(ParseLogLevel(logLevel), os.Stderr)
			fsys := afero.NewOsFs()
			store := repository.NewMetadataStore(fsys)

			// Entry precondition: grammar plus is-newer policy against the
			// recorded current version. Failures here never start the
			// publish sequence.
			current, _ := store.CurrentVersion(metaPath)
			if err := publish.ValidateCandidate(version, current, allowEqualFinal); err != nil {
				return err
			}

			git := gitcli.New()
			home := ".relpub"
			if cfg := globalConfig; cfg != nil {
				git.Bin = cfg.GitBin()
				git.Timeout = cfg.Timeout()
				home = cfg.Home()
			}

			orch := publish.NewOrchestrator(git, fsys, store)
			orch.Journal = journal.NewWriter(fsys, filepath.Join(home, "journal.ndjson"))
			orch.Log = func(format string, a ...interface{}) { logger.Info(format, a...) }

			req := publish.Request{
				Version:         version,
				Branch:          branch,
				TagPrefix:       tagPrefix,
				MetaPath:        metaPath,
				PropertiesPaths: mirrors,
				DryRun:          dryRun,
			}
			_, err := orch.Run(cmd.Context(), req)
			return err
		},
	}

	cmd.Flags().StringVarP(&version, "version", "v", "", "Version to publish (required)")
	cmd.Flags().StringVar(&metaPath, "meta-path", "package.toml", "Path to the release metadata document")
	cmd.Flags().StringVar(&sonarPath, "sonar-path", ".sonarcloud.properties", "Path to the primary sonar properties file")
	cmd.Flags().StringVar(&branch, "branch", "main", "Branch to publish from")
	cmd.Flags().StringVar(&tagPrefix, "tag-prefix", "v", "Prefix for the created tag")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run all checks but print mutating commands instead of executing them")
	cmd.Flags().BoolVar(&allowEqualFinal, "allow-equal-final", true, "Treat X.Y.Z (final) as newer than X.Y.Z-<pre> with equal numerics")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Minimum stderr log level (debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

// propertiesPaths returns the mirrors to update: the configured sonar path
// plus the conventional sonar-project.properties, deduplicated.
func propertiesPaths(sonarPath string) []string {
	paths := []string{sonarPath}
	if sonarPath != "sonar-project.properties" {
		paths = append(paths, "sonar-project.properties")
	}
	return paths
}
