package atomdoc

import (
	"fmt"

	"github.com/archimedix/biblioteca.archimedica.eu/internal/version"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/config"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globals holds the values of the persistent flags.
type globals struct {
	verbosity  int
	configFile string
}

// loadConfig layers overrides on top of the configured sources.
func (g *globals) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	cfg, err := config.Load(config.Options{File: g.configFile, Overrides: overrides})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "atomdoc",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newRenderCmd(g))
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTimestampCmd(g))
	rootCmd.AddCommand(newIDCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionLine, version.Version)
			fmt.Fprintf(out, MsgCommitLine, version.Commit)
			fmt.Fprintf(out, MsgBuiltLine, version.Date)
		},
	}
}
