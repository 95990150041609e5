package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/config"
	"github.com/ironsheep/palette-tools-mcp/internal/logger"
	"github.com/ironsheep/palette-tools-mcp/internal/server"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "palette-mcp",
		Short: "MCP server for generating color palettes",
		Long: `palette-mcp derives five-color palettes (monochromatic, analogous,
triadic, complementary) from a base color.

Without a subcommand it serves the MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newSwatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads configuration and builds the logger it describes.
func loadConfig(flags *rootFlags) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: cfg.HumanLogs})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the MCP protocol over stdin/stdout (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags)
		},
	}
}

func runServe(flags *rootFlags) error {
	cfg, log, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
		"cache":   cfg.Cache.Enabled,
	}).Debug("starting palette MCP server")

	server.Version = Version
	srv := server.New(cfg, log)
	if err := srv.Run(); err != nil {
		log.Error(err, "server error")
		return err
	}
	return nil
}
