// AngelaMos | 2026
// main.go

package main

import (
	"log/slog"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const configFlag = "config"

var configFlags = map[string]cobraflags.Flag{
	configFlag: &cobraflags.StringFlag{
		Name:       configFlag,
		Value:      "",
		Usage:      "Path to a YAML config file (environment variables override it)",
		Persistent: true,
	},
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "socialdash",
		Short: "Social media content scheduling dashboard API",
		Long: `Serve the content scheduling dashboard API.

Available subcommands:
  serve    - Run the HTTP API (default)
  migrate  - Apply the embedded schema to the configured SQL database
  seed     - Load the demo account into the configured SQL database`,
		SilenceUsage: true,
		RunE:         serveCommand,
	}

	cobraflags.RegisterMap(root, configFlags)

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())
	return root
}

func configPath() string {
	return configFlags[configFlag].GetString()
}
