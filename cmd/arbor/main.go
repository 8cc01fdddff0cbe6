package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/arbor/internal/config"
	"github.com/vango-dev/arbor/internal/errors"
	"github.com/vango-dev/arbor/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

// globals are the flags shared by every command.
type globals struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "Render and preview declarative trees",
		Long: `Arbor materializes declarative trees into live documents.

Trees are described in YAML manifests with named stores. The CLI can
render a manifest to static HTML, publish it to a file or S3, and serve
a live preview that updates when stores change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.configFile, "config", "", "Config file (default ./"+config.ConfigFileName+")")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(g),
		serveCmd(g),
		versionCmd(),
	)
	return rootCmd
}

// load reads the configuration for cmd and builds the logger. Logs go to
// the command's error stream.
func (g *globals) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(g.configFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	if path := cfg.Path(); path != "" {
		logger.Debug("config loaded", "file", path)
	}
	return cfg, logger, nil
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
