package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/face-sentinel/internal/config"
	"github.com/oshokin/face-sentinel/internal/service/listener"
	"github.com/oshokin/face-sentinel/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// pipePath of the named pipe to read event tokens from.
	pipePath string
	// drowsyCommand runs on every DROWSY token.
	drowsyCommand string
	// yawnCommand runs on every YAWN token.
	yawnCommand string

	// rootCmd represents the base command for consuming the status pipe.
	rootCmd = &cobra.Command{
		Use:   "face-sentinel-listener",
		Short: "React to detection events from the status pipe.",
		Long: `Background service that reads DROWSY and YAWN tokens from the status pipe.

The pipe is created if it does not exist yet, so the listener may start
before the server. Each recognized token is logged and may trigger a shell
command (e.g., play a sound or flash a light). Unknown tokens are ignored.
Pipe path is taken from the flag or from the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &listener.Options{
				ConfigPath:    configPath,
				PipePath:      pipePath,
				DrowsyCommand: drowsyCommand,
				YawnCommand:   yawnCommand,
			}

			return listener.Run(ctx, options)
		},
	}
)

// Execute runs the face-sentinel-listener CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&pipePath, "pipe", "p", "", "status pipe path (defaults to config)")
	rootCmd.Flags().StringVar(&drowsyCommand, "drowsy-command", "", "shell command to run on a DROWSY event")
	rootCmd.Flags().StringVar(&yawnCommand, "yawn-command", "", "shell command to run on a YAWN event")
}
