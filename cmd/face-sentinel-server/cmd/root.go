package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/face-sentinel/internal/config"
	"github.com/oshokin/face-sentinel/internal/service/server"
	"github.com/oshokin/face-sentinel/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// statsFile path where session statistics are persisted.
	statsFile string
	// httpAddress for the websocket event feed.
	httpAddress string
	// pipePath of the named pipe the event tokens are written to.
	pipePath string

	// rootCmd represents the base command for running the detection server.
	rootCmd = &cobra.Command{
		Use:   "face-sentinel-server [grpc-address]",
		Short: "Run the detection gRPC server and fan out drowsiness events.",
		Long: `Starts the gRPC detection server that evaluates landmark frames and emits events.

Capture clients open sessions, stream facial landmark frames, and receive
DROWSY and YAWN events back on the same stream. Events also fan out to the
status pipe, the websocket feed, the structured log, and an MQTT broker
when one is configured.
The gRPC listen address can be provided as argument to override config
(e.g., 127.0.0.1:50051). Session statistics are persisted to JSON so they
survive restarts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use gRPC address argument if provided, otherwise rely on config.
			var grpcAddress string
			if len(args) > 0 {
				grpcAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:  configPath,
				GRPCAddress: grpcAddress,
				HTTPAddress: httpAddress,
				StatsFile:   statsFile,
				PipePath:    pipePath,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the face-sentinel-server CLI and exits with non-zero status on error.
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
	rootCmd.Flags().
		StringVarP(&statsFile, "stats-file", "s", "", "path to persist session statistics (defaults to config)")
	rootCmd.Flags().StringVar(&httpAddress, "http-address", "", "websocket feed listen address (defaults to config)")
	rootCmd.Flags().StringVar(&pipePath, "pipe", "", "status pipe path (defaults to config)")
}
