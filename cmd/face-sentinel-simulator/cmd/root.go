package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/face-sentinel/internal/config"
	"github.com/oshokin/face-sentinel/internal/geometry"
	"github.com/oshokin/face-sentinel/internal/service/simulator"
	"github.com/oshokin/face-sentinel/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// framesPath is the JSONL capture file to replay.
	framesPath string
	// fps is the replay rate in frames per second.
	fps int
	// backend names the landmark index scheme of the capture.
	backend string

	// rootCmd represents the base command for replaying recorded frames.
	rootCmd = &cobra.Command{
		Use:   "face-sentinel-simulator [server-address]",
		Short: "Replay a recorded landmark capture against the server.",
		Long: `Replays a JSONL capture of landmark frames over the detection stream.

Each line of the capture file is one frame: face presence, landmark points,
and optional blendshape and emotion scores. Frames are paced at the
requested rate and the events the server emits are logged, which makes
threshold tuning reproducible without a camera.
Server address can be provided as argument or loaded from configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			options := &simulator.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				FramesPath:    framesPath,
				FPS:           fps,
				Backend:       backend,
			}

			return simulator.Run(ctx, options)
		},
	}
)

// Execute runs the face-sentinel-simulator CLI and exits with non-zero status on error.
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
	rootCmd.Flags().StringVarP(&framesPath, "frames", "f", "", "path to the JSONL capture file (required)")
	rootCmd.Flags().IntVar(&fps, "fps", simulator.DefaultFPS, "replay rate in frames per second")
	rootCmd.Flags().StringVarP(&backend, "backend", "b", geometry.BackendDlib68, "landmark index scheme of the capture")

	if err := rootCmd.MarkFlagRequired("frames"); err != nil {
		panic(err)
	}
}
