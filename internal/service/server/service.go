package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"

	api "github.com/oshokin/face-sentinel/internal/api/grpc/detection"
	"github.com/oshokin/face-sentinel/internal/api/ws"
	"github.com/oshokin/face-sentinel/internal/config"
	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	"github.com/oshokin/face-sentinel/internal/emitter"
	"github.com/oshokin/face-sentinel/internal/logger"
	pb "github.com/oshokin/face-sentinel/internal/pb/v1"
	repository "github.com/oshokin/face-sentinel/internal/repository/stats"
	"github.com/oshokin/face-sentinel/internal/service/common"
	"github.com/oshokin/face-sentinel/internal/service/session"
	"github.com/oshokin/face-sentinel/internal/version"
)

// Options controls the face-sentinel-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// GRPCAddress provides an optional listen address override for the gRPC server.
	GRPCAddress string
	// HTTPAddress provides an optional listen address override for the websocket feed.
	HTTPAddress string
	// StatsFile specifies the path to persist session statistics JSON.
	StatsFile string
	// PipePath specifies the named pipe the event line protocol is written to.
	PipePath string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// readHeaderTimeout bounds header parsing on the websocket feed listener.
const readHeaderTimeout = 5 * time.Second

// Run starts the detection server and blocks until the context is
// canceled or a listener fails. Configuration is loaded first; command
// line options override individual settings.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "face-sentinel-server")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	setupLogger(&settings.Logging)

	// A second server would interleave writes on the status FIFO.
	if err = common.EnsureSingleInstance(); err != nil {
		return err
	}

	statsFile := settings.StatsFile
	if opts.StatsFile != "" {
		statsFile = opts.StatsFile
	}

	pipePath := settings.PipePath
	if opts.PipePath != "" {
		pipePath = opts.PipePath
	}

	grpcAddress, err := resolveListenAddress(settings.GRPCAddress, opts.GRPCAddress)
	if err != nil {
		return fmt.Errorf("resolve gRPC listen address: %w", err)
	}

	httpAddress, err := resolveListenAddress(settings.HTTPAddress, opts.HTTPAddress)
	if err != nil {
		return fmt.Errorf("resolve websocket listen address: %w", err)
	}

	hub := ws.NewHub()
	go hub.Run(ctx)

	events, err := buildEmitter(ctx, settings, pipePath, hub)
	if err != nil {
		return err
	}
	defer events.Close()

	manager := session.NewManager(
		ctx,
		detectionDefaults(&settings.Detection),
		repository.NewFileRepository(statsFile),
		events,
	)

	// Setup TCP listener for the gRPC server.
	lc := net.ListenConfig{}

	grpcListener, err := lc.Listen(ctx, "tcp", grpcAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", grpcAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterDetectionServiceServer(grpcServer, api.NewServer(manager))

	mux := http.NewServeMux()
	mux.Handle("/ws/events", hub)

	httpServer := &http.Server{
		Addr:              httpAddress,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.ErrorKV(ctx, "websocket feed listener failed", "error", serveErr)
		}
	}()

	logger.InfoKV(ctx, "Detection server listening",
		"version", version.Short(),
		"grpc_address", grpcAddress,
		"http_address", httpAddress,
		"stats_file", statsFile,
		"pipe_path", pipePath)

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Timeout)
		defer cancel()

		_ = httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		close(done)
	}()

	if err = grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done

	// Stop the remaining sessions so their stats reach the repository.
	manager.Close(context.Background())

	logger.Info(ctx, "Detection server stopped")

	return nil
}

// setupLogger applies the configured level and optional rotating file.
func setupLogger(cfg *config.Logging) {
	level := logger.Level()
	if parsed, ok := logger.ParseLogLevel(cfg.Level); ok {
		level = parsed
	}

	var options []logger.Option
	if cfg.FilePath != "" {
		options = append(options, logger.WithFileOutput(logger.FileOutput{
			Path:      cfg.FilePath,
			MaxSizeMB: cfg.FileMaxSizeMB,
		}))
	}

	logger.SetLevel(level)
	logger.SetLogger(logger.New(nil, options...))
}

// buildEmitter assembles the event sinks: structured log, status FIFO,
// websocket hub, and the MQTT broker when one is configured.
func buildEmitter(ctx context.Context, settings *config.Config, pipePath string, hub *ws.Hub) (*emitter.Emitter, error) {
	sinks := []emitter.Sink{
		emitter.NewLogSink(ctx),
		emitter.NewHubSink(hub),
	}

	pipeSink, err := emitter.NewPipeSink(pipePath)
	if err != nil {
		return nil, fmt.Errorf("create status pipe: %w", err)
	}

	sinks = append(sinks, pipeSink)

	if settings.MQTT.BrokerURL != "" {
		mqttSink, mqttErr := emitter.NewMQTTSink(&settings.MQTT, settings.Timeout)
		if mqttErr != nil {
			// The broker is a best-effort consumer; detection must not
			// depend on its availability.
			logger.WarnKV(ctx, "MQTT sink disabled", "error", mqttErr)
		} else {
			sinks = append(sinks, mqttSink)
		}
	}

	return emitter.New(ctx, sinks...), nil
}

// detectionDefaults converts configured detection values into the
// domain settings new sessions start from.
func detectionDefaults(cfg *config.Detection) domain.Settings {
	return domain.Settings{
		EARThreshold:  cfg.EARThreshold,
		MARThreshold:  cfg.MARThreshold,
		DrowsyTime:    cfg.DrowsyTime,
		YawnTime:      cfg.YawnTime,
		AlertCooldown: cfg.AlertCooldown,
	}
}

// resolveListenAddress determines a listen address. If override is
// provided, it is used directly. Otherwise the configured address is
// validated and used as-is: frames are sensitive, so the server binds
// exactly what the configuration names (loopback by default) instead of
// widening to all interfaces.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	host, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return net.JoinHostPort(host, port), nil
}
