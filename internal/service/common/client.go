//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/face-sentinel/internal/config"
	pb "github.com/oshokin/face-sentinel/internal/pb/v1"
	"github.com/oshokin/face-sentinel/internal/version"
)

// Client wraps the gRPC DetectionService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the detection server.
	conn *grpc.ClientConn
	// api is the generated DetectionService client interface.
	api pb.DetectionServiceClient

	// callTimeout is the default timeout for individual unary RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for unary service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errSessionIDRequired is returned when an operation misses the session handle.
	errSessionIDRequired = errors.New("session ID must be provided")
)

// Dial establishes a gRPC connection to the detection server.
// Note: this uses insecure transport credentials; the server binds to
// loopback by default, so frames never leave the machine.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent()))
	if err != nil {
		return nil, fmt.Errorf("dial detection server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewDetectionServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// StartSession creates a detection session on the server.
func (c *Client) StartSession(
	ctx context.Context,
	actor *pb.SystemActor,
	settings *pb.DetectionSettings,
	backend string,
) (*pb.StartSessionResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.StartSession(callCtx, &pb.StartSessionRequest{
		Actor:    actor,
		Settings: settings,
		Backend:  backend,
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	return response, nil
}

// StopSession halts a session and returns its final statistics.
func (c *Client) StopSession(ctx context.Context, sessionID string) (*pb.StopSessionResponse, error) {
	if sessionID == "" {
		return nil, errSessionIDRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.StopSession(callCtx, &pb.StopSessionRequest{SessionId: sessionID})
	if err != nil {
		return nil, fmt.Errorf("stop session: %w", err)
	}

	return response, nil
}

// UpdateSettings merges a settings patch into a running session.
func (c *Client) UpdateSettings(
	ctx context.Context,
	sessionID string,
	patch *pb.DetectionSettings,
) (*pb.UpdateSettingsResponse, error) {
	if sessionID == "" {
		return nil, errSessionIDRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.UpdateSettings(callCtx, &pb.UpdateSettingsRequest{
		SessionId: sessionID,
		Patch:     patch,
	})
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	return response, nil
}

// GetSessionStats retrieves the statistics of a running or finished session.
func (c *Client) GetSessionStats(ctx context.Context, sessionID string) (*pb.GetSessionStatsResponse, error) {
	if sessionID == "" {
		return nil, errSessionIDRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetSessionStats(callCtx, &pb.GetSessionStatsRequest{SessionId: sessionID})
	if err != nil {
		return nil, fmt.Errorf("get session stats: %w", err)
	}

	return response, nil
}

// StreamFrames opens the bidirectional frame stream. The stream lives
// until the caller closes it or the context ends; the call timeout does
// not apply.
func (c *Client) StreamFrames(ctx context.Context) (pb.DetectionService_StreamFramesClient, error) {
	stream, err := c.api.StreamFrames(ctx)
	if err != nil {
		return nil, fmt.Errorf("open frame stream: %w", err)
	}

	return stream, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
