package logger

import "go.uber.org/zap"

// options holds the optional settings applied when building a logger.
type options struct {
	// file is the optional rotating file destination.
	file *FileOutput
	// zapOptions are passed through to zap.New.
	zapOptions []zap.Option
}

// Option configures the logger created by New.
type Option func(*options)

// WithFileOutput duplicates log entries to a rotating file.
func WithFileOutput(file FileOutput) Option {
	return func(o *options) {
		o.file = &file
	}
}

// WithZapOptions forwards raw zap options to the underlying logger.
func WithZapOptions(opts ...zap.Option) Option {
	return func(o *options) {
		o.zapOptions = append(o.zapOptions, opts...)
	}
}

// applyOptions folds the provided options into a settings struct.
func applyOptions(opts []Option) *options {
	settings := &options{}
	for _, opt := range opts {
		opt(settings)
	}

	return settings
}
