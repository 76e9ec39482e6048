package parser

import "log/slog"

// Option configures a Scanner or Iterator.
type Option func(*options)

type options struct {
	unknownTags UnknownTagPolicy
	logger      *slog.Logger
	bufferSize  int
	name        string
}

func newOptions(opts []Option) options {
	o := options{
		unknownTags: DropUnknown,
		bufferSize:  defaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithUnknownTags sets the policy for tag lines with unreserved keys.
func WithUnknownTags(p UnknownTagPolicy) Option {
	return func(o *options) {
		o.unknownTags = p
	}
}

// WithLogger sets the logger used for skipped lines and truncated records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBufferSize sets the read buffer size in bytes.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithName sets the input name reported in errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
