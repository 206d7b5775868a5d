package server

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Defaults applied by New when no option overrides them. The read and write
// timeouts are short because every endpoint here is a small JSON exchange or
// a static file; long-poll or streaming endpoints would need larger values.
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20
)

// Config holds server configuration with environment variable support.
type Config struct {
	// Bind address parts
	BindIP   string `env:"WEB_BIND_IP" envDefault:"127.0.0.1"`
	BindPort int    `env:"WEB_BIND_PORT" envDefault:"8080"`

	// Timeouts
	ReadTimeout     time.Duration `env:"WEB_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WEB_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"WEB_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"WEB_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Header limits
	MaxHeaderBytes int `env:"WEB_MAX_HEADER_BYTES" envDefault:"1048576"` // 1MB
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BindIP:          "127.0.0.1",
		BindPort:        8080,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxHeaderBytes:  DefaultMaxHeaderBytes,
	}
}

// Addr joins the configured IP and port into a listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.BindIP, strconv.Itoa(c.BindPort))
}

// NewFromConfig validates the config, binds the listener, and returns the
// server. Additional options can override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.BindIP == "" {
		return nil, ErrMissingAddress
	}
	if net.ParseIP(cfg.BindIP) == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBindIP, cfg.BindIP)
	}
	// Port 0 is allowed so tests can bind an ephemeral port.
	if cfg.BindPort < 0 || cfg.BindPort > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBindPort, cfg.BindPort)
	}

	configOpts := make([]Option, 0, len(opts)+5)

	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	if cfg.MaxHeaderBytes > 0 {
		configOpts = append(configOpts, WithMaxHeaderBytes(cfg.MaxHeaderBytes))
	}

	// User-provided options override config values
	configOpts = append(configOpts, opts...)

	return New(cfg.Addr(), configOpts...)
}
