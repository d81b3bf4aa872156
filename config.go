package chialite

import (
	"time"

	"github.com/op/go-logging"
)

// Option is a chialite option type.
type Option func(*Config) error

// Config holds everything needed to construct a Client, per spec section 6
// ("recognized options") plus the ambient logging/timeout knobs section 2's
// AMBIENT STACK calls for.
type Config struct {
	Host      string
	Port      uint16
	APIKey    string
	NetworkID string

	InsecureSkipVerify bool

	LogDir   string
	LogLevel logging.Level

	RequestTimeout time.Duration
}

// Defaults are the default options. This option is automatically prepended
// to any options passed to New.
var Defaults = func(cfg *Config) error {
	cfg.Port = 18444
	cfg.NetworkID = "mainnet"
	cfg.LogLevel = logging.INFO
	cfg.RequestTimeout = 15 * time.Second
	return nil
}

// Apply applies the given options to this Config.
func (cfg *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return err
		}
	}
	return nil
}

// Host sets the full node hostname or IP. Required.
func Host(host string) Option {
	return func(cfg *Config) error {
		cfg.Host = host
		return nil
	}
}

// Port sets the full node port.
//
// Defaults to 18444.
func Port(port uint16) Option {
	return func(cfg *Config) error {
		cfg.Port = port
		return nil
	}
}

// APIKey sets the API key sent as the X-Api-Key header at dial time.
// Required.
func APIKey(key string) Option {
	return func(cfg *Config) error {
		cfg.APIKey = key
		return nil
	}
}

// NetworkID sets the network id returned by Provider.GetNetworkID
// ("mainnet", "testnet*").
//
// Defaults to "mainnet".
func NetworkID(id string) Option {
	return func(cfg *Config) error {
		cfg.NetworkID = id
		return nil
	}
}

// InsecureSkipVerify disables TLS certificate verification on the
// websocket dial. Intended for connecting to a local full node during
// development; never enable this against a remote host.
func InsecureSkipVerify(skip bool) Option {
	return func(cfg *Config) error {
		cfg.InsecureSkipVerify = skip
		return nil
	}
}

// LogDir configures a directory to additionally log to, rotated via
// lumberjack. When unset only a stdout backend is used.
func LogDir(dir string) Option {
	return func(cfg *Config) error {
		cfg.LogDir = dir
		return nil
	}
}

// LogLevel sets the log level.
//
// Defaults to INFO.
func LogLevel(level logging.Level) Option {
	return func(cfg *Config) error {
		cfg.LogLevel = level
		return nil
	}
}

// RequestTimeout overrides the default per-request filter timeout.
//
// Defaults to 15s.
func RequestTimeout(d time.Duration) Option {
	return func(cfg *Config) error {
		cfg.RequestTimeout = d
		return nil
	}
}
