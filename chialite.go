// Package chialite is a light-client adapter for a Chia-style wallet
// protocol: it connects to a remote full node over a framed WebSocket
// transport, issues typed wallet requests, receives asynchronous
// subscription pushes, and exposes a uniform query interface through
// Provider.
package chialite

import (
	"os"
	"path"

	"github.com/natefinch/lumberjack"
	"github.com/op/go-logging"

	"github.com/cpacia/chialite/addresscodec"
	"github.com/cpacia/chialite/engine"
	"github.com/cpacia/chialite/provider"
)

const (
	defaultLogFilename = "chialite.log"
	addressHRP         = "xch"
)

var (
	fileLogFormat   = logging.MustStringFormatter(`%{time:2006-01-02 T15:04:05.000} [%{level}] [%{module}] %{message}`)
	stdoutLogFormat = logging.MustStringFormatter(`%{color:reset}%{color}%{time:15:04:05} [%{level}] [%{module}] %{message}`)
)

// Client wires together the engine's Manager and the provider's query
// facade behind the production WebSocket channel.
type Client struct {
	*provider.Provider

	manager *engine.Manager
}

// New builds a Client from the given options. It does not connect; call
// Initialize to open the channel.
func New(opts ...Option) (*Client, error) {
	var cfg Config
	if err := cfg.Apply(append([]Option{Defaults}, opts...)...); err != nil {
		return nil, err
	}

	engineLogger := newModuleLogger("engine", cfg)
	providerLogger := newModuleLogger("provider", cfg)

	channel := engine.NewWSChannel(engine.WSChannelConfig{
		Host:               cfg.Host,
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	})

	manager := engine.NewManager(channel, engineLogger)
	codec := addresscodec.NewBech32mCodec(addressHRP)
	p := provider.New(manager, codec, cfg.NetworkID, cfg.RequestTimeout, providerLogger)

	return &Client{Provider: p, manager: manager}, nil
}

// Metrics returns the underlying Manager's Prometheus collectors, so an
// embedder can register them against its own registerer.
func (c *Client) Metrics() *engine.Metrics {
	return c.manager.Metrics()
}

// Connected reports whether the underlying channel is open.
func (c *Client) Connected() bool {
	return c.manager.Connected()
}

func newModuleLogger(module string, cfg Config) *logging.Logger {
	logger := logging.MustGetLogger(module)

	backendStdout := logging.NewLogBackend(os.Stdout, "", 0)
	backendStdoutFormatter := logging.NewBackendFormatter(backendStdout, stdoutLogFormat)

	if cfg.LogDir != "" {
		rotator := &lumberjack.Logger{
			Filename:   path.Join(cfg.LogDir, defaultLogFilename),
			MaxSize:    10, // Megabytes
			MaxBackups: 3,
			MaxAge:     30, // Days
		}

		backendFile := logging.NewLogBackend(rotator, "", 0)
		backendFileFormatter := logging.NewBackendFormatter(backendFile, fileLogFormat)
		leveledBackend := logging.MultiLogger(backendStdoutFormatter, backendFileFormatter)
		leveledBackend.SetLevel(cfg.LogLevel, "")
		logger.SetBackend(leveledBackend)
	} else {
		leveledBackend := logging.AddModuleLevel(backendStdoutFormatter)
		leveledBackend.SetLevel(cfg.LogLevel, "")
		logger.SetBackend(leveledBackend)
	}

	return logger
}
