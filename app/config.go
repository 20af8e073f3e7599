package app

import (
	"fmt"
	"strings"
	"time"

	dbm "github.com/cometbft/cometbft-db"
	pruningtypes "github.com/cosmos/cosmos-sdk/store/pruning/types"
)

// Config contains all necessary runtime configurations
type Config struct {
	ChainID      string `mapstructure:"chain_id"`
	Bech32Prefix string `mapstructure:"bech32_prefix"`

	DBBackend string `mapstructure:"db_backend"`
	DBDir     string `mapstructure:"db_dir"`
	Pruning   string `mapstructure:"pruning"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	ListenAddr      string        `mapstructure:"listen_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Telemetry       bool          `mapstructure:"telemetry"`
}

// DefaultConfig returns a configuration populated with default values
func DefaultConfig() Config {
	return Config{
		ChainID:         "polls-1",
		Bech32Prefix:    AccountAddressPrefix,
		DBBackend:       string(dbm.GoLevelDBBackend),
		DBDir:           "data",
		Pruning:         pruningtypes.PruningOptionDefault,
		LogLevel:        "info",
		LogFormat:       "plain",
		ListenAddr:      "127.0.0.1:1317",
		ShutdownTimeout: 10 * time.Second,
		Telemetry:       false,
	}
}

// Validate returns an error if the configuration cannot be used to start the runtime
func (c Config) Validate() error {
	if strings.TrimSpace(c.ChainID) == "" {
		return fmt.Errorf("chain_id must not be empty")
	}

	if strings.TrimSpace(c.Bech32Prefix) == "" {
		return fmt.Errorf("bech32_prefix must not be empty")
	}

	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db_backend %s", c.DBBackend)
	}

	switch c.Pruning {
	case pruningtypes.PruningOptionDefault, pruningtypes.PruningOptionNothing, pruningtypes.PruningOptionEverything:
	default:
		return fmt.Errorf("unsupported pruning strategy %s", c.Pruning)
	}

	switch c.LogFormat {
	case "plain", "json":
	default:
		return fmt.Errorf("unsupported log_format %s", c.LogFormat)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}

	return nil
}
