package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/axelarnetwork/polls/app"
	"github.com/axelarnetwork/polls/config"
	"github.com/axelarnetwork/polls/x/poll/client"
	"github.com/axelarnetwork/polls/x/poll/client/cli"
)

// flags bound to configuration keys
const (
	flagHome            = "home"
	flagBech32Prefix    = "bech32-prefix"
	flagDBBackend       = "db-backend"
	flagDBDir           = "db-dir"
	flagPruning         = "pruning"
	flagListenAddr      = "listen-addr"
	flagShutdownTimeout = "shutdown-timeout"
	flagTelemetry       = "telemetry"
)

var _ client.Runtime = (*app.App)(nil)

var setSDKConfig sync.Once

// DefaultNodeHome is the default home directory of polld
var DefaultNodeHome = func() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "." + app.Name
	}

	return filepath.Join(userHome, "."+app.Name)
}()

// serverContext carries the configuration resolved by the root command to its subcommands
type serverContext struct {
	viper  *viper.Viper
	home   string
	config app.Config
	logger log.Logger
}

// NewRootCmd creates a new root command for polld. It is called once in the main function.
func NewRootCmd() *cobra.Command {
	srvCtx := &serverContext{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:          app.Name + "d",
		Short:        "Polls App",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return srvCtx.load(cmd)
		},
	}

	setPersistentFlags(rootCmd, srvCtx.viper)

	newRuntime := srvCtx.openRuntime
	rootCmd.AddCommand(
		cli.GetTxCmd(newRuntime),
		cli.GetQueryCmd(newRuntime),
		NewGenesisCmd(srvCtx),
		NewServeCmd(srvCtx),
	)

	return rootCmd
}

func setPersistentFlags(rootCmd *cobra.Command, v *viper.Viper) {
	defaults := app.DefaultConfig()
	pf := rootCmd.PersistentFlags()

	pf.String(flagHome, DefaultNodeHome, "directory for config and data")
	pf.String(flags.FlagChainID, defaults.ChainID, "chain id reported to every transition")
	pf.String(flagBech32Prefix, defaults.Bech32Prefix, "bech32 prefix of account addresses")
	pf.String(flagDBBackend, defaults.DBBackend, "database backend (goleveldb|memdb)")
	pf.String(flagDBDir, defaults.DBDir, "database directory relative to home")
	pf.String(flagPruning, defaults.Pruning, "pruning strategy (default|nothing|everything)")
	pf.String(flags.FlagLogLevel, defaults.LogLevel, "log level (trace|debug|info|warn|error|fatal|panic)")
	pf.String(flags.FlagLogFormat, defaults.LogFormat, "log format (plain|json)")
	pf.String(flagListenAddr, defaults.ListenAddr, "address the REST server listens on")
	pf.Duration(flagShutdownTimeout, defaults.ShutdownTimeout, "time to wait for open requests on shutdown")
	pf.Bool(flagTelemetry, defaults.Telemetry, "expose prometheus metrics at /metrics")

	pf.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			panic(err)
		}
	})
}

func (s *serverContext) load(cmd *cobra.Command) error {
	s.home = s.viper.GetString(flagHome)
	s.viper.AddConfigPath(filepath.Join(s.home, "config"))

	conf, err := config.ReadConfig(s.viper)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), conf)
	if err != nil {
		return err
	}

	setSDKConfig.Do(func() { app.SetConfig(conf.Bech32Prefix) })

	s.config = conf
	s.logger = logger

	return nil
}

func (s *serverContext) openApp() (*app.App, error) {
	db, err := app.OpenDB(s.home, s.config)
	if err != nil {
		return nil, err
	}

	a, err := app.NewApp(db, s.logger, s.config)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return a, nil
}

func (s *serverContext) openRuntime(*cobra.Command) (client.Runtime, error) {
	return s.openApp()
}

func newLogger(out io.Writer, conf app.Config) (log.Logger, error) {
	var logWriter io.Writer
	if strings.ToLower(conf.LogFormat) == "plain" {
		logWriter = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	} else {
		logWriter = out
	}

	logLvl, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", conf.LogLevel, err)
	}

	return server.ZeroLogWrapper{Logger: zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger()}, nil
}
