package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	verbose    bool
	configFile string
	v          *viper.Viper
	logger     *zap.Logger
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{v: viper.New(), logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "fuzzytree",
		Short: "fuzzytree is a tool to grow fuzzy decision trees",
		Long: `A tool to grow fuzzy decision trees from your data, test them, and use them
to classify observations`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			config.close()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log what is being done onto STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "config file (default: ./fuzzytree.yaml or ~/.config/fuzzytree/fuzzytree.yaml)")
	rootCmd.PersistentFlags().String("redis-prefix", "fuzzytree:trees", "prefix of the keys of trees kept on redis")
	if err := config.v.BindPFlag("redis-prefix", rootCmd.PersistentFlags().Lookup("redis-prefix")); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		treeCmd(config),
		testCmd(config),
		classifyCmd(config),
		predictCmd(config),
		setCmd(config),
	)
	return rootCmd
}

func (rcc *rootCmdConfig) init() error {
	if rcc.configFile != "" {
		rcc.v.SetConfigFile(rcc.configFile)
	} else {
		rcc.v.SetConfigName("fuzzytree")
		rcc.v.SetConfigType("yaml")
		rcc.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			rcc.v.AddConfigPath(filepath.Join(home, ".config", "fuzzytree"))
		}
	}
	rcc.v.SetEnvPrefix("FUZZYTREE")
	rcc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rcc.v.AutomaticEnv()
	err := rcc.v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || rcc.configFile != "" {
			return fmt.Errorf("reading config: %v", err)
		}
	}

	rcc.logger, err = newLogger(rcc.verbose || rcc.v.GetBool("verbose"))
	if err != nil {
		return err
	}
	if used := rcc.v.ConfigFileUsed(); used != "" {
		rcc.logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}

func (rcc *rootCmdConfig) close() {
	if rcc.cancelFunc != nil {
		rcc.cancelFunc()
	}
	_ = rcc.logger.Sync()
}

// Context returns a context cancelled on interrupt signals.
func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = signal.NotifyContext(context.Background(), os.Interrupt)
	}
	return rcc.ctx
}

// bindFlags binds the named flags of the command being run to their
// viper keys, so flags set take precedence over the environment and the
// config file. Flags are bound when their command runs because several
// commands share keys.
func bindFlags(v *viper.Viper, cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
