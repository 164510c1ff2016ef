package cmd

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

var (
	cfgFile   string
	logLevel  string
	boolStyle string

	// Settings and Logger are populated by RootCmd.PersistentPreRunE.
	Settings *AppSettings
	Logger   = zap.NewNop()
)

var RootCmd = &cobra.Command{
	Use:   "gql2csv",
	Short: "Flatten a GraphQL schema into a field mapping spreadsheet",
	Long: `
GQL2CSV 🧾 - GraphQL Schema Field Mapper

Flattens every object and input field of a GraphQL schema into one CSV row,
ready for manual "field -> destination" mapping.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := LoadSettings()
		if err != nil {
			return err
		}

		logger, err := newLogger(settings.Log.Level)
		if err != nil {
			return err
		}

		Settings = settings
		Logger = logger
		if used := viper.ConfigFileUsed(); used != "" {
			Logger.Debug("Using config file", zap.String("path", used))
		}
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	_ = Logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gql2csv.yaml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVar(&boolStyle, "bool-style", "", "boolean spelling in the CSV: go (true/false) or title (True/False)")

	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("csv.bool_style", RootCmd.PersistentFlags().Lookup("bool-style"))

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("csv.bool_style", "go")
	viper.SetDefault("batch.jobs", 1)
	viper.SetDefault("batch.out_dir", "mapping")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("gql2csv")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("GQL2CSV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "Warning: failed to read config file:", err)
		}
	}
}
