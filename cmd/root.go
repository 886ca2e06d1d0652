package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumefields/internal/config"
	"github.com/muhammadolammi/resumefields/internal/logger"
)

const (
	app = "resumefields"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "resumefields extracts structured fields from résumés",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a .env file to load (default is .env in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// An explicitly named file must exist; the default one is optional.
	if err := config.LoadEnvFile(cfgFile); err != nil {
		log.Fatal(err)
	}
}

// setup resolves the config and builds the logger shared by subcommands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	l, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return nil, nil, err
	}
	return cfg, l, nil
}
