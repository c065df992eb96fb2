package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/comigor/mishmish-go/internal/config"
	"github.com/comigor/mishmish-go/internal/logger"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mishmish",
	Short: "Mish Mish, a chat assistant for interior design and fashion styling",
	Long: `mishmish answers styling questions with canned advice and, when given a
shop link and a Firecrawl API key, fetches the catalog page for the session.

Run "mishmish serve" for the HTTP widget backend or "mishmish chat" to talk to
it in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFile(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		logger.SetLevel(cfg.Log.Level)
		logger.SetOutput(os.Stdout, cfg.Log.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or $CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(serveCmd, chatCmd, keyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
