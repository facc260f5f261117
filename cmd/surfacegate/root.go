package main

import (
	"fmt"
	"os"

	"github.com/workroomhq/surfacegate/internal/config"
	"github.com/workroomhq/surfacegate/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "surfacegate",
	Short: "Surfacegate assistant-surface inspector",
	Long:  `Surfacegate validates raw assistant surface messages into typed, render-safe descriptors.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.Log.Level, cfg.Log.Color)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.surfacegate/config.yaml)")
	rootCmd.PersistentFlags().String("log.level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log.color", true, "colorize log output")
	rootCmd.PersistentFlags().Int("cache.capacity", config.DefaultCacheCapacity, "surface cache capacity")
}
