// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cmd implements the escposmd command tree: a one-shot "print"
// command and a long-running "serve" mode, both sharing the printer/
// stylesheet/transport configuration wired up here.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "escposmd",
	Short: "Render Markdown to an ESC/POS thermal-printer byte stream",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the command tree; it's the sole entry point main calls.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./escposmd.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentFlags().String("printer", "generic", "printer preset: generic, tmt20ii-80mm, tmt20ii-58mm")
	rootCmd.PersistentFlags().Int("width", 0, "override the preset's paper width, in dots (0: use the preset default)")
	rootCmd.PersistentFlags().String("stylesheet", "", "path to a YAML stylesheet (default: built-in stylesheet)")
	rootCmd.PersistentFlags().String("images-dir", ".", "base directory Markdown image links are resolved against")
	rootCmd.PersistentFlags().String("dither", "floyd-steinberg", "image binarization: floyd-steinberg or threshold")
	rootCmd.PersistentFlags().Uint8("threshold", 128, "gray-level cutoff used when --dither=threshold")

	rootCmd.PersistentFlags().String("out-file", "", "write ESC/POS bytes to this file or character device")
	rootCmd.PersistentFlags().String("out-tcp", "", "dial this host[:port] (default port 9100) and stream bytes to it")

	for _, name := range []string{
		"printer", "width", "stylesheet", "images-dir", "dither", "threshold", "out-file", "out-tcp",
	} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("escposmd: bind flag %s: %v", name, err))
		}
	}

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() error {
	viper.SetEnvPrefix("ESCPOSMD")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("escposmd")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("escposmd: reading config: %w", err)
		}
	}

	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	built, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("escposmd: building logger: %w", err)
	}
	logger = built
	return nil
}
