// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve <jobs-dir>",
	Short: "Watch a directory for .md files and print each as it appears",
	Long: "serve watches jobs-dir for new .md files and prints each one in turn, " +
		"hot-reloading the --stylesheet file between jobs if it changes.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(args[0])
	},
}

func serve(jobsDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("escposmd: fsnotify: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(jobsDir); err != nil {
		return fmt.Errorf("escposmd: watch %s: %w", jobsDir, err)
	}

	if path := viper.GetString("stylesheet"); path != "" {
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("escposmd: watch stylesheet dir: %w", err)
		}
	}

	if logger != nil {
		logger.Info("serve: watching for jobs", zap.String("dir", jobsDir))
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if err := handleEvent(ev); err != nil && logger != nil {
				logger.Error("serve: job failed", zap.String("path", ev.Name), zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if logger != nil {
				logger.Error("serve: watcher error", zap.Error(err))
			}
		}
	}
}

func handleEvent(ev fsnotify.Event) error {
	if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) {
		return nil
	}

	stylesheet := viper.GetString("stylesheet")
	if stylesheet != "" && ev.Name == stylesheet {
		if logger != nil {
			logger.Info("serve: stylesheet changed, will reload on next job")
		}
		return nil
	}

	if !strings.EqualFold(filepath.Ext(ev.Name), ".md") {
		return nil
	}

	source, err := os.ReadFile(ev.Name)
	if err != nil {
		return fmt.Errorf("read %s: %w", ev.Name, err)
	}
	return printJob(source)
}
