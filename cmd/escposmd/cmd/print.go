// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	escpos "github.com/kofi-q/escpos-md"
	"github.com/kofi-q/escpos-md/mdevents"
	"github.com/kofi-q/escpos-md/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var printCmd = &cobra.Command{
	Use:   "print [file.md]",
	Short: "Render a Markdown document and ship it to the configured sink",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}
		return printJob(source)
	},
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func printJob(source []byte) error {
	events, err := mdevents.Parse(source)
	if err != nil {
		return fmt.Errorf("escposmd: parse markdown: %w", err)
	}

	cfg, err := printerConfig()
	if err != nil {
		return err
	}
	sheet, err := loadSheet()
	if err != nil {
		return err
	}
	loader, err := newImageLoader()
	if err != nil {
		return err
	}
	sink, err := openSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	printer := escpos.NewPrinter(cfg, sink.Sink)
	if err := printer.Reset(); err != nil {
		return fmt.Errorf("escposmd: reset printer: %w", err)
	}

	r := render.New(printer, sheet, loader)
	if err := r.Walk(events); err != nil {
		return fmt.Errorf("escposmd: render: %w", err)
	}

	if err := printer.FeedLines(3); err != nil {
		return fmt.Errorf("escposmd: feed: %w", err)
	}
	if err := printer.Command(escpos.CmdCutCommand()); err != nil {
		return fmt.Errorf("escposmd: cut: %w", err)
	}

	if logger != nil {
		logger.Info("print job complete", zap.Int("bytes", len(source)))
	}
	return nil
}
