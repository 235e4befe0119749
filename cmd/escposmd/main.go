// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command escposmd renders Markdown to an ESC/POS thermal-printer byte
// stream and ships it to a file, serial device or network printer.
package main

import (
	"fmt"
	"os"

	"github.com/kofi-q/escpos-md/cmd/escposmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
