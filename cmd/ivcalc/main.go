// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ivcalc evaluates decorated interval arithmetic operations.
package main

import (
	"fmt"
	"os"

	"github.com/db47h/interval/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ivcalc:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
