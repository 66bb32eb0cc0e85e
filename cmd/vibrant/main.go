// Vibrant - prominent colour extraction for images
//
// Vibrant reduces an image to a handful of representative colours and picks
// vibrant and muted theme swatches from them.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/vibrant/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
