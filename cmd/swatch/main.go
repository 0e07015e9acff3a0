// Swatch - a banded colour palette generator
//
// Swatch generates small palettes stepping from dark to light, warms them
// toward their dominant channel and prints CSS-ready colour pairs.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	cli.Execute()
}
