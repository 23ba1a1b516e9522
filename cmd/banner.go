package main

import (
	"io"

	"github.com/fatih/color"
)

const bannerArt = `
 ___ _   _ __________   ____      ___   _ __________   __
| __| | | |_  /_  /\ \ / /\ \    / / | | |_  /_  /\ \ / /
| _|| |_| |/ / / /  \ V /  \ \/\/ /| |_| |/ / / /  \ V /
|_|  \___//___/___|  |_|    \_/\_/  \___//___/___|  |_|
`

func printBanner(w io.Writer) {
	color.New(color.FgHiMagenta, color.Bold).Fprint(w, bannerArt)
	color.New(color.Faint).Fprintln(w, "  a simple HTTP POST body fuzzer")
}
