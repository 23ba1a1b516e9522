package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var out bytes.Buffer
	printBanner(&out)

	assert.Equal(t, bannerArt+"  a simple HTTP POST body fuzzer\n", out.String())
	assert.NotContains(t, out.String(), "\n\n  a simple", "no blank line between the art and the tagline")
	assert.True(t, strings.HasSuffix(bannerArt, "\n"))
}
