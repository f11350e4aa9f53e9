package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, DefaultTheme)

	p.Info("No Docker Compose file selected.")
	p.Success("done")
	p.Warning("careful")
	p.Error("failed")

	assert.Equal(t, "ℹ No Docker Compose file selected.\n✓ done\n! careful\n✗ failed\n", buf.String())
}

func TestPrinterHeader(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, DefaultTheme).Header("project")
	assert.Equal(t, "\nproject\n───────\n", buf.String())
}

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"default", "gruvbox", "tokyo-night"}, GetThemeNames())

	theme, ok := LookupTheme("gruvbox")
	assert.True(t, ok)
	assert.Equal(t, GruvboxTheme, theme)

	_, ok = LookupTheme("nope")
	assert.False(t, ok)
}
