package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorEnabledExplicitModes(t *testing.T) {
	assert.True(t, ColorEnabled("always"))
	assert.False(t, ColorEnabled("never"))
}

func TestColorEnabledAutoUnderTests(t *testing.T) {
	// Under 'go test' stdout is not a terminal, so auto resolves to false.
	assert.False(t, ColorEnabled("auto"))
	assert.False(t, ColorEnabled(""))
}

func TestConfigureColorAppliesMode(t *testing.T) {
	defer lipgloss.SetColorProfile(termenv.Ascii)

	ConfigureColor("always")
	styled := lipgloss.NewStyle().Foreground(ColorError).Render("cpu")
	assert.Contains(t, styled, "\x1b[", "always should force ANSI sequences")

	ConfigureColor("never")
	plain := lipgloss.NewStyle().Foreground(ColorError).Render("cpu")
	assert.Equal(t, "cpu", plain, "never should strip all styling")
}

func TestConfigureColorAutoWithoutTerminal(t *testing.T) {
	defer lipgloss.SetColorProfile(termenv.Ascii)

	// Stdout is a pipe under 'go test', so auto degrades to plain text.
	ConfigureColor("auto")
	plain := lipgloss.NewStyle().Foreground(ColorWarning).Render("mem")
	assert.Equal(t, "mem", plain)
}
