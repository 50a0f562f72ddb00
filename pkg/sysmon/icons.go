package sysmon

// Glyph labels used when Config.UseIcons is set. These are Nerd Font
// codepoints; hosts that enable icons are expected to render with a patched
// font (the usual case for status bars).
const (
	IconCPU         = "" // microchip
	IconMemory      = "" // memory module
	IconTemperature = "" // thermometer, half
)
