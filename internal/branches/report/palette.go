package report

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	colorModeAlwaysConstant              = "always"
	colorModeAutoConstant                = "auto"
	colorModeNeverConstant               = "never"
	unsupportedColorModeTemplateConstant = "unsupported color mode %q (expected always, auto, or never)"
)

// ColorMode controls whether branch text carries terminal color sequences.
type ColorMode string

// Supported color modes.
const (
	ColorModeAlways ColorMode = ColorMode(colorModeAlwaysConstant)
	ColorModeAuto   ColorMode = ColorMode(colorModeAutoConstant)
	ColorModeNever  ColorMode = ColorMode(colorModeNeverConstant)
)

// SupportedColorModes lists the accepted color mode names.
func SupportedColorModes() []string {
	return []string{colorModeAlwaysConstant, colorModeAutoConstant, colorModeNeverConstant}
}

// ParseColorMode normalizes a color mode name. Empty input selects ColorModeAlways.
func ParseColorMode(value string) (ColorMode, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(value)); normalized {
	case "", colorModeAlwaysConstant:
		return ColorModeAlways, nil
	case colorModeAutoConstant:
		return ColorModeAuto, nil
	case colorModeNeverConstant:
		return ColorModeNever, nil
	default:
		return "", fmt.Errorf(unsupportedColorModeTemplateConstant, value)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for configuration decoding.
func (mode *ColorMode) UnmarshalText(text []byte) error {
	parsedMode, parseError := ParseColorMode(string(text))
	if parseError != nil {
		return parseError
	}
	*mode = parsedMode
	return nil
}

// PaletteColor is one of the eight colors branch text can be drawn in.
type PaletteColor struct {
	Name  string
	Color lipgloss.Color
}

var paletteColors = [...]PaletteColor{
	{Name: "red", Color: lipgloss.Color("1")},
	{Name: "green", Color: lipgloss.Color("2")},
	{Name: "yellow", Color: lipgloss.Color("3")},
	{Name: "blue", Color: lipgloss.Color("4")},
	{Name: "magenta", Color: lipgloss.Color("5")},
	{Name: "cyan", Color: lipgloss.Color("6")},
	{Name: "white", Color: lipgloss.Color("7")},
	{Name: "bright_magenta", Color: lipgloss.Color("13")},
}

// PaletteColors returns the palette in index order.
func PaletteColors() []PaletteColor {
	return append([]PaletteColor(nil), paletteColors[:]...)
}

// IndexSource draws integers uniformly from [0, n).
type IndexSource interface {
	IntN(n int) int
}

type globalIndexSource struct{}

func (globalIndexSource) IntN(n int) int {
	return rand.IntN(n)
}

// Palette colors text with an independently chosen palette color on every call.
type Palette struct {
	styles      []lipgloss.Style
	indexSource IndexSource
}

// NewPalette builds a palette whose color profile follows mode. ColorModeAuto
// inspects output to decide whether it is a color-capable terminal. A nil
// indexSource selects the process-wide math/rand/v2 generator.
func NewPalette(output io.Writer, mode ColorMode, indexSource IndexSource) *Palette {
	if output == nil {
		output = io.Discard
	}
	renderer := lipgloss.NewRenderer(output)
	switch mode {
	case ColorModeNever:
		renderer.SetColorProfile(termenv.Ascii)
	case ColorModeAuto:
		// keep the profile lipgloss detected for output
	default:
		renderer.SetColorProfile(termenv.ANSI)
	}

	if indexSource == nil {
		indexSource = globalIndexSource{}
	}

	styles := make([]lipgloss.Style, 0, len(paletteColors))
	for _, paletteColor := range paletteColors {
		styles = append(styles, renderer.NewStyle().Foreground(paletteColor.Color))
	}

	return &Palette{styles: styles, indexSource: indexSource}
}

// Colorize renders text in a randomly chosen palette color.
func (palette *Palette) Colorize(text string) string {
	return palette.Render(palette.pickIndex(), text)
}

// Render renders text in the palette color at index, wrapping out-of-range indexes.
func (palette *Palette) Render(index int, text string) string {
	return palette.styles[wrapIndex(index, len(palette.styles))].Render(text)
}

func (palette *Palette) pickIndex() int {
	return wrapIndex(palette.indexSource.IntN(len(palette.styles)), len(palette.styles))
}

func wrapIndex(index int, size int) int {
	return ((index % size) + size) % size
}
