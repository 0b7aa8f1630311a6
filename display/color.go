package display

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/teranos/fakegen/config"
)

// ColorEnabled resolves a color mode for a writer: auto colors only terminals
// and honors NO_COLOR
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfigureColor switches pterm styling on or off globally
func ConfigureColor(enabled bool) {
	if enabled {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

// Label styles an output label such as "original -> "
func Label(text string) string {
	return pterm.Bold.Sprint(pterm.LightCyan(text))
}

// Success styles a confirmation line
func Success(text string) string {
	return pterm.LightGreen("✓ ") + text
}

// Warning styles a warning line
func Warning(text string) string {
	return pterm.Yellow("! ") + text
}

// Muted styles secondary information
func Muted(text string) string {
	return pterm.Gray(text)
}
