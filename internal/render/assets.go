// Package render projects an InvoiceRecord into the two offered output
// formats. Both renderers read only the record; neither computes money.
package render

import (
	"os"
	"path/filepath"
)

// Assets points at the optional visual resources. Either may be absent:
// a missing logo degrades to a text placeholder, missing fonts fall back
// to the built-in default family.
type Assets struct {
	LogoPath string
	FontDir  string
}

// HasLogo reports whether the logo image is usable.
func (a Assets) HasLogo() bool {
	if a.LogoPath == "" {
		return false
	}
	info, err := os.Stat(a.LogoPath)
	return err == nil && !info.IsDir()
}

// serifFonts returns the DejaVu Serif regular/bold/italic files present
// under FontDir. Missing bold or italic fall back to the regular file;
// a missing regular disables the custom family entirely.
func (a Assets) serifFonts() (regular, bold, italic string, ok bool) {
	if a.FontDir == "" {
		return "", "", "", false
	}

	regular = filepath.Join(a.FontDir, "DejaVuSerif.ttf")
	if _, err := os.Stat(regular); err != nil {
		return "", "", "", false
	}

	bold = filepath.Join(a.FontDir, "DejaVuSerif-Bold.ttf")
	if _, err := os.Stat(bold); err != nil {
		bold = regular
	}

	italic = filepath.Join(a.FontDir, "DejaVuSerif-Italic.ttf")
	if _, err := os.Stat(italic); err != nil {
		italic = regular
	}

	return regular, bold, italic, true
}
