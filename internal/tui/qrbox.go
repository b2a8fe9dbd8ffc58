package tui

import (
	"foldergram/internal/render/qr"
	"foldergram/internal/tui/theme"
)

type qrBox struct {
	url   string
	lines []string
	err   error
}

// newQRBox renders the code once at open; a light palette flips the
// modules so the code stays scannable on a light background.
func newQRBox(url string, width int, onLight bool) *qrBox {
	lines, err := qr.LinesWithOptions(url, width, qr.Options{OnLightBackground: onLight})
	return &qrBox{url: url, lines: lines, err: err}
}

func (b *qrBox) viewLines(th theme.Theme, width int) []string {
	if b.err != nil {
		return []string{"Could not render the code.", th.StateWarn.Render(b.err.Error())}
	}
	out := append([]string(nil), b.lines...)
	out = append(out, "", th.LinkURL.Render(b.url))
	return out
}
