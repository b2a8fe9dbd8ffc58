package qr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	qrcode "github.com/skip2/go-qrcode"
)

// Options control how the code is drawn for the surrounding terminal.
type Options struct {
	// OnLightBackground flips module colors so dark modules print as blocks.
	OnLightBackground bool
}

var DefaultOptions = Options{OnLightBackground: false}

// 2,953 is the level-L byte capacity; medium correction holds less, and
// invite URLs never come close. Reject early so qrcode.New cannot be fed
// garbage from a corrupt cache row.
const maxContentLen = 2048

// Lines renders url as a scannable code, one string per terminal row,
// centered within width. Each row packs two module rows into half blocks.
func Lines(url string, width int) ([]string, error) {
	return LinesWithOptions(url, width, DefaultOptions)
}

func LinesWithOptions(url string, width int, opts Options) ([]string, error) {
	if url == "" {
		return nil, fmt.Errorf("encode qr code: empty url")
	}
	if len(url) > maxContentLen {
		return nil, fmt.Errorf("encode qr code: url longer than %d bytes", maxContentLen)
	}
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	block := strings.TrimRight(code.ToSmallString(opts.OnLightBackground), "\n")
	lines := strings.Split(block, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, centerLine(line, width))
	}
	return out, nil
}

func centerLine(line string, width int) string {
	pad := (width - utf8.RuneCountInString(line)) / 2
	if pad <= 0 {
		return line
	}
	return strings.Repeat(" ", pad) + line
}
