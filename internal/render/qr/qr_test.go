package qr

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLinesProduceUniformBlock(t *testing.T) {
	lines, err := Lines("https://t.me/+AbCdEfGh", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if got := utf8.RuneCountInString(line); got != width {
			t.Fatalf("line %d width %d, expected %d", i, got, width)
		}
	}
	if !strings.Contains(strings.Join(lines, "\n"), "█") {
		t.Fatal("expected block characters in output")
	}
}

func TestLinesAreDeterministic(t *testing.T) {
	first, err := Lines("https://t.me/+AbCdEfGh", 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Lines("https://t.me/+AbCdEfGh", 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical input")
	}
}

func TestLinesCenterWithinWidth(t *testing.T) {
	narrow, err := Lines("https://t.me/+AbCdEfGh", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	block := utf8.RuneCountInString(narrow[0])
	wide, err := Lines("https://t.me/+AbCdEfGh", block+20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(wide[0], strings.Repeat(" ", 10)) {
		t.Fatalf("expected 10 columns of left padding, got %q", wide[0])
	}
	if got := utf8.RuneCountInString(wide[0]); got != block+10 {
		t.Fatalf("expected padded width %d, got %d", block+10, got)
	}
}

func TestLinesWithOptionsFlipsModules(t *testing.T) {
	normal, err := LinesWithOptions("https://t.me/+AbCdEfGh", 0, Options{OnLightBackground: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flipped, err := LinesWithOptions("https://t.me/+AbCdEfGh", 0, Options{OnLightBackground: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reflect.DeepEqual(normal, flipped) {
		t.Fatal("expected flipped render to differ")
	}
}

func TestLinesRejectBadContent(t *testing.T) {
	if _, err := Lines("", 40); err == nil {
		t.Fatal("expected error for empty url")
	}
	if _, err := Lines(strings.Repeat("a", maxContentLen+1), 40); err == nil {
		t.Fatal("expected error for oversized url")
	}
}
