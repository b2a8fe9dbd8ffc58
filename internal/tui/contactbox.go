package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

type contactBox struct {
	inputs []textinput.Model
	focus  int

	ctx    context.Context
	cancel context.CancelFunc
	gen    int
}

func newContactBox(parent context.Context, gen int) *contactBox {
	ctx, cancel := context.WithCancel(parent)
	labels := []string{"First name", "Last name", "Phone number"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label
		input.CharLimit = 64
		inputs[i] = input
	}
	inputs[0].Focus()
	return &contactBox{inputs: inputs, ctx: ctx, cancel: cancel, gen: gen}
}

func (b *contactBox) close() {
	b.cancel()
}

func (b *contactBox) cycleFocus(delta int) {
	b.inputs[b.focus].Blur()
	b.focus = (b.focus + delta + len(b.inputs)) % len(b.inputs)
	b.inputs[b.focus].Focus()
}

func (b *contactBox) firstName() string { return strings.TrimSpace(b.inputs[0].Value()) }
func (b *contactBox) lastName() string  { return strings.TrimSpace(b.inputs[1].Value()) }
func (b *contactBox) phone() string     { return strings.TrimSpace(b.inputs[2].Value()) }

func (b *contactBox) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.inputs[b.focus], cmd = b.inputs[b.focus].Update(msg)
	return cmd
}

func (b *contactBox) viewLines(th theme.Theme, width int) []string {
	lines := []string{"Add someone by phone number.", ""}
	for _, input := range b.inputs {
		lines = append(lines, input.View())
	}
	lines = append(lines, "", view.ButtonRow(th, "Add Contact", "Cancel"))
	return lines
}
