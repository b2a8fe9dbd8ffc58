package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

var groupKinds = []string{"group", "channel", "megagroup"}

// groupBox creates a group or channel. Focus cycles title, description
// and the kind selector; the selector itself cycles with space or the
// horizontal arrows.
type groupBox struct {
	inputs []textinput.Model
	kind   int
	focus  int

	ctx    context.Context
	cancel context.CancelFunc
	gen    int
}

const groupBoxKindField = 2

func newGroupBox(parent context.Context, gen int) *groupBox {
	ctx, cancel := context.WithCancel(parent)
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 128
	title.Focus()
	about := textinput.New()
	about.Placeholder = "Description (optional)"
	about.CharLimit = 255
	return &groupBox{inputs: []textinput.Model{title, about}, ctx: ctx, cancel: cancel, gen: gen}
}

func (b *groupBox) close() {
	b.cancel()
}

func (b *groupBox) title() string { return strings.TrimSpace(b.inputs[0].Value()) }
func (b *groupBox) about() string { return strings.TrimSpace(b.inputs[1].Value()) }
func (b *groupBox) kindName() string {
	return groupKinds[b.kind]
}

func (b *groupBox) onKindField() bool { return b.focus == groupBoxKindField }

func (b *groupBox) cycleFocus(delta int) {
	if b.focus < groupBoxKindField {
		b.inputs[b.focus].Blur()
	}
	fields := groupBoxKindField + 1
	b.focus = (b.focus + delta + fields) % fields
	if b.focus < groupBoxKindField {
		b.inputs[b.focus].Focus()
	}
}

func (b *groupBox) cycleKind(delta int) {
	b.kind = (b.kind + delta + len(groupKinds)) % len(groupKinds)
}

func (b *groupBox) update(msg tea.Msg) tea.Cmd {
	if b.onKindField() {
		return nil
	}
	var cmd tea.Cmd
	b.inputs[b.focus], cmd = b.inputs[b.focus].Update(msg)
	return cmd
}

func (b *groupBox) viewLines(th theme.Theme, width int) []string {
	lines := []string{"Create a group or channel.", ""}
	for _, input := range b.inputs {
		lines = append(lines, input.View())
	}
	kindLabel := "kind: " + b.kindName()
	if b.onKindField() {
		kindLabel = th.ButtonFocus.Render(kindLabel)
	} else {
		kindLabel = th.MetaValue.Render(kindLabel)
	}
	lines = append(lines, kindLabel, "", view.ButtonRow(th, "Create", "Cancel"))
	return lines
}
