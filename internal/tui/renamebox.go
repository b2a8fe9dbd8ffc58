package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"foldergram/internal/chatapi"
	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

// Link names are capped at 32 characters on the server side too; the
// input refuses to grow past the cap instead of truncating on save.
const linkNameLimit = 32

type renameBox struct {
	folderID int64
	url      string
	input    textinput.Model
}

func newRenameBox(link chatapi.InviteLink) *renameBox {
	input := textinput.New()
	input.Placeholder = "Link name"
	input.CharLimit = linkNameLimit
	input.SetValue(link.Title)
	input.Focus()
	return &renameBox{folderID: link.FolderID, url: link.URL, input: input}
}

// confirmLabel is "Create" for a link that has no url yet, "Save" after.
func (b *renameBox) confirmLabel() string {
	if b.url == "" {
		return "Create"
	}
	return "Save"
}

func (b *renameBox) title() string {
	return strings.TrimSpace(b.input.Value())
}

func (b *renameBox) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return cmd
}

func (b *renameBox) viewLines(th theme.Theme, width int) []string {
	return []string{
		"Name this link so you can tell it apart later.",
		"",
		b.input.View(),
		"",
		view.ButtonRow(th, b.confirmLabel(), "Cancel"),
	}
}
