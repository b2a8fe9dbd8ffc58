package tui

import (
	"foldergram/internal/chatapi"
	"foldergram/internal/tui/rows"
	"foldergram/internal/tui/state"
	"foldergram/internal/tui/theme"
)

const (
	menuCopyLink = iota
	menuShareLink
	menuQRCode
	menuNameLink
	menuDeleteLink
)

var menuItems = []string{
	"Copy Link",
	"Share Link",
	"Get QR Code",
	"Name Link",
	"Delete Link",
}

// menuBox is the row context menu. Only one exists at a time; opening a
// new one releases the previous menu first.
type menuBox struct {
	link   chatapi.InviteLink
	name   string
	cursor int
}

func newMenuBox(row *rows.Row) *menuBox {
	return &menuBox{link: row.Data(), name: row.Name()}
}

func (b *menuBox) moveBy(delta int) {
	b.cursor = state.ClampCursor(b.cursor+delta, len(menuItems))
}

func (b *menuBox) viewLines(th theme.Theme, width int) []string {
	lines := []string{th.MetaValue.Render(b.name), ""}
	for i, item := range menuItems {
		marker := "  "
		if i == b.cursor {
			marker = "> "
		}
		label := item
		if i == b.cursor {
			label = th.ButtonFocus.Render(item)
		}
		lines = append(lines, marker+label)
	}
	return lines
}
