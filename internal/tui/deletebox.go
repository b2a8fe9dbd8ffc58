package tui

import (
	"foldergram/internal/chatapi"
	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

type deleteBox struct {
	folderID int64
	url      string
	name     string
}

func newDeleteBox(link chatapi.InviteLink, name string) *deleteBox {
	return &deleteBox{folderID: link.FolderID, url: link.URL, name: name}
}

func (b *deleteBox) viewLines(th theme.Theme, width int) []string {
	return []string{
		"Delete " + th.MetaValue.Render(b.name) + "?",
		"People who already joined through this link stay in the chats.",
		"",
		view.ButtonRow(th, "Delete", "Cancel"),
	}
}
