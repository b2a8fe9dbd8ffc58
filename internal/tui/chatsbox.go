package tui

import (
	"foldergram/internal/chatapi"
	"foldergram/internal/tui/state"
	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

// chatsBox is the read-only listing of the chats behind a link. Rows
// cannot be activated; the box only scrolls and closes.
type chatsBox struct {
	name   string
	chats  []chatapi.Chat
	cursor int
}

func newChatsBox(link chatapi.InviteLink, name string, chats map[int64]chatapi.Chat) *chatsBox {
	resolved := make([]chatapi.Chat, 0, len(link.ChatIDs))
	for _, chatID := range link.ChatIDs {
		if chat, ok := chats[chatID]; ok {
			resolved = append(resolved, chat)
		}
	}
	return &chatsBox{name: name, chats: resolved}
}

func (b *chatsBox) moveBy(delta int) {
	b.cursor = state.ClampCursor(b.cursor+delta, len(b.chats))
}

func (b *chatsBox) viewLines(th theme.Theme, width int) []string {
	lines := []string{th.MetaValue.Render(view.ChatCountLabel(len(b.chats))), ""}
	if len(b.chats) == 0 {
		return append(lines, "  This link has no chats.")
	}
	for i, chat := range b.chats {
		lines = append(lines, view.RenderChatLine(view.ChatLineParams{
			Chat:   chat,
			Active: i == b.cursor,
			Width:  width,
		}, th))
	}
	return lines
}
