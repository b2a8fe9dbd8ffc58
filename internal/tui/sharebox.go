package tui

import (
	"context"

	"foldergram/internal/chatapi"
	"foldergram/internal/tui/state"
	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

// shareBox picks the chat an invite link is sent to. The chat list comes
// from the local cache after the box opens.
type shareBox struct {
	url     string
	chats   []chatapi.Chat
	cursor  int
	loading bool

	ctx    context.Context
	cancel context.CancelFunc
	gen    int
}

func newShareBox(parent context.Context, gen int, url string) *shareBox {
	ctx, cancel := context.WithCancel(parent)
	return &shareBox{url: url, loading: true, ctx: ctx, cancel: cancel, gen: gen}
}

func (b *shareBox) close() {
	b.cancel()
}

func (b *shareBox) setChats(chats []chatapi.Chat) {
	b.chats = chats
	b.loading = false
	b.cursor = state.ClampCursor(b.cursor, len(b.chats))
}

func (b *shareBox) currentChat() (chatapi.Chat, bool) {
	if len(b.chats) == 0 {
		return chatapi.Chat{}, false
	}
	b.cursor = state.ClampCursor(b.cursor, len(b.chats))
	return b.chats[b.cursor], true
}

func (b *shareBox) moveBy(delta int) {
	b.cursor = state.ClampCursor(b.cursor+delta, len(b.chats))
}

func (b *shareBox) viewLines(th theme.Theme, width int) []string {
	lines := []string{"Send the link to a chat.", ""}
	if b.loading {
		return append(lines, "  Loading chats...")
	}
	if len(b.chats) == 0 {
		return append(lines, "  No cached chats. Refresh folders first.")
	}
	start, end := state.CenteredWindow(len(b.chats), b.cursor, 12)
	for i := start; i < end; i++ {
		lines = append(lines, view.RenderChatLine(view.ChatLineParams{
			Chat:   b.chats[i],
			Active: i == b.cursor,
			Width:  width,
		}, th))
	}
	return lines
}
