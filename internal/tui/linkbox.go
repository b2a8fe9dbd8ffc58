package tui

import (
	"context"
	"fmt"
	"strings"

	"foldergram/internal/chatapi"
	"foldergram/internal/sharing"
	"foldergram/internal/tui/state"
	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

const emptySelectionToast = "Select at least one chat."

// linkBox edits which chats an invite link covers. Its row order is fixed
// at open: the link's chats first, all checked, then the folder's remaining
// chats unchecked. Denied rows keep a toast reason; an empty reason means
// toggling is silently ignored (the link has no url yet).
type linkBox struct {
	link   chatapi.InviteLink
	folder chatapi.Folder

	rows     []linkBoxRow
	initial  map[int64]bool
	selected map[int64]bool
	denied   map[int64]string
	cursor   int

	ctx    context.Context
	cancel context.CancelFunc
	gen    int
}

type linkBoxRow struct {
	chat   chatapi.Chat
	status string
}

func newLinkBox(parent context.Context, gen int, link chatapi.InviteLink, folder chatapi.Folder, chats map[int64]chatapi.Chat) *linkBox {
	if link.URL == "" && len(link.ChatIDs) > 0 {
		panic("link box: a link without a url cannot have chats")
	}
	ctx, cancel := context.WithCancel(parent)
	b := &linkBox{
		link:     link,
		folder:   folder,
		initial:  make(map[int64]bool),
		selected: make(map[int64]bool),
		denied:   make(map[int64]string),
		ctx:      ctx,
		cancel:   cancel,
		gen:      gen,
	}
	seen := make(map[int64]bool)
	for _, chatID := range link.ChatIDs {
		chat, ok := chats[chatID]
		if !ok {
			continue
		}
		seen[chatID] = true
		b.rows = append(b.rows, linkBoxRow{chat: chat})
		b.initial[chatID] = true
		b.selected[chatID] = true
	}
	for _, chatID := range folder.AlwaysChatIDs {
		if seen[chatID] {
			continue
		}
		chat, ok := chats[chatID]
		if !ok {
			continue
		}
		seen[chatID] = true
		row := linkBoxRow{chat: chat}
		if denial := sharing.DenialFor(chat); denial != nil {
			row.status = denial.Status
			b.denied[chatID] = denial.Toast
		} else if link.URL == "" {
			b.denied[chatID] = ""
		}
		b.rows = append(b.rows, row)
	}
	return b
}

func (b *linkBox) close() {
	b.cancel()
}

// hasChanges compares the selection against the link's chats at open as
// sets, so any toggle sequence that restores the original selection
// reports no changes.
func (b *linkBox) hasChanges() bool {
	if len(b.selected) != len(b.initial) {
		return true
	}
	for id := range b.selected {
		if !b.initial[id] {
			return true
		}
	}
	return false
}

// toggle flips the row under the cursor and returns a toast to show, or
// "" when there is nothing to say.
func (b *linkBox) toggle() string {
	if len(b.rows) == 0 {
		return ""
	}
	b.cursor = state.ClampCursor(b.cursor, len(b.rows))
	chatID := b.rows[b.cursor].chat.ID
	if reason, isDenied := b.denied[chatID]; isDenied {
		return reason
	}
	if b.selected[chatID] {
		delete(b.selected, chatID)
	} else {
		b.selected[chatID] = true
	}
	return ""
}

// selectedIDs returns the selection in row order.
func (b *linkBox) selectedIDs() []int64 {
	out := make([]int64, 0, len(b.selected))
	for _, row := range b.rows {
		if b.selected[row.chat.ID] {
			out = append(out, row.chat.ID)
		}
	}
	return out
}

func (b *linkBox) moveBy(delta int) {
	b.cursor = state.ClampCursor(b.cursor+delta, len(b.rows))
}

func (b *linkBox) subtitle() string {
	if b.link.URL == "" {
		return "no chats can be added yet"
	}
	count := len(b.selected)
	if count == 0 {
		return "no chats selected"
	}
	if count == 1 {
		return "1 chat selected"
	}
	return fmt.Sprintf("%d chats selected", count)
}

func (b *linkBox) header() string {
	if b.link.URL == "" {
		return "This folder has no invite link yet."
	}
	return "Anyone with this link can add the folder and the chats selected below."
}

func (b *linkBox) viewLines(th theme.Theme, width int) []string {
	lines := []string{th.Section.Render(b.folder.Title), b.header(), ""}
	if b.link.URL != "" {
		lines = append(lines,
			th.LinkURL.Render(strings.TrimPrefix(b.link.URL, "https://")),
			th.MetaLabel.Render("c copy  s share"),
			"",
		)
	}
	lines = append(lines, th.MetaValue.Render(b.subtitle()), "")
	for i, row := range b.rows {
		lines = append(lines, view.RenderChatLine(view.ChatLineParams{
			Chat:     row.chat,
			Checkbox: true,
			Checked:  b.selected[row.chat.ID],
			Denied:   row.status,
			Active:   i == b.cursor,
			Width:    width,
		}, th))
	}
	lines = append(lines, "")
	if b.hasChanges() {
		lines = append(lines, view.ButtonRow(th, "Save", "Cancel"))
	} else {
		lines = append(lines, view.ButtonRow(th, "Done"))
	}
	return lines
}
