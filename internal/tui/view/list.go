package view

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"foldergram/internal/chatapi"
	"foldergram/internal/tui/rows"
	tuitheme "foldergram/internal/tui/theme"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type LinkLineParams struct {
	Row    *rows.Row
	Active bool
	Width  int
}

// RenderLinkLine lays out icon and name on the left and the chat-count
// status at the right edge. A row whose link has no url yet renders with
// the pending name style.
func RenderLinkLine(p LinkLineParams, th tuitheme.Theme) string {
	cursorMarker := " "
	if p.Active {
		cursorMarker = ">"
	}
	prefix := fmt.Sprintf("  %s %s ", cursorMarker, p.Row.Icon())
	statusLabel := p.Row.Status()
	available := p.Width - visibleLen(prefix) - 1 - visibleLen(statusLabel)
	if available < 1 {
		available = 1
	}
	name := truncateRunes(p.Row.Name(), available)
	pending := p.Row.Data().URL == ""
	gap := p.Width - visibleLen(prefix) - visibleLen(name) - visibleLen(statusLabel)
	if gap < 1 {
		gap = 1
	}
	line := prefix + th.StyleLinkName(pending, name) + strings.Repeat(" ", gap) + th.LinkStatus.Render(statusLabel)
	return th.RenderActiveLine(p.Active, line)
}

type ChatLineParams struct {
	Chat     chatapi.Chat
	Checkbox bool
	Checked  bool
	Denied   string
	Active   bool
	Width    int
}

// RenderChatLine lays out an optional checkbox cell and the chat title; a
// denial status, when present, is right-aligned and dims the title.
func RenderChatLine(p ChatLineParams, th tuitheme.Theme) string {
	cursorMarker := " "
	if p.Active {
		cursorMarker = ">"
	}
	cell := ""
	if p.Checkbox {
		box := th.CheckOff.Render("[ ]")
		if p.Checked {
			box = th.CheckOn.Render("[x]")
		}
		cell = box + " "
	}
	prefix := fmt.Sprintf("  %s %s", cursorMarker, cell)
	right := ""
	if p.Denied != "" {
		right = th.ChatDenied.Render(p.Denied)
	}
	available := p.Width - visibleLen(prefix) - 1 - visibleLen(right)
	if available < 1 {
		available = 1
	}
	title := truncateRunes(p.Chat.Title, available)
	style := th.ChatTitle
	if p.Denied != "" {
		style = th.ChatDenied
	}
	gap := p.Width - visibleLen(prefix) - visibleLen(title) - visibleLen(right)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(p.Active, prefix+style.Render(title)+strings.Repeat(" ", gap)+right)
}

func RenderFolderLine(folder chatapi.Folder, width int, active bool, th tuitheme.Theme) string {
	cursorMarker := " "
	if active {
		cursorMarker = ">"
	}
	prefix := fmt.Sprintf("  %s ▦ ", cursorMarker)
	right := th.ChatCount.Render(ChatCountLabel(len(folder.AlwaysChatIDs)))
	available := width - visibleLen(prefix) - 1 - visibleLen(right)
	if available < 1 {
		available = 1
	}
	title := truncateRunes(folder.Title, available)
	gap := width - visibleLen(prefix) - visibleLen(title) - visibleLen(right)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(active, prefix+th.Section.Render(title)+strings.Repeat(" ", gap)+right)
}

func ChatCountLabel(n int) string {
	if n == 1 {
		return "1 chat"
	}
	return fmt.Sprintf("%d chats", n)
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}
