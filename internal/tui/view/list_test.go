package view

import (
	"strings"
	"testing"

	"foldergram/internal/chatapi"
	"foldergram/internal/tui/rows"
	tuitheme "foldergram/internal/tui/theme"
)

type stubDelegate struct{}

func (stubDelegate) RowUpdated(*rows.Row)        {}
func (stubDelegate) PaintIcon(rows.Color) string { return "#" }
func (stubDelegate) ListRefreshed()              {}

func linkRow(t *testing.T, link chatapi.InviteLink) *rows.Row {
	t.Helper()
	list := rows.NewList(stubDelegate{})
	list.Rebuild([]chatapi.InviteLink{link})
	return list.At(0)
}

func TestRenderLinkLine_StatusAtRightEdge(t *testing.T) {
	row := linkRow(t, chatapi.InviteLink{
		URL:     "https://t.me/+AbC",
		Title:   "Friends",
		ChatIDs: []int64{1, 2},
	})
	line := RenderLinkLine(LinkLineParams{Row: row, Active: true, Width: 40}, tuitheme.Dark())
	plain := stripANSI(line)
	if !strings.HasPrefix(plain, "  > # Friends") {
		t.Fatalf("unexpected line start: %q", plain)
	}
	if !strings.HasSuffix(plain, "2 chats") {
		t.Fatalf("expected chat count at right edge, got %q", plain)
	}
	if got := len([]rune(plain)); got != 40 {
		t.Fatalf("expected width 40, got %d (%q)", got, plain)
	}
}

func TestRenderLinkLine_TruncatesLongNames(t *testing.T) {
	row := linkRow(t, chatapi.InviteLink{
		URL:   "https://t.me/+AbC",
		Title: strings.Repeat("x", 60),
	})
	plain := stripANSI(RenderLinkLine(LinkLineParams{Row: row, Width: 30}, tuitheme.Dark()))
	if !strings.Contains(plain, "...") {
		t.Fatalf("expected truncation ellipsis, got %q", plain)
	}
	if got := len([]rune(plain)); got != 30 {
		t.Fatalf("expected width 30, got %d (%q)", got, plain)
	}
}

func TestRenderChatLine_CheckboxStates(t *testing.T) {
	th := tuitheme.Dark()
	checked := stripANSI(RenderChatLine(ChatLineParams{
		Chat:     chatapi.Chat{Title: "Crew"},
		Checkbox: true,
		Checked:  true,
		Width:    30,
	}, th))
	if !strings.Contains(checked, "[x] Crew") {
		t.Fatalf("unexpected checked line: %q", checked)
	}
	unchecked := stripANSI(RenderChatLine(ChatLineParams{
		Chat:     chatapi.Chat{Title: "Crew"},
		Checkbox: true,
		Width:    30,
	}, th))
	if !strings.Contains(unchecked, "[ ] Crew") {
		t.Fatalf("unexpected unchecked line: %q", unchecked)
	}
}

func TestRenderChatLine_DenialAtRightEdge(t *testing.T) {
	plain := stripANSI(RenderChatLine(ChatLineParams{
		Chat:     chatapi.Chat{Title: "Robo", Kind: chatapi.ChatKindBot},
		Checkbox: true,
		Denied:   "you can't share chats with bots",
		Width:    60,
	}, tuitheme.Dark()))
	if !strings.HasSuffix(plain, "you can't share chats with bots") {
		t.Fatalf("expected denial status at right edge, got %q", plain)
	}
	if got := len([]rune(plain)); got != 60 {
		t.Fatalf("expected width 60, got %d (%q)", got, plain)
	}
}

func TestRenderFolderLine(t *testing.T) {
	folder := chatapi.Folder{Title: "Work", AlwaysChatIDs: []int64{1, 2, 3}}
	plain := stripANSI(RenderFolderLine(folder, 30, true, tuitheme.Dark()))
	if !strings.HasPrefix(plain, "  > ▦ Work") {
		t.Fatalf("unexpected folder line start: %q", plain)
	}
	if !strings.HasSuffix(plain, "3 chats") {
		t.Fatalf("expected chat count at right edge, got %q", plain)
	}
}

func TestChatCountLabel(t *testing.T) {
	if got := ChatCountLabel(1); got != "1 chat" {
		t.Fatalf("unexpected singular label: %q", got)
	}
	if got := ChatCountLabel(5); got != "5 chats" {
		t.Fatalf("unexpected plural label: %q", got)
	}
}
