package state

import (
	"testing"

	"foldergram/internal/chatapi"
	"foldergram/internal/tui/rows"
)

func TestClampCursor(t *testing.T) {
	if got := ClampCursor(-1, 3); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampCursor(3, 3); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := ClampCursor(1, 3); got != 1 {
		t.Fatalf("expected keep 1, got %d", got)
	}
	if got := ClampCursor(5, 0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestPageStep(t *testing.T) {
	if got := PageStep(0, false); got != 10 {
		t.Fatalf("expected default step 10, got %d", got)
	}
	if got := PageStep(12, false); got != 6 {
		t.Fatalf("expected step 6, got %d", got)
	}
	if got := PageStep(12, true); got != 4 {
		t.Fatalf("expected step 4 with status, got %d", got)
	}
	if got := PageStep(7, false); got != 3 {
		t.Fatalf("expected minimum step 3, got %d", got)
	}
}

func TestCenteredWindow(t *testing.T) {
	start, end := CenteredWindow(5, 3, 3)
	if start != 2 || end != 5 {
		t.Fatalf("unexpected window: start=%d end=%d", start, end)
	}
	start, end = CenteredWindow(5, 0, 3)
	if start != 0 || end != 3 {
		t.Fatalf("unexpected top window: start=%d end=%d", start, end)
	}
	start, end = CenteredWindow(2, 1, 5)
	if start != 0 || end != 2 {
		t.Fatalf("expected full window for short list: start=%d end=%d", start, end)
	}
	start, end = CenteredWindow(0, 0, 5)
	if start != 0 || end != 0 {
		t.Fatalf("expected empty window: start=%d end=%d", start, end)
	}
}

func TestFolderIndexByID(t *testing.T) {
	folders := []chatapi.Folder{{ID: 10}, {ID: 20}, {ID: 30}}
	if got := FolderIndexByID(folders, 20); got != 1 {
		t.Fatalf("expected folder index 1, got %d", got)
	}
	if got := FolderIndexByID(folders, 99); got != -1 {
		t.Fatalf("expected -1 for unknown folder, got %d", got)
	}
}

type nopDelegate struct{}

func (nopDelegate) RowUpdated(*rows.Row)        {}
func (nopDelegate) PaintIcon(rows.Color) string { return " " }
func (nopDelegate) ListRefreshed()              {}

func TestRowIndexByID(t *testing.T) {
	list := rows.NewList(nopDelegate{})
	list.Rebuild([]chatapi.InviteLink{
		{URL: "t.me/+first"},
		{URL: "t.me/+second"},
	})
	if got := RowIndexByID(list.Rows(), rows.RowID("t.me/+second")); got != 1 {
		t.Fatalf("expected row index 1, got %d", got)
	}
	if got := RowIndexByID(list.Rows(), rows.RowID("t.me/+missing")); got != -1 {
		t.Fatalf("expected -1 for unknown row, got %d", got)
	}
}
