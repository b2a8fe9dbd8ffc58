package rows

import (
	"reflect"
	"testing"

	"github.com/cespare/xxhash/v2"

	"foldergram/internal/chatapi"
)

type recordingDelegate struct {
	updated   []uint64
	refreshes int
	painted   []Color
}

func (d *recordingDelegate) RowUpdated(r *Row) { d.updated = append(d.updated, r.ID()) }

func (d *recordingDelegate) PaintIcon(c Color) string {
	d.painted = append(d.painted, c)
	return "*"
}

func (d *recordingDelegate) ListRefreshed() { d.refreshes++ }

func link(url, title string, chatIDs ...int64) chatapi.InviteLink {
	return chatapi.InviteLink{FolderID: 1, URL: url, Title: title, ChatIDs: chatIDs}
}

func TestRowID_HashesUTF16CodeUnitsLittleEndian(t *testing.T) {
	if got, want := RowID("A"), xxhash.Sum64([]byte{0x41, 0x00}); got != want {
		t.Fatalf("RowID(\"A\") = %d, want %d", got, want)
	}
	if got, want := RowID("ab"), xxhash.Sum64([]byte{0x61, 0x00, 0x62, 0x00}); got != want {
		t.Fatalf("RowID(\"ab\") = %d, want %d", got, want)
	}
}

func TestRowID_DeterministicAndOrderSensitive(t *testing.T) {
	if RowID("https://t.me/+abc") != RowID("https://t.me/+abc") {
		t.Fatal("equal urls must hash equal")
	}
	if RowID("ab") == RowID("ba") {
		t.Fatal("expected order-sensitive hash")
	}
	if RowID("https://t.me/+abc") == RowID("https://t.me/+abd") {
		t.Fatal("expected distinct urls to hash distinct")
	}
	// Surrogate pairs contribute two code units.
	if RowID("\U0001F600") == RowID("") {
		t.Fatal("non-BMP rune must contribute to the hash")
	}
}

func TestDisplayName_TitleWins(t *testing.T) {
	if got := DisplayName(link("https://t.me/+abc", "Work links")); got != "Work links" {
		t.Fatalf("unexpected name: %q", got)
	}
}

func TestDisplayName_StripsPrefixesEverywhere(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://t.me/+abc", "abc"},
		{"https://t.me/joinchat/legacy", "legacy"},
		{"t.me/+short", "short"},
		{"https://t.me/+https://t.me/+x", "x"},
		{"https://example.com/f", "example.com/f"},
	}
	for _, tc := range cases {
		if got := DisplayName(link(tc.url, "")); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestStatusText_Count(t *testing.T) {
	if got := StatusText(link("u", "", 7)); got != "1 chat" {
		t.Fatalf("unexpected singular status: %q", got)
	}
	if got := StatusText(link("u", "", 1, 2, 3)); got != "3 chats" {
		t.Fatalf("unexpected plural status: %q", got)
	}
	if got := StatusText(link("u", "")); got != "0 chats" {
		t.Fatalf("unexpected empty status: %q", got)
	}
}

func TestRebuild_AppendsWithoutRowUpdates(t *testing.T) {
	d := &recordingDelegate{}
	l := NewList(d)

	l.Rebuild([]chatapi.InviteLink{
		link("https://t.me/+a", "", 1),
		link("https://t.me/+b", "", 1, 2),
		link("https://t.me/+c", "Named", 3),
	})

	if l.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", l.Len())
	}
	if len(d.updated) != 0 {
		t.Fatalf("appends must not fire row updates, got %v", d.updated)
	}
	if d.refreshes != 1 {
		t.Fatalf("expected exactly one refresh notification, got %d", d.refreshes)
	}
	if got := l.At(2).Name(); got != "Named" {
		t.Fatalf("unexpected third row name: %q", got)
	}
}

func TestRebuild_UpdatesInPlaceKeepingIdentity(t *testing.T) {
	d := &recordingDelegate{}
	l := NewList(d)
	l.Rebuild([]chatapi.InviteLink{
		link("https://t.me/+a", "", 1),
		link("https://t.me/+b", "", 2),
	})

	firstID := l.At(0).ID()
	l.Rebuild([]chatapi.InviteLink{
		link("https://t.me/+changed", "", 1, 2, 3),
		link("https://t.me/+b", "Renamed", 2),
	})

	if l.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", l.Len())
	}
	// Position wins over identity: the row keeps its original id even
	// though its url changed underneath it.
	if l.At(0).ID() != firstID {
		t.Fatalf("in-place update must not recompute identity: got %d want %d", l.At(0).ID(), firstID)
	}
	if got := l.At(0).Data().URL; got != "https://t.me/+changed" {
		t.Fatalf("row data not refreshed: %q", got)
	}
	if got := l.At(0).Status(); got != "3 chats" {
		t.Fatalf("row status not refreshed: %q", got)
	}
	if got := l.At(1).Name(); got != "Renamed" {
		t.Fatalf("second row name not refreshed: %q", got)
	}
	if len(d.updated) != 2 {
		t.Fatalf("expected 2 row updates, got %v", d.updated)
	}
	if d.refreshes != 2 {
		t.Fatalf("expected 2 refresh notifications, got %d", d.refreshes)
	}
}

func TestRebuild_GrowsAndShrinks(t *testing.T) {
	d := &recordingDelegate{}
	l := NewList(d)
	l.Rebuild([]chatapi.InviteLink{link("https://t.me/+a", "", 1)})

	l.Rebuild([]chatapi.InviteLink{
		link("https://t.me/+a", "", 1),
		link("https://t.me/+b", "", 2),
		link("https://t.me/+c", "", 3),
	})
	if l.Len() != 3 {
		t.Fatalf("expected grow to 3 rows, got %d", l.Len())
	}
	if len(d.updated) != 1 {
		t.Fatalf("expected only the shared index to update, got %v", d.updated)
	}

	l.Rebuild([]chatapi.InviteLink{link("https://t.me/+a", "", 1)})
	if l.Len() != 1 {
		t.Fatalf("expected shrink to 1 row, got %d", l.Len())
	}
	if got := l.At(0).Data().URL; got != "https://t.me/+a" {
		t.Fatalf("unexpected surviving row: %q", got)
	}

	l.Rebuild(nil)
	if l.Len() != 0 {
		t.Fatalf("expected empty list, got %d rows", l.Len())
	}
}

func TestRemove_ByIdentity(t *testing.T) {
	d := &recordingDelegate{}
	l := NewList(d)
	l.Rebuild([]chatapi.InviteLink{
		link("https://t.me/+a", "", 1),
		link("https://t.me/+b", "", 2),
		link("https://t.me/+c", "", 3),
	})

	if !l.Remove("https://t.me/+b") {
		t.Fatal("expected removal of known url")
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 rows after removal, got %d", l.Len())
	}
	got := []string{l.At(0).Data().URL, l.At(1).Data().URL}
	want := []string{"https://t.me/+a", "https://t.me/+c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected rows after removal: got=%v want=%v", got, want)
	}
	if l.Remove("https://t.me/+missing") {
		t.Fatal("expected no removal for unknown url")
	}
}

func TestFind_ByIdentity(t *testing.T) {
	d := &recordingDelegate{}
	l := NewList(d)
	l.Rebuild([]chatapi.InviteLink{
		link("https://t.me/+a", "", 1),
		link("https://t.me/+b", "", 2),
	})

	row := l.Find(RowID("https://t.me/+b"))
	if row == nil {
		t.Fatal("expected to find row by identity")
	}
	if row.Data().URL != "https://t.me/+b" {
		t.Fatalf("unexpected row: %+v", row.Data())
	}
	if l.Find(RowID("https://t.me/+zz")) != nil {
		t.Fatal("expected nil for unknown identity")
	}
}

func TestRowIcon_DelegatesPainting(t *testing.T) {
	d := &recordingDelegate{}
	l := NewList(d)
	l.Rebuild([]chatapi.InviteLink{link("https://t.me/+a", "", 1)})

	if got := l.At(0).Icon(); got != "*" {
		t.Fatalf("unexpected icon: %q", got)
	}
	if len(d.painted) != 1 || d.painted[0] != ColorPermanent {
		t.Fatalf("unexpected paint calls: %v", d.painted)
	}
}
