package rows

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"

	"foldergram/internal/chatapi"
)

// Color selects the row icon variant. Painting is delegated to the owning
// controller so icons can follow the active theme.
type Color int

const (
	ColorPermanent Color = iota
)

// Delegate is the callback surface a row list uses to reach its owning
// controller: per-row refresh, icon painting, and the refresh notification
// fired once after every rebuild.
type Delegate interface {
	RowUpdated(*Row)
	PaintIcon(Color) string
	ListRefreshed()
}

// RowID is the list identity of a link: XXH64 (seed 0) over the url's
// UTF-16 code units in little-endian order. Stable across runs, order
// sensitive, not cryptographic.
func RowID(url string) uint64 {
	units := utf16.Encode([]rune(url))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	return xxhash.Sum64(buf)
}

var namePrefixes = strings.NewReplacer(
	"https://", "",
	"t.me/+", "",
	"t.me/joinchat/", "",
)

// DisplayName is the link's title when set, otherwise its url with the
// scheme and invite prefixes stripped wherever they occur.
func DisplayName(link chatapi.InviteLink) string {
	if link.Title != "" {
		return link.Title
	}
	return namePrefixes.Replace(link.URL)
}

// StatusText is the chat-count line shown under a link row.
func StatusText(link chatapi.InviteLink) string {
	if len(link.ChatIDs) == 1 {
		return "1 chat"
	}
	return fmt.Sprintf("%d chats", len(link.ChatIDs))
}

// Row is the view-model of one invite link. Identity is computed from the
// url once at construction; update refreshes the display fields without
// recomputing it, so a row updated in place keeps its original identity
// even when the url changed.
type Row struct {
	delegate Delegate

	id     uint64
	data   chatapi.InviteLink
	name   string
	status string
	color  Color
}

func NewRow(delegate Delegate, data chatapi.InviteLink) *Row {
	row := &Row{
		delegate: delegate,
		id:       RowID(data.URL),
	}
	row.refresh(data)
	return row
}

func (r *Row) ID() uint64               { return r.id }
func (r *Row) Data() chatapi.InviteLink { return r.data }
func (r *Row) Name() string             { return r.name }
func (r *Row) Status() string           { return r.status }
func (r *Row) Color() Color             { return r.color }
func (r *Row) Icon() string             { return r.delegate.PaintIcon(r.color) }

func (r *Row) refresh(data chatapi.InviteLink) {
	r.data = data
	r.color = ColorPermanent
	r.name = DisplayName(data)
	r.status = StatusText(data)
}

func (r *Row) update(data chatapi.InviteLink) {
	r.refresh(data)
	r.delegate.RowUpdated(r)
}

// List keeps the displayed link rows in caller-provided order.
type List struct {
	delegate Delegate
	rows     []*Row
}

func NewList(delegate Delegate) *List {
	return &List{delegate: delegate}
}

// Rebuild reconciles the displayed rows with a store snapshot by position:
// rows at indices both sides share are updated in place, snapshot entries
// beyond the displayed count are appended, and the displayed tail beyond
// the snapshot is dropped. One refresh notification fires at the end.
func (l *List) Rebuild(snapshot []chatapi.InviteLink) {
	count := len(l.rows)
	i := 0
	for ; i < len(snapshot); i++ {
		if i < count {
			l.rows[i].update(snapshot[i])
		} else {
			l.rows = append(l.rows, NewRow(l.delegate, snapshot[i]))
		}
	}
	if i < count {
		l.rows = l.rows[:i]
	}
	l.delegate.ListRefreshed()
}

// Remove drops the row whose identity matches the url. It reports whether
// a row was removed.
func (l *List) Remove(url string) bool {
	id := RowID(url)
	for i, row := range l.rows {
		if row.id == id {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the row with the given identity, or nil.
func (l *List) Find(id uint64) *Row {
	for _, row := range l.rows {
		if row.id == id {
			return row
		}
	}
	return nil
}

func (l *List) Len() int { return len(l.rows) }

func (l *List) At(i int) *Row { return l.rows[i] }

func (l *List) Rows() []*Row { return l.rows }
