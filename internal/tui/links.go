package tui

import (
	"context"
	"fmt"

	"foldergram/internal/app"
	"foldergram/internal/tui/rows"
	"foldergram/internal/tui/state"
	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

// linksScreen owns the displayed rows for one folder. It is the row
// delegate: rendered lines are cached per row identity and icons per
// color, both dropped when the rows or the palette change.
type linksScreen struct {
	detail app.FolderDetail
	list   *rows.List
	cursor int

	themes *theme.Notifier
	unsub  func()

	icons     map[rows.Color]string
	lineCache map[uint64]string
	refreshes int

	ctx    context.Context
	cancel context.CancelFunc
	gen    int
}

func newLinksScreen(parent context.Context, gen int, detail app.FolderDetail, themes *theme.Notifier) *linksScreen {
	ctx, cancel := context.WithCancel(parent)
	s := &linksScreen{
		detail:    detail,
		themes:    themes,
		icons:     make(map[rows.Color]string),
		lineCache: make(map[uint64]string),
		ctx:       ctx,
		cancel:    cancel,
		gen:       gen,
	}
	s.list = rows.NewList(s)
	s.unsub = themes.Subscribe(s.dropRenderCaches)
	s.list.Rebuild(detail.Links)
	return s
}

// teardown releases everything the screen owns: in-flight requests via the
// context and the palette subscription.
func (s *linksScreen) teardown() {
	s.cancel()
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

func (s *linksScreen) folderID() int64 { return s.detail.Folder.ID }

func (s *linksScreen) applyDetail(detail app.FolderDetail) {
	var anchor uint64
	if row := s.currentRow(); row != nil {
		anchor = row.ID()
	}
	s.detail = detail
	s.list.Rebuild(detail.Links)
	if idx := state.RowIndexByID(s.list.Rows(), anchor); idx >= 0 {
		s.cursor = idx
	}
	s.cursor = state.ClampCursor(s.cursor, s.list.Len())
}

func (s *linksScreen) currentRow() *rows.Row {
	if s.list.Len() == 0 {
		return nil
	}
	return s.list.At(state.ClampCursor(s.cursor, s.list.Len()))
}

func (s *linksScreen) moveBy(delta int) {
	s.cursor = state.ClampCursor(s.cursor+delta, s.list.Len())
}

func (s *linksScreen) RowUpdated(row *rows.Row) {
	delete(s.lineCache, row.ID())
}

func (s *linksScreen) PaintIcon(c rows.Color) string {
	if icon, ok := s.icons[c]; ok {
		return icon
	}
	icon := paintIcon(s.themes.Current(), c)
	s.icons[c] = icon
	return icon
}

func (s *linksScreen) ListRefreshed() {
	s.refreshes++
	s.pruneLineCache()
}

func paintIcon(th theme.Theme, c rows.Color) string {
	switch c {
	case rows.ColorPermanent:
		return th.LinkIcon.Render("■")
	default:
		panic(fmt.Sprintf("no icon for color %d", c))
	}
}

func (s *linksScreen) dropRenderCaches() {
	s.icons = make(map[rows.Color]string)
	s.lineCache = make(map[uint64]string)
}

func (s *linksScreen) pruneLineCache() {
	keep := make(map[uint64]struct{}, s.list.Len())
	for _, row := range s.list.Rows() {
		keep[row.ID()] = struct{}{}
	}
	for id := range s.lineCache {
		if _, ok := keep[id]; !ok {
			delete(s.lineCache, id)
		}
	}
}

func (s *linksScreen) renderRow(i, width int, th theme.Theme) string {
	row := s.list.At(i)
	if i == s.cursor {
		// The active line is never cached; the cursor moves too often.
		return view.RenderLinkLine(view.LinkLineParams{Row: row, Active: true, Width: width}, th)
	}
	if line, ok := s.lineCache[row.ID()]; ok {
		return line
	}
	line := view.RenderLinkLine(view.LinkLineParams{Row: row, Width: width}, th)
	s.lineCache[row.ID()] = line
	return line
}

func (s *linksScreen) viewLines(th theme.Theme, width, height int) []string {
	if s.list.Len() == 0 {
		return []string{"", "  No links in this folder yet. Press a to create one."}
	}
	s.cursor = state.ClampCursor(s.cursor, s.list.Len())
	start, end := state.CenteredWindow(s.list.Len(), s.cursor, height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, s.renderRow(i, width, th))
	}
	return lines
}
