package tui

import (
	"foldergram/internal/chatapi"
	"foldergram/internal/tui/state"
	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

type foldersScreen struct {
	folders []chatapi.Folder
	cursor  int
}

func newFoldersScreen(folders []chatapi.Folder) *foldersScreen {
	return &foldersScreen{folders: append([]chatapi.Folder(nil), folders...)}
}

func (s *foldersScreen) currentFolder() (chatapi.Folder, bool) {
	if len(s.folders) == 0 {
		return chatapi.Folder{}, false
	}
	s.cursor = state.ClampCursor(s.cursor, len(s.folders))
	return s.folders[s.cursor], true
}

// replace swaps in a fresh folder list, keeping the cursor on the folder
// it was on when that folder survived.
func (s *foldersScreen) replace(folders []chatapi.Folder) {
	var anchor int64
	if folder, ok := s.currentFolder(); ok {
		anchor = folder.ID
	}
	s.folders = append([]chatapi.Folder(nil), folders...)
	if idx := state.FolderIndexByID(s.folders, anchor); idx >= 0 {
		s.cursor = idx
	}
	s.cursor = state.ClampCursor(s.cursor, len(s.folders))
}

func (s *foldersScreen) moveBy(delta int) {
	s.cursor = state.ClampCursor(s.cursor+delta, len(s.folders))
}

func (s *foldersScreen) viewLines(th theme.Theme, width, height int) []string {
	if len(s.folders) == 0 {
		return []string{"", "  No folders cached. Press r to fetch them from the server."}
	}
	s.cursor = state.ClampCursor(s.cursor, len(s.folders))
	start, end := state.CenteredWindow(len(s.folders), s.cursor, height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, view.RenderFolderLine(s.folders[i], width, i == s.cursor, th))
	}
	return lines
}
